package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

func TestInitScaffoldsWorkspace(t *testing.T) {
	root := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, d := range []string{"dataset", "cleaned_dataset", "reports", filepath.Join(".dataprep", "logs")} {
		info, err := os.Stat(filepath.Join(root, d))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", d, err)
		}
	}

	for _, f := range []string{"dataprep.yaml", "exercise_motion_overview.json", ".env.example", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(root, f)); err != nil {
			t.Fatalf("expected file %s: %v", f, err)
		}
	}
}

func TestInitDoesNotOverwriteWithoutForce(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "dataprep.yaml")
	if err := os.WriteFile(path, []byte("dataprep: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init: %v", err)
	}

	b, _ := os.ReadFile(path)
	if string(b) != "dataprep: {}\n" {
		t.Fatal("existing config must survive init without force")
	}
}

func TestInitForceOverwrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "dataprep.yaml")
	if err := os.WriteFile(path, []byte("dataprep: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, true); err != nil {
		t.Fatalf("init: %v", err)
	}

	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), "max_per_class") {
		t.Fatal("force init should restore the template config")
	}
}

func TestInitEnvExampleMode(t *testing.T) {
	root := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init: %v", err)
	}

	info, err := os.Stat(filepath.Join(root, ".env.example"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("token template should be 0600, got %v", info.Mode().Perm())
	}
}
