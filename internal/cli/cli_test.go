package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

// --- fileExists ---

func TestFileExists_True(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "exists.txt")
	if err := os.WriteFile(p, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(p) {
		t.Errorf("expected fileExists=true for %s", p)
	}
}

func TestFileExists_False(t *testing.T) {
	tmp := t.TempDir()
	if fileExists(filepath.Join(tmp, "not_there.txt")) {
		t.Error("expected fileExists=false for non-existent file")
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[strings.Fields(sub.Use)[0]] = true
	}
	for _, expected := range []string{"init", "fetch", "clean", "prune", "classes", "validate", "labels", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestFetchCmd_Flags(t *testing.T) {
	debug := false
	cmd := fetchCmd(&debug)
	if cmd.Use != "fetch" {
		t.Errorf("expected Use=fetch, got %q", cmd.Use)
	}
	for _, flag := range []string{"workspace", "plain"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on fetch command", flag)
		}
	}
}

func TestCleanCmd_Flags(t *testing.T) {
	debug := false
	cmd := cleanCmd(&debug)
	for _, flag := range []string{"workspace", "plain", "no-save"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on clean command", flag)
		}
	}
}

func TestPruneCmd_Flags(t *testing.T) {
	debug := false
	cmd := pruneCmd(&debug)
	if cmd.Flags().Lookup("apply") == nil {
		t.Error("expected --apply flag on prune command")
	}
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("prune should require a folder argument")
	}
	if err := cmd.Args(cmd, []string{"pushups"}); err != nil {
		t.Errorf("prune should accept one folder argument: %v", err)
	}
}

func TestLabelsCmd_Flags(t *testing.T) {
	cmd := labelsCmd()
	if cmd.Flags().Lookup("query") == nil {
		t.Error("expected --query flag on labels command")
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- loadWorkspace ---

func TestLoadWorkspace_ScannerSeesAllVideoTypes(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "dataprep.yaml"), []byte("dataprep: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	classDir := filepath.Join(root, "dataset", "pushups")
	if err := os.MkdirAll(classDir, 0o755); err != nil {
		t.Fatal(err)
	}
	// hub.video_ext defaults to .mp4 but only narrows fetch; local
	// classes may hold any supported container.
	for _, name := range []string{"a.mp4", "b.avi", "c.MOV"} {
		if err := os.WriteFile(filepath.Join(classDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ws, err := loadWorkspace(root)
	if err != nil {
		t.Fatalf("loadWorkspace: %v", err)
	}

	classes, err := ws.scanner.ScanClasses(filepath.Join(root, "dataset"))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(classes) != 1 {
		t.Fatalf("expected 1 class, got %v", classes)
	}
	if got := len(classes[0].Videos); got != 3 {
		t.Fatalf("expected all 3 videos recognized, got %v", classes[0].Videos)
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

// --- printCleanSummary ---

func TestPrintCleanSummary(t *testing.T) {
	stats := domain.NewClassStats("pushups")
	stats.Record(true, nil)
	stats.Record(false, []domain.RejectReason{domain.ReasonBlurry})

	run := domain.CleanRun{
		ID:      "run-1",
		Classes: []domain.ClassStats{stats},
		Totals:  domain.SumStats([]domain.ClassStats{stats}),
	}

	out := captureStdout(t, func() {
		printCleanSummary(run, "/ws/reports")
	})

	for _, want := range []string{"2 videos", "1 accepted", "1 rejected", "blurry", "/ws/reports", "run-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in summary output:\n%s", want, out)
		}
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	_ = w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}
