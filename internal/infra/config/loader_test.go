package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

func copyFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFile), b, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return root
}

func TestLoadAppliesOverlay(t *testing.T) {
	root := copyFixture(t, "dataprep.yaml")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Hub.MaxPerClass != 5 {
		t.Fatalf("expected max_per_class 5, got %d", cfg.Hub.MaxPerClass)
	}
	if cfg.Hub.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", cfg.Hub.Seed)
	}
	if cfg.Paths.DatasetDir != "raw" {
		t.Fatalf("expected dataset_dir raw, got %q", cfg.Paths.DatasetDir)
	}
	if cfg.Quality.MinSharpness != 80 {
		t.Fatalf("expected min_sharpness 80, got %v", cfg.Quality.MinSharpness)
	}
	if cfg.Motion.DiffThreshold != 20 {
		t.Fatalf("expected diff_threshold 20, got %d", cfg.Motion.DiffThreshold)
	}

	// Untouched fields keep their defaults.
	if cfg.Paths.CleanedDir != "cleaned_dataset" {
		t.Fatalf("expected default cleaned_dir, got %q", cfg.Paths.CleanedDir)
	}
	if cfg.Quality.MinWidth != 640 {
		t.Fatalf("expected default min_width, got %d", cfg.Quality.MinWidth)
	}
}

func TestLoadInvalidThresholds(t *testing.T) {
	root := copyFixture(t, "dataprep_invalid.yaml")

	_, err := Load(root)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "min_brightness") {
		t.Fatalf("expected field in error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
