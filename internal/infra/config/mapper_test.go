package config

import (
	"strings"
	"testing"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestMapConfigDefaultsWhenEmpty(t *testing.T) {
	cfg, err := MapConfig("dataprep.yaml", YAMLConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected pure defaults, got %+v", cfg)
	}
}

func TestMapConfigExplicitZeroIsRejected(t *testing.T) {
	_, err := MapConfig("p", YAMLConfig{Hub: YAMLHub{MaxPerClass: intp(0)}})
	if err == nil {
		t.Fatalf("expected error for explicit zero max_per_class")
	}
	if !strings.Contains(err.Error(), "max_per_class") {
		t.Fatalf("expected field in error, got %v", err)
	}
}

func TestMapConfigDiffThresholdRange(t *testing.T) {
	_, err := MapConfig("p", YAMLConfig{Motion: YAMLMotion{DiffThreshold: intp(300)}})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestMapConfigLayoutMustKeepTargetsUnique(t *testing.T) {
	_, err := MapConfig("p", YAMLConfig{Paths: YAMLPaths{Layout: "{{class}}/videos"}})
	if err == nil || !strings.Contains(err.Error(), "layout") {
		t.Fatalf("expected layout error, got %v", err)
	}
}

func TestMapConfigRatioBounds(t *testing.T) {
	_, err := MapConfig("p", YAMLConfig{Motion: YAMLMotion{MinActiveFramePct: floatp(1.5)}})
	if err == nil || !strings.Contains(err.Error(), "min_active_frame_pct") {
		t.Fatalf("expected ratio error, got %v", err)
	}
}

func TestMapConfigVideoExtNeedsDot(t *testing.T) {
	_, err := MapConfig("p", YAMLConfig{Hub: YAMLHub{VideoExt: "mp4"}})
	if err == nil || !strings.Contains(err.Error(), "video_ext") {
		t.Fatalf("expected video_ext error, got %v", err)
	}
}
