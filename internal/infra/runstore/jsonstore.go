// Package runstore persists cleaning runs as JSON artifacts under the
// reports directory, with a JSONL index for quick listing.
package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

const defaultRunsDir = "runs"

type JSONStore struct {
	rootDir     string
	reportsDir  string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: <reports>/runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reportsDir := cfg.Paths.ReportsDir
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = "reports"
	}

	s := &JSONStore{
		rootDir:     root,
		reportsDir:  reportsDir,
		runsDirName: defaultRunsDir,
		writeIndex:  false,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RunStore = (*JSONStore)(nil)

func (s *JSONStore) SaveCleanRun(run domain.CleanRun) (string, error) {
	dir := filepath.Join(s.rootDir, s.reportsDir, s.runsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := run.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := run
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	slug := slugify(filepath.Base(run.DatasetDir))
	if slug == "" {
		slug = "clean"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	toSave.ID = id

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, run domain.CleanRun) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Dataset   string    `json:"dataset"`
		Total     int       `json:"total_videos"`
		Accepted  int       `json:"accepted_videos"`
		Rejected  int       `json:"rejected_videos"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Dataset:   run.DatasetDir,
		Total:     run.Totals.Total,
		Accepted:  run.Totals.Accepted,
		Rejected:  run.Totals.Rejected,
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastDash = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '_' || r == '-' || r == '.':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	out = strings.ReplaceAll(out, "--", "-")
	return out
}
