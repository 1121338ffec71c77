// Package datasetfs walks a local dataset tree. Any directory that
// directly contains video files counts as one exercise class, matching
// the layout produced by fetch.
package datasetfs

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

type Scanner struct {
	exts []string
}

type Option func(*Scanner)

// WithExtensions overrides the recognized video extensions.
func WithExtensions(exts []string) Option {
	return func(s *Scanner) { s.exts = exts }
}

func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{exts: domain.DefaultVideoExts}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.DatasetScanner = (*Scanner)(nil)

// ScanClasses returns every directory under root that directly contains
// at least one video file, sorted by class name. Non-video files are
// ignored; nested directories form their own classes.
func (s *Scanner) ScanClasses(root string) ([]ports.DatasetClass, error) {
	byDir := map[string][]string{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if !domain.IsVideoFile(d.Name(), s.exts) {
			return nil
		}
		dir := filepath.Dir(path)
		byDir[dir] = append(byDir[dir], d.Name())
		return nil
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "datasetfs.scan",
			Kind: domain.KindNotFound,
			Path: root,
			Err:  err,
		}
	}

	out := make([]ports.DatasetClass, 0, len(byDir))
	for dir, videos := range byDir {
		sort.Strings(videos)
		out = append(out, ports.DatasetClass{
			Name:   filepath.Base(dir),
			Dir:    dir,
			Videos: videos,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
