// Package manifeststore persists manifest.json inside the dataset
// directory, mapping each downloaded video to its class.
package manifeststore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

const ManifestFile = "manifest.json"

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

var _ ports.ManifestStore = (*Store)(nil)

// Save writes the manifest with an atomic tmp+rename so a crashed fetch
// never leaves a half-written manifest behind.
func (s *Store) Save(dir string, m domain.Manifest) (string, error) {
	const op = "manifeststore.save"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: dir, Err: err}
	}

	path := filepath.Join(dir, ManifestFile)

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
	}
	b = append(b, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
	}
	return path, nil
}

func (s *Store) Load(dir string) (domain.Manifest, error) {
	path := filepath.Join(dir, ManifestFile)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{Op: "manifeststore.load", Kind: domain.KindNotFound, Path: path, Err: err}
	}

	var m domain.Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, &domain.OpError{Op: "manifeststore.load", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	if m == nil {
		m = domain.Manifest{}
	}
	return m, nil
}
