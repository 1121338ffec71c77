package ports

import "github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"

// DatasetClass is one local class directory with its video files.
type DatasetClass struct {
	Name   string
	Dir    string
	Videos []string // file names inside Dir
}

// DatasetScanner walks a local dataset tree and groups videos by class.
type DatasetScanner interface {
	ScanClasses(root string) ([]DatasetClass, error)
}

// ManifestStore persists the download manifest.
type ManifestStore interface {
	Save(dir string, m domain.Manifest) (path string, err error)
	Load(dir string) (domain.Manifest, error)
}

// DatasetCopier copies an accepted video into the cleaned tree,
// creating parent directories as needed.
type DatasetCopier interface {
	CopyVideo(src, dst string) error
}
