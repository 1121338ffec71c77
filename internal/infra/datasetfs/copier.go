package datasetfs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

type Copier struct{}

func NewCopier() *Copier {
	return &Copier{}
}

var _ ports.DatasetCopier = (*Copier)(nil)

// CopyVideo copies src to dst through a tmp file so an interrupted copy
// never leaves a truncated video in the cleaned tree.
func (c *Copier) CopyVideo(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &domain.OpError{Op: "datasetfs.copy", Kind: domain.KindNotFound, Path: src, Err: err}
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return &domain.OpError{Op: "datasetfs.copy", Kind: domain.KindExecution, Path: dst, Err: err}
	}

	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return &domain.OpError{Op: "datasetfs.copy", Kind: domain.KindExecution, Path: tmp, Err: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "datasetfs.copy", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "datasetfs.copy", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "datasetfs.copy", Kind: domain.KindExecution, Path: dst, Err: err}
	}

	// Keep source timestamps so copies stay comparable across runs.
	if info, err := os.Stat(src); err == nil {
		_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	}
	return nil
}
