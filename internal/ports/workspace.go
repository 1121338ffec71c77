package ports

import "github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"

// WorkspaceInitializer scaffolds a dataprep workspace.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
