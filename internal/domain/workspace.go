package domain

// WorkspaceSpec describes where a workspace should be scaffolded.
type WorkspaceSpec struct {
	Root string
}
