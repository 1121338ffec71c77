package ports

// WorkspaceLocator finds a dataprep workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
