package ports

import "context"

// HubLister lists repo-relative file paths in the remote dataset repo.
type HubLister interface {
	ListFiles(ctx context.Context) ([]string, error)
}

// HubDownloader fetches a single repo file into a local path.
type HubDownloader interface {
	DownloadFile(ctx context.Context, repoPath, localPath string) error
}

// HubDeleter removes repo files in a single commit.
type HubDeleter interface {
	DeleteFiles(ctx context.Context, repoPaths []string, summary string) error
}
