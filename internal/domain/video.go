package domain

import (
	"path"
	"strings"
)

// DefaultVideoExts are the extensions the cleaner recognizes as video files.
var DefaultVideoExts = []string{".mp4", ".avi", ".mov"}

// VideoRef identifies a single video, locally and (optionally) in the hub repo.
type VideoRef struct {
	Class      string // exercise class, e.g. "pushups"
	RemotePath string // repo-relative path, e.g. "pushups/00018209.mp4"
	LocalPath  string // workspace-relative path once downloaded
}

// IsVideoFile reports whether name has one of the given extensions
// (case-insensitive). An empty exts list falls back to DefaultVideoExts.
func IsVideoFile(name string, exts []string) bool {
	if len(exts) == 0 {
		exts = DefaultVideoExts
	}
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// ClassOf extracts the class (top-level directory) from a repo-relative
// path. Files at the repo root have no class.
func ClassOf(repoPath string) (string, bool) {
	clean := path.Clean(strings.TrimPrefix(repoPath, "/"))
	i := strings.IndexByte(clean, '/')
	if i <= 0 {
		return "", false
	}
	return clean[:i], true
}
