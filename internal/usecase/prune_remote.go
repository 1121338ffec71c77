package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

type PruneRemote struct {
	lister  ports.HubLister
	deleter ports.HubDeleter
}

func NewPruneRemote(lister ports.HubLister, deleter ports.HubDeleter) *PruneRemote {
	return &PruneRemote{lister: lister, deleter: deleter}
}

// PruneResult describes what a prune matched and whether it was applied.
type PruneResult struct {
	Folder  string
	Matched []string
	Applied bool
}

// Execute lists the repo and collects files under folder. Without apply
// it is a dry run: matches are returned and nothing is deleted. With
// apply, all matches are removed in a single commit.
func (uc *PruneRemote) Execute(ctx context.Context, folder string, apply bool) (PruneResult, error) {
	res := PruneResult{Folder: folder}

	files, err := uc.lister.ListFiles(ctx)
	if err != nil {
		return res, err
	}

	prefix := strings.Trim(folder, "/") + "/"
	for _, f := range files {
		if strings.HasPrefix(f, prefix) {
			res.Matched = append(res.Matched, f)
		}
	}
	sort.Strings(res.Matched)

	if !apply || len(res.Matched) == 0 {
		return res, nil
	}

	summary := fmt.Sprintf("Delete folder %s (%d files)", strings.Trim(folder, "/"), len(res.Matched))
	if err := uc.deleter.DeleteFiles(ctx, res.Matched, summary); err != nil {
		return res, err
	}
	res.Applied = true
	return res, nil
}
