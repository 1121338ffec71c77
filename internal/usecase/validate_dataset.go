package usecase

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

type ValidateDataset struct {
	scanner   ports.DatasetScanner
	flags     ports.MotionFlagsLoader
	manifests ports.ManifestStore
	root      string
	cfg       domain.Config
}

func NewValidateDataset(scanner ports.DatasetScanner, flags ports.MotionFlagsLoader, ms ports.ManifestStore, root string, cfg domain.Config) *ValidateDataset {
	return &ValidateDataset{
		scanner:   scanner,
		flags:     flags,
		manifests: ms,
		root:      root,
		cfg:       cfg,
	}
}

// ValidationReport lists the consistency gaps found in a workspace.
type ValidationReport struct {
	Classes int
	Videos  int

	MissingFlags []string // classes without a motion overview entry
	Unmanifested []string // videos on disk missing from the manifest
	MissingFiles []string // manifest entries with no file on disk

	ManifestMissing bool
}

func (r ValidationReport) Clean() bool {
	return len(r.MissingFlags) == 0 &&
		len(r.Unmanifested) == 0 &&
		len(r.MissingFiles) == 0 &&
		!r.ManifestMissing
}

// Execute cross-checks the dataset tree against the motion overview and
// the download manifest without touching any video content.
func (uc *ValidateDataset) Execute(ctx context.Context) (ValidationReport, error) {
	var rep ValidationReport

	motionFlags, err := uc.flags.LoadFlags(filepath.Join(uc.root, uc.cfg.Motion.FlagsFile))
	if err != nil {
		return rep, err
	}

	classes, err := uc.scanner.ScanClasses(filepath.Join(uc.root, uc.cfg.Paths.DatasetDir))
	if err != nil {
		return rep, err
	}

	onDisk := map[string]bool{}
	for _, class := range classes {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		rep.Classes++
		rep.Videos += len(class.Videos)

		if _, ok := motionFlags[class.Name]; !ok {
			rep.MissingFlags = append(rep.MissingFlags, class.Name)
		}

		for _, file := range class.Videos {
			rel, err := filepath.Rel(uc.root, filepath.Join(class.Dir, file))
			if err != nil {
				continue
			}
			onDisk[filepath.ToSlash(rel)] = true
		}
	}
	sort.Strings(rep.MissingFlags)

	manifest, err := uc.manifests.Load(filepath.Join(uc.root, uc.cfg.Paths.DatasetDir))
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			rep.ManifestMissing = true
			return rep, nil
		}
		return rep, err
	}

	for path := range onDisk {
		if _, ok := manifest[path]; !ok {
			rep.Unmanifested = append(rep.Unmanifested, path)
		}
	}
	for path := range manifest {
		if !onDisk[path] {
			rep.MissingFiles = append(rep.MissingFiles, path)
		}
	}
	sort.Strings(rep.Unmanifested)
	sort.Strings(rep.MissingFiles)

	return rep, nil
}
