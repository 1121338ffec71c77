package usecase

import (
	"context"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
	ucsample "github.com/EdgeVLM-Labs/data-prep-lab/internal/usecase/sample"
)

type FetchDataset struct {
	lister     ports.HubLister
	downloader ports.HubDownloader
	manifests  ports.ManifestStore
	root       string
	cfg        domain.Config
	resolver   *domain.LayoutResolver
	onFile     func(Progress)
}

type FetchOption func(*FetchDataset)

// WithFetchProgress registers a per-file progress callback.
func WithFetchProgress(fn func(Progress)) FetchOption {
	return func(uc *FetchDataset) { uc.onFile = fn }
}

func NewFetchDataset(lister ports.HubLister, dl ports.HubDownloader, ms ports.ManifestStore, root string, cfg domain.Config, opts ...FetchOption) *FetchDataset {
	uc := &FetchDataset{
		lister:     lister,
		downloader: dl,
		manifests:  ms,
		root:       root,
		cfg:        cfg,
		resolver:   domain.NewLayoutResolver(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute lists the remote repo, samples a per-class subset, downloads
// it in parallel, writes the manifest, and downloads the repo's
// ground-truth labels file when it has one. Individual download
// failures are counted, not fatal.
func (uc *FetchDataset) Execute(ctx context.Context) (domain.FetchRun, error) {
	run := domain.FetchRun{
		Repo:      uc.cfg.Hub.Repo,
		Revision:  uc.cfg.Hub.Revision,
		StartedAt: time.Now(),
	}

	files, err := uc.lister.ListFiles(ctx)
	if err != nil {
		return run, err
	}

	picks, err := uc.pickVideos(files)
	if err != nil {
		return run, err
	}

	manifest := domain.Manifest{}
	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Hub.Concurrency)

	for _, ref := range picks {
		ref := ref
		g.Go(func() error {
			dlErr := uc.downloader.DownloadFile(gctx, ref.RemotePath, filepath.Join(uc.root, filepath.FromSlash(ref.LocalPath)))
			if dlErr != nil && gctx.Err() != nil {
				return gctx.Err()
			}

			mu.Lock()
			done++
			if dlErr != nil {
				run.Failed++
			} else {
				run.Downloaded++
				manifest[ref.LocalPath] = ref.Class
			}
			ev := Progress{Done: done, Total: len(picks), Path: ref.RemotePath, Err: dlErr}
			mu.Unlock()

			if uc.onFile != nil {
				uc.onFile(ev)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return run, err
	}

	run.Manifest = manifest
	run.FinishedAt = time.Now()

	datasetDir := filepath.Join(uc.root, uc.cfg.Paths.DatasetDir)
	if _, err := uc.manifests.Save(datasetDir, manifest); err != nil {
		return run, err
	}
	uc.fetchGroundTruth(ctx, files, datasetDir, &run)
	return run, nil
}

// fetchGroundTruth downloads the repo's fine-grained labels file when
// the listing carries one. A repo without it, or a failed download, is
// recorded on the run rather than failing the fetch.
func (uc *FetchDataset) fetchGroundTruth(ctx context.Context, files []string, datasetDir string, run *domain.FetchRun) {
	name := uc.cfg.Hub.GroundTruth

	remote := ""
	for _, f := range files {
		if f == name || strings.HasSuffix(f, "/"+name) {
			remote = f
			break
		}
	}
	if remote == "" {
		return
	}

	dst := filepath.Join(datasetDir, name)
	if err := uc.downloader.DownloadFile(ctx, remote, dst); err != nil {
		run.GroundTruthErr = err
		return
	}
	run.GroundTruth = dst
}

// pickVideos groups repo files by class and samples up to max_per_class
// from each, in stable class and file order so the same seed always
// selects the same subset.
func (uc *FetchDataset) pickVideos(files []string) ([]domain.VideoRef, error) {
	byClass := map[string][]string{}
	for _, f := range files {
		if !domain.IsVideoFile(f, []string{uc.cfg.Hub.VideoExt}) {
			continue
		}
		class, ok := domain.ClassOf(f)
		if !ok {
			continue
		}
		byClass[class] = append(byClass[class], f)
	}

	classes := make([]string, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	smp := ucsample.New(uc.cfg.Hub.Seed)

	var picks []domain.VideoRef
	for _, class := range classes {
		candidates := byClass[class]
		sort.Strings(candidates)

		for _, repoPath := range smp.Pick(candidates, uc.cfg.Hub.MaxPerClass) {
			rel, err := uc.resolver.Resolve(uc.cfg.Paths.Layout, domain.VideoVars(class, path.Base(repoPath)))
			if err != nil {
				return nil, err
			}
			picks = append(picks, domain.VideoRef{
				Class:      class,
				RemotePath: repoPath,
				LocalPath:  path.Join(uc.cfg.Paths.DatasetDir, rel),
			})
		}
	}
	return picks, nil
}
