package usecase

import (
	"context"
	"sync"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

// --- hub fakes ---

type fakeLister struct {
	files []string
	err   error
}

func (f fakeLister) ListFiles(_ context.Context) ([]string, error) {
	return f.files, f.err
}

type fakeDownloader struct {
	mu     sync.Mutex
	got    map[string]string // repoPath -> localPath
	failOn map[string]error
}

func (f *fakeDownloader) DownloadFile(ctx context.Context, repoPath, localPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.got == nil {
		f.got = map[string]string{}
	}
	if err, ok := f.failOn[repoPath]; ok {
		return err
	}
	f.got[repoPath] = localPath
	return nil
}

type fakeDeleter struct {
	paths   []string
	summary string
	err     error
}

func (f *fakeDeleter) DeleteFiles(_ context.Context, repoPaths []string, summary string) error {
	f.paths = repoPaths
	f.summary = summary
	return f.err
}

// --- store fakes ---

type fakeManifestStore struct {
	saved    domain.Manifest
	savedDir string

	loaded  domain.Manifest
	loadErr error
}

func (f *fakeManifestStore) Save(dir string, m domain.Manifest) (string, error) {
	f.savedDir = dir
	f.saved = m
	return dir + "/manifest.json", nil
}

func (f *fakeManifestStore) Load(_ string) (domain.Manifest, error) {
	return f.loaded, f.loadErr
}

type fakeRunStore struct {
	saved bool
	last  domain.CleanRun
	err   error
}

func (f *fakeRunStore) SaveCleanRun(run domain.CleanRun) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = true
	f.last = run
	return "run-123", nil
}

// --- cleaning fakes ---

type fakeScanner struct {
	classes []ports.DatasetClass
	err     error
}

func (f fakeScanner) ScanClasses(_ string) ([]ports.DatasetClass, error) {
	return f.classes, f.err
}

type analyzeCall struct {
	path        string
	checkMotion bool
}

type fakeAnalyzer struct {
	metrics map[string]domain.QualityMetrics // keyed by file base name
	err     error
	calls   []analyzeCall
}

func (f *fakeAnalyzer) Analyze(_ context.Context, path string, checkMotion bool) (domain.QualityMetrics, error) {
	f.calls = append(f.calls, analyzeCall{path: path, checkMotion: checkMotion})
	if f.err != nil {
		return domain.QualityMetrics{}, f.err
	}
	for name, m := range f.metrics {
		if len(path) >= len(name) && path[len(path)-len(name):] == name {
			return m, nil
		}
	}
	return goodMetrics(), nil
}

type fakeFlags struct {
	flags map[string]bool
	err   error
}

func (f fakeFlags) LoadFlags(_ string) (map[string]bool, error) {
	return f.flags, f.err
}

type fakeCopier struct {
	copies map[string]string // src -> dst
	err    error
}

func (f *fakeCopier) CopyVideo(src, dst string) error {
	if f.err != nil {
		return f.err
	}
	if f.copies == nil {
		f.copies = map[string]string{}
	}
	f.copies[src] = dst
	return nil
}

type fakeSink struct {
	perClass []domain.ClassStats
	totals   domain.ClassStats
	details  []domain.VideoReport
	err      error
}

func (f *fakeSink) WriteSummary(_ string, perClass []domain.ClassStats, totals domain.ClassStats) (string, error) {
	f.perClass = perClass
	f.totals = totals
	return "cleaning_report.csv", f.err
}

func (f *fakeSink) WriteDetails(_ string, rows []domain.VideoReport) (string, error) {
	f.details = rows
	return "exercise_analysis_report.csv", f.err
}

func goodMetrics() domain.QualityMetrics {
	return domain.QualityMetrics{
		Width:          1280,
		Height:         720,
		MeanBrightness: 110,
		Sharpness:      150,
		MotionChecked:  true,
		Motion:         domain.MotionStats{Detected: true},
	}
}

// compile-time checks
var (
	_ ports.HubLister         = fakeLister{}
	_ ports.HubDownloader     = (*fakeDownloader)(nil)
	_ ports.HubDeleter        = (*fakeDeleter)(nil)
	_ ports.ManifestStore     = (*fakeManifestStore)(nil)
	_ ports.RunStore          = (*fakeRunStore)(nil)
	_ ports.DatasetScanner    = fakeScanner{}
	_ ports.VideoAnalyzer     = (*fakeAnalyzer)(nil)
	_ ports.MotionFlagsLoader = fakeFlags{}
	_ ports.DatasetCopier     = (*fakeCopier)(nil)
	_ ports.ReportSink        = (*fakeSink)(nil)
)
