// Package csvreport writes the cleaning summary and per-file analysis
// reports as CSV, with the same columns as the original QVED pipeline.
package csvreport

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

const (
	SummaryFile = "cleaning_report.csv"
	DetailsFile = "exercise_analysis_report.csv"
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.ReportSink = (*Writer)(nil)

var summaryHeader = []string{
	"Exercise",
	"total_videos",
	"accepted_videos",
	"rejected_videos",
	"corrupted_files",
	"low_resolution",
	"too_dark",
	"too_bright",
	"blurry",
	"insufficient_motion",
}

// WriteSummary writes one row per class plus a TOTAL row.
func (w *Writer) WriteSummary(dir string, perClass []domain.ClassStats, totals domain.ClassStats) (string, error) {
	path := filepath.Join(dir, SummaryFile)

	rows := make([][]string, 0, len(perClass)+2)
	rows = append(rows, summaryHeader)
	for _, cs := range perClass {
		rows = append(rows, summaryRow(cs.Class, cs))
	}
	rows = append(rows, summaryRow("TOTAL", totals))

	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	return path, nil
}

var detailsHeader = []string{
	"exercise",
	"file",
	"width",
	"height",
	"brightness",
	"sharpness",
	"motion_flag",
	"motion_detected",
	"motion_pairs",
	"motion_active_pairs",
	"motion_active_frame_pct",
	"motion_mean_change_ratio",
	"motion_max_change_ratio",
	"decision",
	"reasons",
}

// WriteDetails writes the per-file metrics and decision rows.
func (w *Writer) WriteDetails(dir string, reports []domain.VideoReport) (string, error) {
	path := filepath.Join(dir, DetailsFile)

	rows := make([][]string, 0, len(reports)+1)
	rows = append(rows, detailsHeader)
	for _, r := range reports {
		m := r.Metrics
		rows = append(rows, []string{
			r.Class,
			r.File,
			strconv.Itoa(m.Width),
			strconv.Itoa(m.Height),
			roundCol(m.MeanBrightness, 2),
			roundCol(m.Sharpness, 2),
			strconv.FormatBool(m.MotionChecked),
			strconv.FormatBool(m.Motion.Detected),
			strconv.Itoa(m.Motion.Pairs),
			strconv.Itoa(m.Motion.ActivePairs),
			roundCol(m.Motion.ActiveFramePct, 4),
			roundCol(m.Motion.MeanChangeRatio, 6),
			roundCol(m.Motion.MaxChangeRatio, 6),
			r.Decision(),
			reasonsCol(r.Reasons),
		})
	}

	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	return path, nil
}

func summaryRow(name string, cs domain.ClassStats) []string {
	row := []string{
		name,
		strconv.Itoa(cs.Total),
		strconv.Itoa(cs.Accepted),
		strconv.Itoa(cs.Rejected),
	}
	for _, reason := range domain.AllRejectReasons {
		row = append(row, strconv.Itoa(cs.Reason(reason)))
	}
	return row
}

// roundCol formats a metric column; NaN renders as an empty cell.
func roundCol(v float64, digits int) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

func reasonsCol(reasons []domain.RejectReason) string {
	if len(reasons) == 0 {
		return "passed_all_checks"
	}
	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

func writeCSV(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &domain.OpError{Op: "csvreport.write", Kind: domain.KindExecution, Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &domain.OpError{Op: "csvreport.write", Kind: domain.KindExecution, Path: path, Err: err}
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		f.Close()
		return &domain.OpError{Op: "csvreport.write", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.OpError{Op: "csvreport.write", Kind: domain.KindExecution, Path: path, Err: fmt.Errorf("close: %w", err)}
	}
	return nil
}
