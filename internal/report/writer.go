package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dataqa/adapters/csvfile"
	"dataqa/adapters/excel"
	plotcharts "dataqa/adapters/plot"
	"dataqa/domain/core"
	"dataqa/domain/dataset"
	"dataqa/domain/quality"
	"dataqa/internal"
	"dataqa/internal/analysis"
	"dataqa/internal/config"
	"dataqa/internal/errors"
)

// DataReader loads a tabular file into a dataset
type DataReader interface {
	Read(path string) (*dataset.Dataset, error)
}

// ReaderFor picks a reader by file extension, defaulting to CSV.
func ReaderFor(path string) DataReader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return excel.NewReader()
	default:
		return csvfile.NewReader()
	}
}

// strongCorrelationThreshold is the |r| above which a pair of columns is
// called out in the manifest.
const strongCorrelationThreshold = 0.8

// Manifest records what a run produced, written alongside the workbook
type Manifest struct {
	RunID       core.RunID               `json:"run_id"`
	GeneratedAt core.Timestamp           `json:"generated_at"`
	Source      string                   `json:"source"`
	Rows        int                      `json:"rows"`
	Cols        int                      `json:"cols"`
	MemoryBytes int64                    `json:"memory_bytes"`
	Workbook    string                   `json:"workbook,omitempty"`
	Charts      []string                 `json:"charts,omitempty"`
	Strong      []quality.CorrelatedPair `json:"strong_correlations,omitempty"`
	Warnings    []string                 `json:"warnings,omitempty"`
	Failures    []quality.ColumnFailure  `json:"failures,omitempty"`
}

// Writer drives one end-to-end analysis run
type Writer struct {
	cfg *config.Config
	log *internal.Logger
}

// NewWriter creates a run writer
func NewWriter(cfg *config.Config, log *internal.Logger) *Writer {
	return &Writer{cfg: cfg, log: log}
}

// Run reads the input, analyzes it, and writes the report directory.
// Input and analysis errors are fatal; a workbook or chart that fails to
// render is logged and recorded in the manifest, and the run still
// succeeds. Returns the output directory path.
func (w *Writer) Run(ctx context.Context, inputPath string) (string, error) {
	ds, err := ReaderFor(inputPath).Read(inputPath)
	if err != nil {
		return "", err
	}
	w.log.Info("loaded %s: %d rows, %d columns", inputPath, ds.Rows(), ds.Cols())

	engine := analysis.NewEngine(w.cfg, w.log)
	rep, err := engine.Analyze(ds, inputPath)
	if err != nil {
		return "", err
	}

	dir := fmt.Sprintf("%s_%s", w.cfg.OutPrefix, rep.GeneratedAt.RunStamp())
	plotsDir := filepath.Join(dir, "plots")
	if err := os.MkdirAll(plotsDir, 0o755); err != nil {
		return "", errors.Input(fmt.Sprintf("cannot create %s", plotsDir), err)
	}

	manifest := Manifest{
		RunID:       rep.RunID,
		GeneratedAt: rep.GeneratedAt,
		Source:      inputPath,
		Rows:        rep.Rows,
		Cols:        rep.Cols,
		MemoryBytes: rep.MemoryBytes,
		Warnings:    rep.Warnings,
		Failures:    rep.Failures,
	}
	if rep.Correlations != nil {
		manifest.Strong = rep.Correlations.StrongPairs(strongCorrelationThreshold)
		for _, pair := range manifest.Strong {
			w.log.Info("strong correlation: %s / %s r=%.3f", pair.A, pair.B, pair.R)
		}
	}

	workbook := filepath.Join(dir, "data_quality_report.xlsx")
	skipped, err := excel.NewWriter().Write(rep, workbook)
	if err != nil {
		return "", err
	}
	for _, s := range skipped {
		w.log.Error("sheet skipped: %s", s)
		manifest.Warnings = append(manifest.Warnings, fmt.Sprintf("sheet skipped: %s", s))
	}
	manifest.Workbook = workbook
	w.log.Info("wrote %s", workbook)

	if w.cfg.NoPlots {
		w.log.Info("chart rendering disabled")
	} else {
		renderer := plotcharts.NewRenderer(w.cfg.HistogramBins, w.log)
		manifest.Charts = renderer.RenderAll(ctx, ds, rep, plotsDir, w.cfg.PlotWorkers)
		w.log.Info("rendered %d charts", len(manifest.Charts))
	}

	if err := w.writeManifest(dir, &manifest); err != nil {
		w.log.Error("%v", err)
	}
	return dir, nil
}

func (w *Writer) writeManifest(dir string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Render("manifest", err)
	}
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Render(path, err)
	}
	return nil
}
