package analysis

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"dataqa/domain/core"
	"dataqa/domain/dataset"
	"dataqa/domain/quality"
	"dataqa/internal"
	"dataqa/internal/config"
	"dataqa/internal/errors"
)

// Engine runs the full quality analysis over a dataset
type Engine struct {
	cfg *config.Config
	log *internal.Logger
}

// NewEngine creates an analysis engine
func NewEngine(cfg *config.Config, log *internal.Logger) *Engine {
	return &Engine{cfg: cfg, log: log}
}

// Analyze produces the quality report for a dataset. Empty input is fatal.
// A column that fails to analyze is recorded as a failure and skipped; the
// run continues with the remaining columns.
func (e *Engine) Analyze(ds *dataset.Dataset, source string) (*quality.Report, error) {
	if ds.IsEmpty() {
		return nil, errors.Input("dataset has no rows or columns", nil)
	}

	report := &quality.Report{
		RunID:       core.NewRunID(),
		GeneratedAt: core.Now(),
		SourcePath:  source,
		Rows:        ds.Rows(),
		Cols:        ds.Cols(),
	}

	if ds.Cols() > e.cfg.MaxColumns {
		warning := fmt.Sprintf("dataset has %d columns, above the advisory ceiling of %d; charts may be slow",
			ds.Cols(), e.cfg.MaxColumns)
		e.log.Warn("%s", warning)
		report.Warnings = append(report.Warnings, warning)
	}

	for _, col := range ds.Columns {
		p := profileColumn(&col, ds.Rows())
		report.Profiles = append(report.Profiles, p)
		report.MemoryBytes += p.MemoryBytes
	}

	var numeric []dataset.Column
	for _, col := range ds.Columns {
		if col.Kind != dataset.KindNumeric {
			report.Basic = append(report.Basic, describeCategorical(&col))
			continue
		}
		basic, dist, err := e.analyzeNumeric(&col, ds.Rows())
		if err != nil {
			e.log.Error("skipping column: %v", err)
			report.Failures = append(report.Failures, quality.ColumnFailure{
				Column: core.ColumnKey(col.Name),
				Reason: err.Error(),
			})
			continue
		}
		report.Basic = append(report.Basic, basic)
		report.Distribution = append(report.Distribution, dist)
		numeric = append(numeric, col)
	}

	report.Duplicates = countDuplicates(ds)
	report.Correlations = Correlations(numeric)

	e.log.Info("analyzed %d rows, %d columns (%d numeric, %d failed)",
		ds.Rows(), ds.Cols(), len(numeric), len(report.Failures))
	return report, nil
}

func profileColumn(col *dataset.Column, rows int) quality.ColumnProfile {
	missing := col.MissingCount()
	pct := 0.0
	if rows > 0 {
		pct = float64(missing) / float64(rows) * 100
	}
	return quality.ColumnProfile{
		Name:        col.Name,
		Kind:        col.Kind,
		NonNull:     rows - missing,
		Missing:     missing,
		MissingPct:  pct,
		Unique:      col.UniqueCount(),
		MemoryBytes: col.MemoryEstimate(),
	}
}

// analyzeNumeric computes basic and distribution statistics for one column.
// Outlier percentage is relative to the full row count, not the non-missing
// count. The recover guard turns a panic from a degenerate input into a
// per-column failure instead of taking down the run.
func (e *Engine) analyzeNumeric(col *dataset.Column, rows int) (basic quality.BasicStats, dist quality.DistributionStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.ColumnAnalysis(col.Name, fmt.Errorf("panic: %v", r))
		}
	}()

	values := col.NonMissing()
	if len(values) == 0 {
		return basic, dist, errors.ColumnAnalysis(col.Name, fmt.Errorf("no non-missing values"))
	}

	data := stats.Float64Data(values)
	mean, meanErr := data.Mean()
	if meanErr != nil {
		return basic, dist, errors.ColumnAnalysis(col.Name, meanErr)
	}
	min, _ := data.Min()
	max, _ := data.Max()

	// Sample (n-1) standard deviation; undefined for a single value.
	std := 0.0
	if len(values) > 1 {
		if s, sErr := data.StandardDeviationSample(); sErr == nil {
			std = s
		}
	}

	q1 := Quantile(values, 0.25)
	median := Quantile(values, 0.50)
	q3 := Quantile(values, 0.75)

	basic = quality.BasicStats{
		Column: col.Name,
		Count:  len(values),
		Unique: col.UniqueCount(),
		Mean:   mean,
		Std:    std,
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
	}

	iqr, lower, upper := Fences(values, e.cfg.IQRMultiplier)
	outliers := Outliers(values, lower, upper)
	dist = quality.DistributionStats{
		Column:       col.Name,
		Mean:         mean,
		Median:       median,
		Std:          std,
		Skewness:     Skewness(values),
		Kurtosis:     Kurtosis(values),
		IQR:          iqr,
		LowerFence:   lower,
		UpperFence:   upper,
		OutlierCount: len(outliers),
		OutlierPct:   float64(len(outliers)) / float64(rows) * 100,
		Outliers:     outliers,
	}
	return basic, dist, nil
}

// describeCategorical builds the describe row of a non-numeric column:
// count, unique, modal value and its frequency. Numeric fields stay NaN.
// Ties on the mode break toward the lexicographically smaller value so
// repeated runs describe the same data identically.
func describeCategorical(col *dataset.Column) quality.BasicStats {
	counts := make(map[string]int)
	nonNull := 0
	for _, cell := range col.Raw {
		if dataset.IsMissing(cell) {
			continue
		}
		counts[cell]++
		nonNull++
	}

	top, freq := "", 0
	for v, c := range counts {
		if c > freq || (c == freq && v < top) {
			top, freq = v, c
		}
	}

	nan := math.NaN()
	return quality.BasicStats{
		Column: col.Name,
		Count:  nonNull,
		Unique: len(counts),
		Top:    top,
		Freq:   freq,
		Mean:   nan,
		Std:    nan,
		Min:    nan,
		Q1:     nan,
		Median: nan,
		Q3:     nan,
		Max:    nan,
	}
}

// countDuplicates fingerprints each full row; every occurrence after the
// first of a fingerprint counts as a duplicate.
func countDuplicates(ds *dataset.Dataset) quality.DuplicateSummary {
	seen := make(map[core.RowFingerprint]bool, ds.Rows())
	duplicates := 0
	for r := 0; r < ds.Rows(); r++ {
		fp := core.FingerprintRow(ds.Row(r))
		if seen[fp] {
			duplicates++
			continue
		}
		seen[fp] = true
	}
	pct := 0.0
	if ds.Rows() > 0 {
		pct = float64(duplicates) / float64(ds.Rows()) * 100
	}
	return quality.DuplicateSummary{
		TotalRows:     ds.Rows(),
		DuplicateRows: duplicates,
		UniqueRows:    len(seen),
		DuplicatePct:  pct,
	}
}
