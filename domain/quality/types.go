package quality

import (
	"math"

	"dataqa/domain/core"
	"dataqa/domain/dataset"
)

// ColumnProfile summarizes one column's type and completeness
type ColumnProfile struct {
	Name        string
	Kind        dataset.ColumnKind
	NonNull     int
	Missing     int
	MissingPct  float64
	Unique      int
	MemoryBytes int64
}

// BasicStats holds the describe-style summary of one column. Every column
// gets a row: categorical columns fill Top and Freq with the numeric fields
// NaN, numeric columns the reverse. Quartiles use linear interpolation
// between order statistics and the standard deviation is the sample (n-1)
// flavor.
type BasicStats struct {
	Column string
	Count  int
	Unique int
	Top    string
	Freq   int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// IsNumeric reports whether the row carries numeric statistics.
func (b *BasicStats) IsNumeric() bool {
	return !math.IsNaN(b.Mean)
}

// DistributionStats holds location, shape and outlier measures for a
// numeric column. Skewness and Kurtosis are the bias-corrected sample
// estimators; both are NaN when the sample is too small for the correction
// terms. Fences are the 1.5 IQR rule with boundary values kept inside; a
// zero IQR opens the fences to infinity so the column reports no outliers.
// OutlierPct is relative to the full row count.
type DistributionStats struct {
	Column       string
	Mean         float64
	Median       float64
	Std          float64
	Skewness     float64
	Kurtosis     float64
	IQR          float64
	LowerFence   float64
	UpperFence   float64
	OutlierCount int
	OutlierPct   float64
	Outliers     []float64
}

// DuplicateSummary counts fully identical rows across all columns.
// The first occurrence of each distinct row is not a duplicate.
type DuplicateSummary struct {
	TotalRows     int
	DuplicateRows int
	UniqueRows    int
	DuplicatePct  float64
}

// CorrelationMatrix holds pairwise Pearson correlations between numeric
// columns, computed on pairwise-complete observations. Degenerate pairs
// carry NaN; the diagonal is always exactly 1.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// At returns the correlation between columns i and j.
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// Dim returns the matrix dimension.
func (m *CorrelationMatrix) Dim() int {
	return len(m.Columns)
}

// CorrelatedPair names two columns and their correlation
type CorrelatedPair struct {
	A core.ColumnKey `json:"a"`
	B core.ColumnKey `json:"b"`
	R float64        `json:"r"`
}

// StrongPairs returns the off-diagonal pairs with |r| >= threshold,
// each pair reported once in column order.
func (m *CorrelationMatrix) StrongPairs(threshold float64) []CorrelatedPair {
	var pairs []CorrelatedPair
	for i := 0; i < len(m.Columns); i++ {
		for j := i + 1; j < len(m.Columns); j++ {
			r := m.Values[i][j]
			if !math.IsNaN(r) && math.Abs(r) >= threshold {
				pairs = append(pairs, CorrelatedPair{
					A: core.ColumnKey(m.Columns[i]),
					B: core.ColumnKey(m.Columns[j]),
					R: r,
				})
			}
		}
	}
	return pairs
}

// ColumnFailure records a column whose analysis was skipped after an error
type ColumnFailure struct {
	Column core.ColumnKey `json:"column"`
	Reason string         `json:"reason"`
}

// Report is the complete result of one quality analysis run
type Report struct {
	RunID        core.RunID
	GeneratedAt  core.Timestamp
	SourcePath   string
	Rows         int
	Cols         int
	MemoryBytes  int64
	Profiles     []ColumnProfile
	Basic        []BasicStats
	Distribution []DistributionStats
	Duplicates   DuplicateSummary
	Correlations *CorrelationMatrix
	Failures     []ColumnFailure
	Warnings     []string
}

// NumericColumnNames returns the columns that produced numeric statistics,
// in report order.
func (r *Report) NumericColumnNames() []string {
	var names []string
	for i := range r.Basic {
		if r.Basic[i].IsNumeric() {
			names = append(names, r.Basic[i].Column)
		}
	}
	return names
}
