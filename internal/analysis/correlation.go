package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"dataqa/domain/dataset"
	"dataqa/domain/quality"
)

// Correlations computes the pairwise Pearson correlation matrix over the
// numeric columns, using only rows where both columns are present. Pairs
// with fewer than two complete rows or zero variance carry NaN. Needs at
// least two numeric columns; returns nil otherwise.
func Correlations(columns []dataset.Column) *quality.CorrelationMatrix {
	if len(columns) < 2 {
		return nil
	}

	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}

	values := make([][]float64, len(columns))
	for i := range values {
		values[i] = make([]float64, len(columns))
		values[i][i] = 1.0
	}

	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r := pairwiseCorrelation(columns[i].Values, columns[j].Values)
			values[i][j] = r
			values[j][i] = r
		}
	}

	return &quality.CorrelationMatrix{Columns: names, Values: values}
}

// pairwiseCorrelation masks out rows where either side is missing before
// handing the complete pairs to gonum.
func pairwiseCorrelation(a, b []float64) float64 {
	var xs, ys []float64
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		xs = append(xs, a[i])
		ys = append(ys, b[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
