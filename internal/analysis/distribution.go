package analysis

import (
	"math"
	"sort"
)

// Quantile computes the p-th quantile (0 <= p <= 1) of values by linear
// interpolation between order statistics, the index being p*(n-1).
// The input need not be sorted. Returns NaN for an empty slice.
func Quantile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return values[0]
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := p * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// centralMoment computes the k-th central moment of values.
func centralMoment(values []float64, k int) float64 {
	n := float64(len(values))
	if n == 0 {
		return math.NaN()
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= n

	var sum float64
	for _, v := range values {
		sum += math.Pow(v-mean, float64(k))
	}
	return sum / n
}

// Skewness computes the adjusted Fisher-Pearson standardized third moment,
//
//	G1 = sqrt(n(n-1)) / (n-2) * m3 / m2^1.5
//
// Returns NaN when n < 3 or the column is constant.
func Skewness(values []float64) float64 {
	n := float64(len(values))
	if n < 3 {
		return math.NaN()
	}
	m2 := centralMoment(values, 2)
	m3 := centralMoment(values, 3)
	if m2 == 0 {
		return math.NaN()
	}
	g1 := m3 / math.Pow(m2, 1.5)
	return math.Sqrt(n*(n-1)) / (n - 2) * g1
}

// Kurtosis computes the bias-corrected excess kurtosis,
//
//	G2 = ((n+1)*g2 + 6) * (n-1) / ((n-2)(n-3))   where g2 = m4/m2^2 - 3
//
// Returns NaN when n < 4 or the column is constant.
func Kurtosis(values []float64) float64 {
	n := float64(len(values))
	if n < 4 {
		return math.NaN()
	}
	m2 := centralMoment(values, 2)
	m4 := centralMoment(values, 4)
	if m2 == 0 {
		return math.NaN()
	}
	g2 := m4/(m2*m2) - 3
	return ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
}

// Fences computes the IQR outlier fences with fence factor k (1.5 for the
// classic Tukey rule). A zero IQR disables the rule entirely: the fences
// open to infinity so constant and near-constant columns report zero
// outliers instead of flagging every deviating value.
func Fences(values []float64, k float64) (iqr, lower, upper float64) {
	q1 := Quantile(values, 0.25)
	q3 := Quantile(values, 0.75)
	iqr = q3 - q1
	if iqr == 0 {
		return 0, math.Inf(-1), math.Inf(1)
	}
	lower = q1 - k*iqr
	upper = q3 + k*iqr
	return iqr, lower, upper
}

// Outliers returns the values strictly outside the fences, preserving
// input order. Values sitting exactly on a fence are kept inside.
func Outliers(values []float64, lower, upper float64) []float64 {
	var out []float64
	for _, v := range values {
		if v < lower || v > upper {
			out = append(out, v)
		}
	}
	return out
}
