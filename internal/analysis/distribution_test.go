package analysis

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestQuantileLinearInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	cases := []struct {
		p    float64
		want float64
	}{
		{0.25, 1.75},
		{0.50, 2.5},
		{0.75, 3.25},
		{0, 1},
		{1, 4},
	}
	for _, c := range cases {
		if got := Quantile(values, c.p); !almostEqual(got, c.want, 1e-12) {
			t.Errorf("Quantile(%v, %v) = %v, want %v", values, c.p, got, c.want)
		}
	}
}

func TestQuantileEdgeCases(t *testing.T) {
	if got := Quantile(nil, 0.5); !math.IsNaN(got) {
		t.Errorf("empty input: got %v, want NaN", got)
	}
	if got := Quantile([]float64{7}, 0.25); got != 7 {
		t.Errorf("single value: got %v, want 7", got)
	}
	// input order must not matter
	if got := Quantile([]float64{4, 1, 3, 2}, 0.5); !almostEqual(got, 2.5, 1e-12) {
		t.Errorf("unsorted input: got %v, want 2.5", got)
	}
}

func TestFencesAndOutliers(t *testing.T) {
	values := []float64{1, 2, 2, 3, 100}
	iqr, lower, upper := Fences(values, 1.5)

	if !almostEqual(iqr, 1, 1e-12) {
		t.Errorf("IQR = %v, want 1", iqr)
	}
	if !almostEqual(lower, 0.5, 1e-12) {
		t.Errorf("lower fence = %v, want 0.5", lower)
	}
	if !almostEqual(upper, 4.5, 1e-12) {
		t.Errorf("upper fence = %v, want 4.5", upper)
	}

	out := Outliers(values, lower, upper)
	if len(out) != 1 || out[0] != 100 {
		t.Errorf("outliers = %v, want [100]", out)
	}
}

func TestOutliersBoundaryValuesInside(t *testing.T) {
	out := Outliers([]float64{0.5, 2, 3, 4.5}, 0.5, 4.5)
	if len(out) != 0 {
		t.Errorf("fence values flagged as outliers: %v", out)
	}
}

func TestFencesZeroIQR(t *testing.T) {
	values := []float64{5, 5, 5, 5}
	iqr, lower, upper := Fences(values, 1.5)
	if iqr != 0 || !math.IsInf(lower, -1) || !math.IsInf(upper, 1) {
		t.Errorf("constant column: iqr=%v lower=%v upper=%v", iqr, lower, upper)
	}
	if out := Outliers(values, lower, upper); len(out) != 0 {
		t.Errorf("constant column produced outliers: %v", out)
	}
}

func TestFencesNearConstantColumn(t *testing.T) {
	// quartiles coincide, so the IQR is zero even though values deviate;
	// the rule is disabled rather than flagging every deviation
	values := []float64{9, 9, 9, 9, 9, 100}
	iqr, lower, upper := Fences(values, 1.5)
	if iqr != 0 {
		t.Fatalf("IQR = %v, want 0", iqr)
	}
	if out := Outliers(values, lower, upper); len(out) != 0 {
		t.Errorf("near-constant column produced outliers: %v", out)
	}
}

func TestSkewness(t *testing.T) {
	if got := Skewness([]float64{1, 2, 3, 4, 5}); !almostEqual(got, 0, 1e-12) {
		t.Errorf("symmetric data: skewness = %v, want 0", got)
	}
	// bias-corrected value matching the usual sample estimator
	if got := Skewness([]float64{1, 1, 1, 1, 10}); !almostEqual(got, math.Sqrt(5), 1e-9) {
		t.Errorf("right tail: skewness = %v, want %v", got, math.Sqrt(5))
	}
	if got := Skewness([]float64{1, 2}); !math.IsNaN(got) {
		t.Errorf("n=2: got %v, want NaN", got)
	}
	if got := Skewness([]float64{3, 3, 3, 3}); !math.IsNaN(got) {
		t.Errorf("constant: got %v, want NaN", got)
	}
}

func TestKurtosis(t *testing.T) {
	if got := Kurtosis([]float64{1, 2, 3, 4, 5}); !almostEqual(got, -1.2, 1e-9) {
		t.Errorf("uniform ramp: kurtosis = %v, want -1.2", got)
	}
	if got := Kurtosis([]float64{1, 2, 3}); !math.IsNaN(got) {
		t.Errorf("n=3: got %v, want NaN", got)
	}
	if got := Kurtosis([]float64{2, 2, 2, 2, 2}); !math.IsNaN(got) {
		t.Errorf("constant: got %v, want NaN", got)
	}
}
