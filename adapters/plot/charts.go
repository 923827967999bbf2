package plot

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"dataqa/domain/dataset"
	"dataqa/domain/quality"
	"dataqa/internal"
	"dataqa/internal/errors"
)

// Renderer draws the report's PNG charts
type Renderer struct {
	bins int
	log  *internal.Logger
}

// NewRenderer creates a chart renderer with the given histogram bin count
func NewRenderer(bins int, log *internal.Logger) *Renderer {
	return &Renderer{bins: bins, log: log}
}

// RenderAll draws every chart for the report into dir, bounded by workers.
// A chart that fails to render is logged and skipped; the others proceed.
// Returns the paths that rendered successfully.
func (r *Renderer) RenderAll(ctx context.Context, ds *dataset.Dataset, report *quality.Report, dir string, workers int) []string {
	type job struct {
		path string
		draw func(string) error
	}

	var jobs []job
	jobs = append(jobs, job{
		path: filepath.Join(dir, "missing_values.png"),
		draw: func(p string) error { return r.MissingBar(report, p) },
	})
	for _, col := range ds.NumericColumns() {
		values := col.NonMissing()
		if len(values) == 0 {
			continue
		}
		name := col.Name
		jobs = append(jobs,
			job{
				path: filepath.Join(dir, fmt.Sprintf("distribution_%s.png", sanitize(name))),
				draw: func(p string) error { return r.Histogram(name, values, p) },
			},
			job{
				path: filepath.Join(dir, fmt.Sprintf("boxplot_%s.png", sanitize(name))),
				draw: func(p string) error { return r.BoxPlot(name, values, p) },
			},
		)
	}
	if report.Correlations != nil {
		jobs = append(jobs, job{
			path: filepath.Join(dir, "correlation_heatmap.png"),
			draw: func(p string) error { return r.Heatmap(report.Correlations, p) },
		})
	}

	rendered := make([]string, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if err := j.draw(j.path); err != nil {
				r.log.Error("%v", errors.Render(j.path, err))
				return nil
			}
			rendered[i] = j.path
			return nil
		})
	}
	_ = g.Wait()

	var out []string
	for _, p := range rendered {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MissingBar draws missing-value counts per column as a bar chart.
func (r *Renderer) MissingBar(report *quality.Report, path string) error {
	p := plot.New()
	p.Title.Text = "Missing Values by Column"
	p.Y.Label.Text = "Missing Count"

	values := make(plotter.Values, len(report.Profiles))
	names := make([]string, len(report.Profiles))
	for i, prof := range report.Profiles {
		values[i] = float64(prof.Missing)
		names[i] = prof.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = 0
	bars.Color = color.RGBA{R: 214, G: 96, B: 77, A: 255}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = -0.9

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// Histogram draws a normalized histogram with a Gaussian kernel density
// overlay for one numeric column.
func (r *Renderer) Histogram(column string, values []float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s", column)
	p.X.Label.Text = column
	p.Y.Label.Text = "Density"

	hist, err := plotter.NewHist(plotter.Values(values), r.bins)
	if err != nil {
		return err
	}
	hist.Normalize(1)
	hist.FillColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	p.Add(hist)

	if curve := kdeCurve(values); curve != nil {
		line, err := plotter.NewLine(curve)
		if err != nil {
			return err
		}
		line.Width = vg.Points(2)
		line.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
		p.Add(line)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// BoxPlot draws a box-and-whisker plot for one numeric column.
func (r *Renderer) BoxPlot(column string, values []float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Box Plot of %s", column)
	p.Y.Label.Text = column

	box, err := plotter.NewBoxPlot(vg.Points(50), 0, plotter.Values(values))
	if err != nil {
		return err
	}
	p.Add(box)
	p.NominalX(column)

	return p.Save(4*vg.Inch, 6*vg.Inch, path)
}

// Heatmap draws the correlation matrix on a blue-red diverging palette
// pinned to [-1, 1]. NaN cells are drawn as zero.
func (r *Renderer) Heatmap(m *quality.CorrelationMatrix, path string) error {
	p := plot.New()
	p.Title.Text = "Correlation Heatmap"

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	heat := plotter.NewHeatMap(corrGrid{m}, cm.Palette(255))
	heat.Min = -1
	heat.Max = 1
	p.Add(heat)
	p.NominalX(m.Columns...)
	p.NominalY(m.Columns...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = -0.9

	return p.Save(7*vg.Inch, 6*vg.Inch, path)
}

// corrGrid adapts a correlation matrix to the heatmap grid interface
type corrGrid struct {
	m *quality.CorrelationMatrix
}

func (g corrGrid) Dims() (int, int) { n := g.m.Dim(); return n, n }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }

func (g corrGrid) Z(c, r int) float64 {
	v := g.m.At(r, c)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// kdeCurve evaluates a Gaussian kernel density estimate over 200 points,
// using Silverman's rule of thumb for the bandwidth. Returns nil when the
// sample is too small or constant for a meaningful bandwidth.
func kdeCurve(values []float64) plotter.XYs {
	n := len(values)
	if n < 2 {
		return nil
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)
	var ss float64
	for _, v := range values {
		ss += (v - mean) * (v - mean)
	}
	sigma := math.Sqrt(ss / float64(n-1))
	if sigma == 0 {
		return nil
	}
	h := 1.06 * sigma * math.Pow(float64(n), -0.2)

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo -= 3 * h
	hi += 3 * h

	const points = 200
	curve := make(plotter.XYs, points)
	step := (hi - lo) / float64(points-1)
	norm := 1 / (float64(n) * h * math.Sqrt(2*math.Pi))
	for i := 0; i < points; i++ {
		x := lo + float64(i)*step
		var density float64
		for _, v := range values {
			z := (x - v) / h
			density += math.Exp(-0.5 * z * z)
		}
		curve[i].X = x
		curve[i].Y = density * norm
	}
	return curve
}

// sanitize maps a column name to a safe file name fragment.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
