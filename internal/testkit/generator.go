package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces a seeded synthetic customer dataset with deliberate
// quality defects: missing cells, duplicated rows, injected outliers, and
// a strongly correlated numeric pair. The same seed always yields the
// same file.
type Generator struct {
	seed uint64
	rows int
}

// NewGenerator creates a generator for the given seed and base row count
func NewGenerator(seed uint64, rows int) *Generator {
	return &Generator{seed: seed, rows: rows}
}

var (
	segments  = []string{"basic", "standard", "premium", "enterprise"}
	cities    = []string{"Austin", "Denver", "Portland", "Raleigh", "Tucson"}
	sentinels = []string{"", "NA", "null"}
)

// Header returns the column names of the generated dataset.
func (g *Generator) Header() []string {
	return []string{"customer_id", "age", "annual_income", "spend_score", "rating", "segment", "city"}
}

// Records generates the data rows, defects included.
func (g *Generator) Records() [][]string {
	rng := rand.New(rand.NewSource(g.seed))
	ageDist := distuv.Normal{Mu: 38, Sigma: 12, Src: rng}
	incomeDist := distuv.Normal{Mu: 65000, Sigma: 18000, Src: rng}
	noiseDist := distuv.Normal{Mu: 0, Sigma: 6, Src: rng}

	records := make([][]string, 0, g.rows+g.rows/50)
	for i := 0; i < g.rows; i++ {
		age := math.Max(18, math.Min(90, ageDist.Rand()))
		income := math.Max(12000, incomeDist.Rand())
		// spend_score tracks income so the correlation sheet has a
		// strong pair to surface
		spend := math.Max(1, math.Min(100, income*0.0008+noiseDist.Rand()))
		rating := 1 + rng.Intn(10)

		row := []string{
			fmt.Sprintf("C%05d", i+1),
			fmt.Sprintf("%.0f", age),
			fmt.Sprintf("%.2f", income),
			fmt.Sprintf("%.1f", spend),
			fmt.Sprintf("%d", rating),
			segments[rng.Intn(len(segments))],
			cities[rng.Intn(len(cities))],
		}

		// roughly 5% missing ages and incomes, varying the sentinel
		if rng.Float64() < 0.05 {
			row[1] = sentinels[rng.Intn(len(sentinels))]
		}
		if rng.Float64() < 0.05 {
			row[2] = sentinels[rng.Intn(len(sentinels))]
		}
		// a few extreme incomes well past the IQR fences
		if rng.Float64() < 0.01 {
			row[2] = fmt.Sprintf("%.2f", income*8)
		}
		// occasional impossible negative ages
		if rng.Float64() < 0.005 {
			row[1] = fmt.Sprintf("%.0f", -age)
		}

		records = append(records, row)

		// roughly 2% duplicated rows
		if rng.Float64() < 0.02 {
			dup := make([]string, len(row))
			copy(dup, row)
			records = append(records, dup)
		}
	}
	return records
}

// WriteCSV generates the dataset and writes it to path.
func (g *Generator) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(g.Header()); err != nil {
		return err
	}
	for _, row := range g.Records() {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
