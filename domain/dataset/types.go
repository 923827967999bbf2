package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ColumnKind classifies a column's inferred value kind
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// Column holds one named column of equal-length cells.
// Raw keeps the cells as read; for numeric columns Values holds the parsed
// floats with NaN marking missing entries. Columns are never mutated after
// load; every statistic is computed into a separate report value.
type Column struct {
	Name   string
	Kind   ColumnKind
	Raw    []string
	Values []float64 // len == len(Raw) for numeric columns, nil otherwise
}

// Dataset is an ordered sequence of named columns, all equal length.
type Dataset struct {
	Columns []Column
	rows    int
}

// missing-value sentinels matching what the usual CSV exporters emit for
// null cells (case-insensitive, compared after trimming)
var missingSentinels = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

// IsMissing reports whether a raw cell counts as a missing value.
func IsMissing(cell string) bool {
	return missingSentinels[strings.ToLower(strings.TrimSpace(cell))]
}

// New builds a Dataset from a header row and row-major records.
// Ragged rows are padded with empty (missing) cells; extra cells beyond the
// header are dropped, mirroring how the raw files are read.
func New(headers []string, records [][]string) *Dataset {
	cols := make([]Column, len(headers))
	for i, name := range headers {
		raw := make([]string, len(records))
		for r, record := range records {
			if i < len(record) {
				raw[r] = strings.TrimSpace(record[i])
			}
		}
		cols[i] = classify(strings.TrimSpace(name), raw)
	}
	return &Dataset{Columns: cols, rows: len(records)}
}

// classify infers the column kind once at load time: numeric iff every
// non-missing cell parses as a float and at least one such cell exists.
func classify(name string, raw []string) Column {
	numeric := false
	for _, cell := range raw {
		if IsMissing(cell) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
			return Column{Name: name, Kind: KindCategorical, Raw: raw}
		}
		numeric = true
	}
	if !numeric {
		// All-missing columns carry no numeric evidence.
		return Column{Name: name, Kind: KindCategorical, Raw: raw}
	}

	values := make([]float64, len(raw))
	for i, cell := range raw {
		if IsMissing(cell) {
			values[i] = math.NaN()
			continue
		}
		v, _ := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		values[i] = v
	}
	return Column{Name: name, Kind: KindNumeric, Raw: raw, Values: values}
}

// Rows returns the row count N.
func (d *Dataset) Rows() int {
	return d.rows
}

// Cols returns the column count.
func (d *Dataset) Cols() int {
	return len(d.Columns)
}

// IsEmpty reports whether the dataset has zero rows or zero columns.
func (d *Dataset) IsEmpty() bool {
	return d.rows == 0 || len(d.Columns) == 0
}

// NumericColumns returns the numeric columns in dataset order.
func (d *Dataset) NumericColumns() []Column {
	var out []Column
	for _, c := range d.Columns {
		if c.Kind == KindNumeric {
			out = append(out, c)
		}
	}
	return out
}

// Row materializes the raw cells of row r in column order.
func (d *Dataset) Row(r int) []string {
	cells := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		cells[i] = c.Raw[r]
	}
	return cells
}

// MissingCount counts the missing cells in a column.
func (c *Column) MissingCount() int {
	count := 0
	for _, cell := range c.Raw {
		if IsMissing(cell) {
			count++
		}
	}
	return count
}

// UniqueCount counts distinct non-missing cell values.
func (c *Column) UniqueCount() int {
	seen := make(map[string]bool)
	for _, cell := range c.Raw {
		if !IsMissing(cell) {
			seen[cell] = true
		}
	}
	return len(seen)
}

// NonMissing returns the parsed values of a numeric column with NaNs removed.
// The result preserves row order.
func (c *Column) NonMissing() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// MemoryEstimate estimates the column's in-memory footprint in bytes:
// 8 bytes per numeric value, 16 bytes of header plus the cell text per
// categorical value.
func (c *Column) MemoryEstimate() int64 {
	if c.Kind == KindNumeric {
		return int64(8 * len(c.Raw))
	}
	var total int64
	for _, cell := range c.Raw {
		total += 16 + int64(len(cell))
	}
	return total
}
