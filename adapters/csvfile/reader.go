package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"dataqa/domain/dataset"
	"dataqa/internal/errors"
)

// Reader loads CSV files into datasets
type Reader struct{}

// NewReader creates a CSV reader
func NewReader() *Reader {
	return &Reader{}
}

// Read parses a CSV file, treating the first row as the header.
// Ragged records are accepted and padded with missing cells.
func (r *Reader) Read(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Input(fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Input(fmt.Sprintf("cannot parse %s", path), err)
	}
	if len(records) == 0 {
		return nil, errors.Input(fmt.Sprintf("%s has no header row", path), nil)
	}

	return dataset.New(records[0], records[1:]), nil
}
