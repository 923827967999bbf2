package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"dataqa/domain/dataset"
	"dataqa/internal/errors"
)

// Reader loads xlsx workbooks into datasets
type Reader struct{}

// NewReader creates an xlsx reader
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the first sheet of an xlsx file, treating the first row as
// the header.
func (r *Reader) Read(path string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Input(fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Input(fmt.Sprintf("%s has no sheets", path), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Input(fmt.Sprintf("cannot read sheet %s", sheets[0]), err)
	}
	if len(rows) == 0 {
		return nil, errors.Input(fmt.Sprintf("%s has no header row", path), nil)
	}

	return dataset.New(rows[0], rows[1:]), nil
}
