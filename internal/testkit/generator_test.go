package testkit

import (
	"path/filepath"
	"reflect"
	"testing"

	"dataqa/domain/dataset"
)

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(42, 200).Records()
	b := NewGenerator(42, 200).Records()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different data")
	}

	c := NewGenerator(43, 200).Records()
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical data")
	}
}

func TestGeneratorShape(t *testing.T) {
	gen := NewGenerator(1, 500)
	header := gen.Header()
	records := gen.Records()

	if len(records) < 500 {
		t.Fatalf("got %d records, want at least 500", len(records))
	}
	for i, row := range records {
		if len(row) != len(header) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(header))
		}
	}
}

func TestGeneratorInjectsDefects(t *testing.T) {
	gen := NewGenerator(7, 1000)
	ds := dataset.New(gen.Header(), gen.Records())

	var age, income *dataset.Column
	for i := range ds.Columns {
		switch ds.Columns[i].Name {
		case "age":
			age = &ds.Columns[i]
		case "annual_income":
			income = &ds.Columns[i]
		}
	}
	if age == nil || income == nil {
		t.Fatal("expected age and annual_income columns")
	}

	if age.MissingCount() == 0 || income.MissingCount() == 0 {
		t.Error("expected missing cells in age and annual_income")
	}
	if age.Kind != dataset.KindNumeric || income.Kind != dataset.KindNumeric {
		t.Error("numeric columns misclassified")
	}

	// injected duplicates make total rows exceed the base count
	if ds.Rows() <= 1000 {
		t.Errorf("got %d rows, expected duplicates past 1000", ds.Rows())
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	if err := NewGenerator(3, 50).WriteCSV(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
