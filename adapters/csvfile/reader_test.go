package csvfile

import (
	"os"
	"path/filepath"
	"testing"

	"dataqa/domain/dataset"
	"dataqa/internal/errors"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadBasic(t *testing.T) {
	path := writeTemp(t, "id,amount\n1,2.5\n2,\n3,4.0\n")
	ds, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Rows() != 3 || ds.Cols() != 2 {
		t.Fatalf("got %dx%d", ds.Rows(), ds.Cols())
	}
	if ds.Columns[1].Kind != dataset.KindNumeric {
		t.Errorf("amount kind = %s", ds.Columns[1].Kind)
	}
	if ds.Columns[1].MissingCount() != 1 {
		t.Errorf("missing = %d, want 1", ds.Columns[1].MissingCount())
	}
}

func TestReadRaggedRows(t *testing.T) {
	path := writeTemp(t, "a,b,c\n1,2\n3,4,5\n")
	ds, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dataset.IsMissing(ds.Columns[2].Raw[0]) {
		t.Error("short record should pad the trailing column")
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := writeTemp(t, "")
	_, err := NewReader().Read(path)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
	if errors.CodeOf(err) != errors.CodeInput {
		t.Errorf("code = %s, want %s", errors.CodeOf(err), errors.CodeInput)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader().Read(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.CodeOf(err) != errors.CodeInput {
		t.Errorf("code = %s, want %s", errors.CodeOf(err), errors.CodeInput)
	}
}

func TestReadHeaderOnly(t *testing.T) {
	path := writeTemp(t, "a,b\n")
	ds, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ds.IsEmpty() {
		t.Error("header-only file should yield an empty dataset")
	}
}
