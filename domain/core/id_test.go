package core

import "testing"

func TestNewRunIDUnique(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	if a == b {
		t.Error("expected distinct run IDs")
	}
	if ID(a).IsEmpty() {
		t.Error("expected non-empty run ID")
	}
}

func TestColumnKeyString(t *testing.T) {
	key := ColumnKey("annual_income")
	if key.String() != "annual_income" {
		t.Errorf("got %q", key.String())
	}
}

func TestRunStampFormat(t *testing.T) {
	stamp := Now().RunStamp()
	if len(stamp) != 15 || stamp[8] != '_' {
		t.Errorf("unexpected run stamp %q", stamp)
	}
}
