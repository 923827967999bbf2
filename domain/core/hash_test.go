package core

import "testing"

func TestFingerprintRowStable(t *testing.T) {
	a := FingerprintRow([]string{"x", "1", "2.5"})
	b := FingerprintRow([]string{"x", "1", "2.5"})
	if a != b {
		t.Errorf("same cells produced different fingerprints: %s vs %s", a, b)
	}
}

func TestFingerprintRowCellBoundaries(t *testing.T) {
	a := FingerprintRow([]string{"ab", "c"})
	b := FingerprintRow([]string{"a", "bc"})
	if a == b {
		t.Error("shifted cell boundary collided")
	}
}

func TestFingerprintRowDiffers(t *testing.T) {
	a := FingerprintRow([]string{"x", "1"})
	b := FingerprintRow([]string{"x", "2"})
	if a == b {
		t.Error("different rows collided")
	}
}

func TestNewHashNotEmpty(t *testing.T) {
	h := NewHash([]byte("payload"))
	if h.IsEmpty() {
		t.Error("expected non-empty hash")
	}
	if len(h.String()) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h.String()))
	}
}
