package concentrations

import "testing"

func TestRestartRNGDeterministicWithSeed(t *testing.T) {
	a := newRestartRNG(42)
	b := newRestartRNG(42)
	for i := 0; i < 10; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d: got %v and %v, want equal streams for equal seeds", i, va, vb)
		}
	}
}

func TestRestartRNGZeroSeedDoesNotPanic(t *testing.T) {
	r := newRestartRNG(0)
	v := r.Float64()
	if v < 0 || v >= 1 {
		t.Errorf("Float64() = %v, want in [0,1)", v)
	}
}
