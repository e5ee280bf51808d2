package icon

import "testing"

func TestDeriveSeed_KnownDigest(t *testing.T) {
	// MD5 of the empty string is d41d8cd98f00b204e9800998ecf8427e.
	hi, lo := DeriveSeed("")
	if hi != 0xd41d8cd98f00b204 {
		t.Errorf("hi = %#x, want %#x", hi, uint64(0xd41d8cd98f00b204))
	}
	if lo != 0xe9800998ecf8427e {
		t.Errorf("lo = %#x, want %#x", lo, uint64(0xe9800998ecf8427e))
	}
}

func TestDeriveSeed_Deterministic(t *testing.T) {
	hi1, lo1 := DeriveSeed("My Notes App")
	hi2, lo2 := DeriveSeed("My Notes App")
	if hi1 != hi2 || lo1 != lo2 {
		t.Errorf("Same text gave different seeds: (%#x, %#x) vs (%#x, %#x)", hi1, lo1, hi2, lo2)
	}
}

func TestDeriveSeed_DistinctTexts(t *testing.T) {
	hi1, lo1 := DeriveSeed("alpha")
	hi2, lo2 := DeriveSeed("beta")
	if hi1 == hi2 && lo1 == lo2 {
		t.Error("Different texts gave identical seeds")
	}
}

func TestNewRNG_IdenticalStreams(t *testing.T) {
	a := NewRNG("stream check")
	b := NewRNG("stream check")
	for i := 0; i < 100; i++ {
		if got, want := a.IntN(1000), b.IntN(1000); got != want {
			t.Fatalf("Draw %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestNewRNG_CaseSensitive(t *testing.T) {
	// Theme selection lowercases the text but the seed does not.
	hi1, lo1 := DeriveSeed("Pokemon")
	hi2, lo2 := DeriveSeed("pokemon")
	if hi1 == hi2 && lo1 == lo2 {
		t.Error("Seed derivation should be case-sensitive")
	}
}
