package services

import "testing"

// sequenceRNG replays fixed values, then repeats the last one.
type sequenceRNG struct {
	vals []float64
	i    int
}

func (s *sequenceRNG) Float64() float64 {
	v := s.vals[s.i]
	if s.i < len(s.vals)-1 {
		s.i++
	}
	return v
}

func TestSeededRNG(t *testing.T) {
	a := NewSeededRNG(42)
	b := NewSeededRNG(42)
	for i := 0; i < 100; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("Expected equal sequences for equal seeds, diverged at %d", i)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("Expected value in [0,1), but got %v", x)
		}
	}
}

func TestDefaultRNGRange(t *testing.T) {
	rng := DefaultRNG()
	for i := 0; i < 1000; i++ {
		if v := rng.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Expected value in [0,1), but got %v", v)
		}
	}
}
