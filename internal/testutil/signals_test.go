package testutil

import "testing"

func TestRamp(t *testing.T) {
	RequireSliceNearlyEqual(t, Ramp(1, 0.5, 4), []float64{1, 1.5, 2, 2.5}, 0)
}

func TestSine(t *testing.T) {
	s := Sine(2, 8, 9)
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	RequireNearlyEqual(t, s[2], 2, 1e-12)
	RequireNearlyEqual(t, s[6], -2, 1e-12)
}

func TestNoiseReproducible(t *testing.T) {
	a := Noise(42, 1, 64)
	b := Noise(42, 1, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
	for i, v := range a {
		if v < -1 || v >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}
}

func TestNoiseDifferentSeeds(t *testing.T) {
	a := Noise(1, 1, 16)
	b := Noise(2, 1, 16)
	for i := range a {
		if a[i] != b[i] {
			return
		}
	}
	t.Fatal("different seeds produced identical noise")
}

func TestConstantAndAffine(t *testing.T) {
	c := Constant(3, 3)
	RequireSliceNearlyEqual(t, c, []float64{3, 3, 3}, 0)
	RequireSliceNearlyEqual(t, Affine(c, -2, 1), []float64{-5, -5, -5}, 0)
}
