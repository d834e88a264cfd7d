package ncc

import "math"

// Compute returns the normalized cross-correlation coefficient of f and g.
// Both means are computed from the data.
func Compute(f, g []float64) (float64, error) {
	if err := checkLengths(f, g); err != nil {
		return 0, err
	}
	return ComputeWithMeans(f, g, Mean(f), Mean(g))
}

// ComputeWithMeans returns the normalized cross-correlation coefficient of f
// and g using the caller-supplied means fm and gm. The means are used as given
// and are not checked against the data.
func ComputeWithMeans(f, g []float64, fm, gm float64) (float64, error) {
	if err := checkLengths(f, g); err != nil {
		return 0, err
	}

	var (
		crossProd float64 // Σ(f-fm)(g-gm)
		sumSqF    float64 // Σ(f-fm)²
		sumSqG    float64 // Σ(g-gm)²
	)

	g = g[:len(f)]
	for i, fv := range f {
		df := fv - fm
		dg := g[i] - gm
		crossProd += df * dg
		sumSqF += df * df
		sumSqG += dg * dg
	}

	return crossProd / math.Sqrt(sumSqF*sumSqG), nil
}

// MustCompute is like Compute but panics on error.
// Use it where unequal or empty input is a programming bug.
func MustCompute(f, g []float64) float64 {
	r, err := Compute(f, g)
	if err != nil {
		panic(err)
	}
	return r
}

// MustComputeWithMeans is like ComputeWithMeans but panics on error.
func MustComputeWithMeans(f, g []float64, fm, gm float64) float64 {
	r, err := ComputeWithMeans(f, g, fm, gm)
	if err != nil {
		panic(err)
	}
	return r
}

// Mean returns the arithmetic mean of x.
// Returns NaN for an empty slice.
func Mean(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}
