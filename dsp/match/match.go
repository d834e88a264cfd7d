package match

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ncc/stats/ncc"
)

// Errors returned by matching functions.
var (
	ErrEmptyInput      = errors.New("match: empty input")
	ErrTemplateTooLong = errors.New("match: template longer than signal")
	ErrUnknownMethod   = errors.New("match: unknown method")
)

// recomputeFloor is the share of the total signal energy below which an FFT
// window variance is within rounding error and the window is recomputed
// directly.
const recomputeFloor = 1e-8

// Result is the best-scoring template position.
type Result struct {
	Lag   int     // start index of the window in the signal
	Score float64 // NCC at Lag
}

// Profile returns the NCC of template against every fully overlapping window
// of signal. The result has length len(signal) - len(template) + 1.
func Profile(signal, template []float64, opts ...Option) ([]float64, error) {
	if len(signal) == 0 || len(template) == 0 {
		return nil, ErrEmptyInput
	}
	if len(template) > len(signal) {
		return nil, ErrTemplateTooLong
	}

	cfg := buildConfig(len(template), opts)
	switch cfg.method {
	case MethodDirect:
		return profileDirect(signal, template)
	case MethodFFT:
		return profileFFT(signal, template)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, cfg.method)
	}
}

// Best returns the lag with the highest finite score.
// Lag is -1 and Score NaN if no window has a finite score.
func Best(signal, template []float64, opts ...Option) (Result, error) {
	scores, err := Profile(signal, template, opts...)
	if err != nil {
		return Result{}, err
	}
	idx, val := FindPeak(scores)
	return Result{Lag: idx, Score: val}, nil
}

// FindPeak returns the index and value of the largest finite entry of scores.
// NaN and infinite entries are skipped. Returns (-1, NaN) if none is finite.
func FindPeak(scores []float64) (index int, value float64) {
	index = -1
	value = math.NaN()
	for i, v := range scores {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if index < 0 || v > value {
			index = i
			value = v
		}
	}
	return index, value
}

func profileDirect(signal, template []float64) ([]float64, error) {
	m := len(template)
	tm := ncc.Mean(template)
	out := make([]float64, len(signal)-m+1)
	for k := range out {
		w := signal[k : k+m]
		r, err := ncc.ComputeWithMeans(w, template, ncc.Mean(w), tm)
		if err != nil {
			return nil, err
		}
		out[k] = r
	}
	return out, nil
}

// profileFFT uses Σ(s-sm)(t-tm) = Σ s·(t-tm), so the numerator of every
// window is one valid-mode correlation of the signal with the centered
// template.
func profileFFT(signal, template []float64) ([]float64, error) {
	n := len(signal)
	m := len(template)

	tm := ncc.Mean(template)
	centered := make([]float64, m)
	var sumSqT float64
	for i, v := range template {
		centered[i] = v - tm
		sumSqT += centered[i] * centered[i]
	}

	// Remove the global offset first so the running sums stay well scaled.
	sm := ncc.Mean(signal)
	s := make([]float64, n)
	for i, v := range signal {
		s[i] = v - sm
	}

	num, err := correlateValid(s, centered)
	if err != nil {
		return nil, err
	}

	sq := make([]float64, n)
	vecmath.MulBlock(sq, s, s)

	sum := make([]float64, n+1)
	sumSq := make([]float64, n+1)
	for i := range n {
		sum[i+1] = sum[i] + s[i]
		sumSq[i+1] = sumSq[i] + sq[i]
	}

	mf := float64(m)
	floor := recomputeFloor * sumSq[n]
	out := make([]float64, n-m+1)
	for k := range out {
		if sumSqT == 0 {
			out[k] = math.NaN()
			continue
		}
		ws := sum[k+m] - sum[k]
		varW := (sumSq[k+m] - sumSq[k]) - ws*ws/mf
		if varW <= floor {
			w := signal[k : k+m]
			out[k], err = ncc.ComputeWithMeans(w, template, ncc.Mean(w), tm)
			if err != nil {
				return nil, err
			}
			continue
		}
		out[k] = num[k] / math.Sqrt(varW*sumSqT)
	}
	return out, nil
}

// correlateValid returns Σ_i a[k+i]·b[i] for k in [0, len(a)-len(b)] via
// IFFT(FFT(a)·conj(FFT(b))).
// Valid mode keeps only the non-negative lags 0..n-m where b lies fully
// inside a, so the circular result needs no rearrangement.
func correlateValid(a, b []float64) ([]float64, error) {
	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("match: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("match: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("match: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= complex(real(bFreq[i]), -imag(bFreq[i]))
	}

	timeDomain := make([]complex128, fftSize)
	if err := plan.Inverse(timeDomain, aFreq); err != nil {
		return nil, fmt.Errorf("match: inverse FFT failed: %w", err)
	}

	out := make([]float64, n-m+1)
	for k := range out {
		out[k] = real(timeDomain[k])
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
