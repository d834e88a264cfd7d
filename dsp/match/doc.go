// Package match slides a template along a longer signal and scores every
// fully overlapping position with the normalized cross-correlation
// coefficient from [github.com/cwbudde/algo-ncc/stats/ncc].
//
// Score k is the NCC of signal[k:k+len(template)] against template, so the
// profile has len(signal)-len(template)+1 entries:
//
//	scores, err := match.Profile(signal, template)
//	best, err := match.Best(signal, template)
//	fmt.Println(best.Lag, best.Score)
//
// # Methods
//
// [MethodDirect] evaluates every window with [ncc.ComputeWithMeans] and is
// bit-for-bit identical to calling it yourself. [MethodFFT] computes all
// numerators with a single FFT correlation and the window variances from
// running sums, which is O(N log N) instead of O(N*M). [MethodAuto] picks
// FFT for templates of at least 64 samples.
//
// Windows with zero variance score NaN with either method. The FFT method
// derives window variances from running sums, whose rounding error grows
// with the total signal energy. A window whose variance is below 1e-8 of
// that total is recomputed directly, so quiet passages after loud ones
// score the same as with MethodDirect at O(M) extra cost per such window.
package match
