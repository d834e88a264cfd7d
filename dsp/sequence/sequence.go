// Package sequence builds correlation inputs from in-memory sample data,
// such as the intensities along one scan line of an 8-bit grayscale image.
package sequence

import (
	"errors"
	"image"
)

// Errors returned by sequence constructors.
var (
	ErrNilImage    = errors.New("sequence: nil image")
	ErrOutOfBounds = errors.New("sequence: region outside image bounds")
)

// FromGrayRow returns the pixel values of row y of img.
func FromGrayRow(img *image.Gray, y int) ([]float64, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	return FromGrayRect(img, image.Rect(b.Min.X, y, b.Max.X, y+1))
}

// FromGrayRect returns the pixel values of r in row-major order.
// r must be non-empty and lie inside the image bounds.
func FromGrayRect(img *image.Gray, r image.Rectangle) ([]float64, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if r.Empty() || !r.In(img.Bounds()) {
		return nil, ErrOutOfBounds
	}

	out := make([]float64, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X, y)]
		out = append(out, FromBytes(row)...)
	}
	return out, nil
}

// FromBytes converts 8-bit samples to float64.
func FromBytes(b []byte) []float64 {
	out := make([]float64, len(b))
	for i, v := range b {
		out[i] = float64(v)
	}
	return out
}

// Negate reflects every sample of x about the mean of x.
// The result correlates with x at -1 unless x is constant.
func Negate(x []float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	twoMean := 2 * sum / float64(len(x))

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = twoMean - v
	}
	return out
}
