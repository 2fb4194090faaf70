package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/juecd/pnmtool/internal/ir"
)

// ErrNotColor is returned by Greyscale for buffers that are already greyscale.
var ErrNotColor = errors.New("transform: greyscale conversion needs a color buffer")

// Luminance weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Negate replaces every sample v with MaxValue - v. Samples above MaxValue,
// which only a malformed file can carry, map to 0.
func Negate(b *ir.Buffer) *ir.Buffer {
	top := b.MaxValue()
	bl := ir.NewBuilderFrom(b)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			for c := 0; c < b.Channels(); c++ {
				bl.Set(x, y, c, uint8(clamp(top-int(b.Sample(x, y, c)), top)))
			}
		}
	}
	return bl.Finish()
}

// Greyscale converts a color buffer to a single-channel buffer with the same
// dimensions and max value, using Luma for each pixel.
func Greyscale(b *ir.Buffer) (*ir.Buffer, error) {
	if b.Kind() != ir.KindColor {
		return nil, fmt.Errorf("%w: got %s", ErrNotColor, b.Kind())
	}
	bl, err := ir.NewBuilder(ir.KindGrey, b.Width(), b.Height(), b.MaxValue())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			v := Luma(b.Sample(x, y, 0), b.Sample(x, y, 1), b.Sample(x, y, 2))
			bl.Set(x, y, 0, uint8(clamp(v, b.MaxValue())))
		}
	}
	return bl.Finish(), nil
}

// Luma returns round(0.299*r + 0.587*g + 0.114*b). Each product is rounded to
// float64 before the sum so results do not depend on fused multiply-add, and
// ties round to even.
func Luma(r, g, b uint8) int {
	y := float64(lumaR*float64(r)) + float64(lumaG*float64(g)) + float64(lumaB*float64(b))
	return int(math.RoundToEven(y))
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
