package filter

import (
	"math"

	"github.com/juecd/pnmtool/internal/ir"
	"github.com/juecd/pnmtool/internal/logging"
)

// Blur applies a Gaussian blur of the given radius and sigma. Pixels within
// radius of an edge keep their source values; a radius that leaves no
// interior pixel returns a buffer equal to b.
func Blur(b *ir.Buffer, radius int, sigma float64) (*ir.Buffer, error) {
	if err := checkGaussian(radius, sigma); err != nil {
		return nil, err
	}
	// No pixel has a full neighborhood: skip building the kernel.
	if radius > (min(b.Width(), b.Height())-1)/2 {
		logging.Logger().Debug("filter: radius leaves no interior pixel",
			"radius", radius, "image", b.String())
		return b.Clone(), nil
	}

	k, err := GaussianKernel(radius, sigma)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("filter: gaussian blur",
		"radius", radius, "sigma", sigma, "kernel", k.Size(), "image", b.String())
	return Convolve(b, k), nil
}

// Convolve applies k to every pixel whose full neighborhood lies inside b,
// channel by channel. All reads come from b, so no output pixel depends on
// another output pixel. Results are rounded half to even and clamped to
// [0, MaxValue].
func Convolve(b *ir.Buffer, k *Kernel) *ir.Buffer {
	bl := ir.NewBuilderFrom(b)
	r := k.Radius()
	top := float64(b.MaxValue())

	for y := r; y < b.Height()-r; y++ {
		for x := r; x < b.Width()-r; x++ {
			for c := 0; c < b.Channels(); c++ {
				v := weightedSum(b, k, x, y, c)
				bl.Set(x, y, c, uint8(clampf(math.RoundToEven(v), top)))
			}
		}
	}
	return bl.Finish()
}

// weightedSum sums kernel rows one at a time, then adds the row totals.
func weightedSum(b *ir.Buffer, k *Kernel, x, y, c int) float64 {
	r := k.Radius()
	size := k.Size()
	var sum float64
	for kr := 0; kr < size; kr++ {
		var rowSum float64
		sy := y + kr - r
		for kc := 0; kc < size; kc++ {
			rowSum += float64(float64(b.Sample(x+kc-r, sy, c)) * k.At(kr, kc))
		}
		sum += rowSum
	}
	return sum
}

func clampf(v, hi float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
