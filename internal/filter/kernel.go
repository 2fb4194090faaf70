package filter

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument reports a kernel parameter outside its domain.
var ErrInvalidArgument = errors.New("filter: invalid argument")

// Kernel is a square grid of convolution weights with odd side 2*Radius+1.
// It is read-only once built.
type Kernel struct {
	radius  int
	weights []float64 // row-major, side*side
}

// GaussianKernel builds a normalized (2*radius+1)-square Gaussian kernel.
//
// The 1D profile is h[i] = exp(-((i-radius)/sigma)^2 / 2) for i in
// [0, 2*radius]; the 2D kernel is the outer product h[row] * h[col], divided
// by the sum of all its entries. radius 0 yields the identity kernel [1.0].
func GaussianKernel(radius int, sigma float64) (*Kernel, error) {
	if err := checkGaussian(radius, sigma); err != nil {
		return nil, err
	}

	side := 2*radius + 1
	profile := make([]float64, side)
	for i := range profile {
		d := float64(i-radius) / sigma
		profile[i] = math.Exp(-(d * d) / 2)
	}

	k := &Kernel{radius: radius, weights: make([]float64, side*side)}
	var sum float64
	for row := 0; row < side; row++ {
		var rowSum float64
		for col := 0; col < side; col++ {
			w := float64(profile[col] * profile[row])
			k.weights[row*side+col] = w
			rowSum += w
		}
		sum += rowSum
	}
	for i := range k.weights {
		k.weights[i] /= sum
	}
	return k, nil
}

func checkGaussian(radius int, sigma float64) error {
	if radius < 0 {
		return fmt.Errorf("%w: radius %d is negative", ErrInvalidArgument, radius)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return fmt.Errorf("%w: sigma %v must be positive and finite", ErrInvalidArgument, sigma)
	}
	return nil
}

// NewKernel builds a kernel from explicit weights. weights must be square
// with an odd side. The weights are copied and used as given, without
// normalization.
func NewKernel(weights [][]float64) (*Kernel, error) {
	side := len(weights)
	if side == 0 || side%2 == 0 {
		return nil, fmt.Errorf("%w: kernel side %d must be odd", ErrInvalidArgument, side)
	}
	k := &Kernel{radius: side / 2, weights: make([]float64, 0, side*side)}
	for i, row := range weights {
		if len(row) != side {
			return nil, fmt.Errorf("%w: kernel row %d has %d weights, expected %d", ErrInvalidArgument, i, len(row), side)
		}
		k.weights = append(k.weights, row...)
	}
	return k, nil
}

// Radius returns the distance from the center to the kernel edge.
func (k *Kernel) Radius() int { return k.radius }

// Size returns the side length of the kernel.
func (k *Kernel) Size() int { return 2*k.radius + 1 }

// At returns the weight at the given row and column.
func (k *Kernel) At(row, col int) float64 {
	return k.weights[row*k.Size()+col]
}

// Sum returns the total of all weights.
func (k *Kernel) Sum() float64 {
	var s float64
	for _, w := range k.weights {
		s += w
	}
	return s
}
