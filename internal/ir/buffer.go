package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch reports a sample slice whose length is not
	// Width * Height * Channels.
	ErrDimensionMismatch = errors.New("ir: pixel count does not match dimensions")

	// ErrInvalidBuffer reports dimensions, max value or kind outside the
	// supported range.
	ErrInvalidBuffer = errors.New("ir: invalid buffer")
)

// MaxSupportedValue is the largest max value a Buffer can carry. Every sample
// is stored in a single byte.
const MaxSupportedValue = 255

// Kind distinguishes color buffers from greyscale ones.
type Kind uint8

const (
	// KindColor is an RGB buffer with three samples per pixel.
	KindColor Kind = iota + 1
	// KindGrey is a greyscale buffer with one sample per pixel.
	KindGrey
)

// Channels returns the number of samples per pixel, or 0 for an unknown kind.
func (k Kind) Channels() int {
	switch k {
	case KindColor:
		return 3
	case KindGrey:
		return 1
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindGrey:
		return "grey"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind converts a kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "color", "colour", "rgb":
		return KindColor, nil
	case "grey", "gray", "greyscale", "grayscale":
		return KindGrey, nil
	default:
		return 0, fmt.Errorf("unknown buffer kind: %q", s)
	}
}

// Buffer is the in-memory image passed between the codec and the transforms.
// Samples are interleaved in row-major order. A Buffer is never modified after
// construction; every transform produces a new one.
type Buffer struct {
	kind     Kind
	width    int
	height   int
	maxValue int
	pix      []uint8 // len = width * height * kind.Channels()
}

// New validates the given geometry and returns a Buffer holding a copy of pix.
func New(kind Kind, width, height, maxValue int, pix []uint8) (*Buffer, error) {
	if err := validate(kind, width, height, maxValue); err != nil {
		return nil, err
	}
	want := width * height * kind.Channels()
	if len(pix) != want {
		return nil, fmt.Errorf("%w: %dx%d %s needs %d samples, got %d",
			ErrDimensionMismatch, width, height, kind, want, len(pix))
	}
	cp := make([]uint8, len(pix))
	copy(cp, pix)
	return &Buffer{kind: kind, width: width, height: height, maxValue: maxValue, pix: cp}, nil
}

func validate(kind Kind, width, height, maxValue int) error {
	if kind.Channels() == 0 {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidBuffer, uint8(kind))
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidBuffer, width, height)
	}
	if maxValue < 0 || maxValue > MaxSupportedValue {
		return fmt.Errorf("%w: max value %d outside [0, %d]", ErrInvalidBuffer, maxValue, MaxSupportedValue)
	}
	return nil
}

func (b *Buffer) Kind() Kind      { return b.kind }
func (b *Buffer) Width() int      { return b.width }
func (b *Buffer) Height() int     { return b.height }
func (b *Buffer) MaxValue() int   { return b.maxValue }
func (b *Buffer) Channels() int   { return b.kind.Channels() }
func (b *Buffer) PixelCount() int { return b.width * b.height }

// Sample returns channel c of the pixel at column x, row y.
func (b *Buffer) Sample(x, y, c int) uint8 {
	return b.pix[b.offset(x, y)+c]
}

// Pixel returns a copy of the samples of the pixel at column x, row y.
func (b *Buffer) Pixel(x, y int) []uint8 {
	off := b.offset(x, y)
	n := b.Channels()
	px := make([]uint8, n)
	copy(px, b.pix[off:off+n])
	return px
}

// AppendPix appends all samples in row-major order to dst.
func (b *Buffer) AppendPix(dst []byte) []byte {
	return append(dst, b.pix...)
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	cp := *b
	cp.pix = make([]uint8, len(b.pix))
	copy(cp.pix, b.pix)
	return &cp
}

// Equal reports whether b and o have the same kind, geometry, max value and
// samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.kind != o.kind || b.width != o.width || b.height != o.height || b.maxValue != o.maxValue {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

func (b *Buffer) String() string {
	return fmt.Sprintf("%dx%d %s max=%d", b.width, b.height, b.kind, b.maxValue)
}

func (b *Buffer) offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("ir: pixel (%d,%d) out of bounds for %dx%d", x, y, b.width, b.height))
	}
	return (y*b.width + x) * b.kind.Channels()
}
