package ir

import "fmt"

// Builder assembles the samples of a new Buffer. It is the only way to
// produce a Buffer without copying a caller-owned slice, and it is spent by
// Finish: the Buffer takes over the builder's storage.
type Builder struct {
	buf *Buffer
}

// NewBuilder returns a Builder for a zero-filled buffer of the given geometry.
func NewBuilder(kind Kind, width, height, maxValue int) (*Builder, error) {
	if err := validate(kind, width, height, maxValue); err != nil {
		return nil, err
	}
	return &Builder{buf: &Buffer{
		kind:     kind,
		width:    width,
		height:   height,
		maxValue: maxValue,
		pix:      make([]uint8, width*height*kind.Channels()),
	}}, nil
}

// NewBuilderFrom returns a Builder pre-filled with a copy of src.
func NewBuilderFrom(src *Buffer) *Builder {
	return &Builder{buf: src.Clone()}
}

// Set stores channel c of the pixel at column x, row y.
func (bl *Builder) Set(x, y, c int, v uint8) {
	bl.live().pix[bl.buf.offset(x, y)+c] = v
}

// CopyPixel copies the pixel (sx, sy) of src into (x, y). src must have the
// same number of channels as the buffer under construction.
func (bl *Builder) CopyPixel(x, y int, src *Buffer, sx, sy int) {
	b := bl.live()
	n := b.Channels()
	if src.Channels() != n {
		panic(fmt.Sprintf("ir: copying %s pixel into %s buffer", src.kind, b.kind))
	}
	dst := b.offset(x, y)
	off := src.offset(sx, sy)
	copy(b.pix[dst:dst+n], src.pix[off:off+n])
}

// Finish returns the assembled Buffer. The Builder must not be used afterwards.
func (bl *Builder) Finish() *Buffer {
	b := bl.live()
	bl.buf = nil
	return b
}

func (bl *Builder) live() *Buffer {
	if bl.buf == nil {
		panic("ir: Builder used after Finish")
	}
	return bl.buf
}
