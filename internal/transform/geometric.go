package transform

import "github.com/juecd/pnmtool/internal/ir"

// MirrorHorizontal reverses the order of the pixels within each row.
func MirrorHorizontal(b *ir.Buffer) *ir.Buffer {
	bl := ir.NewBuilderFrom(b)
	w := b.Width()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < w; x++ {
			bl.CopyPixel(x, y, b, w-1-x, y)
		}
	}
	return bl.Finish()
}
