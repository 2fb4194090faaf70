package pnm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/juecd/pnmtool/internal/ir"
)

// Encode serializes b as a P6 or P5 pixel map: magic token, "width height"
// and max value each on their own line, then the raw samples.
func Encode(b *ir.Buffer) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(32 + b.PixelCount()*b.Channels())
	if err := Write(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write streams the encoding of b to w.
func Write(w io.Writer, b *ir.Buffer) error {
	magic, err := Magic(b.Kind())
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	header := make([]byte, 0, 32)
	header = append(header, magic...)
	header = append(header, '\n')
	header = strconv.AppendInt(header, int64(b.Width()), 10)
	header = append(header, ' ')
	header = strconv.AppendInt(header, int64(b.Height()), 10)
	header = append(header, '\n')
	header = strconv.AppendInt(header, int64(b.MaxValue()), 10)
	header = append(header, '\n')
	if _, err := bw.Write(header); err != nil {
		return err
	}
	if _, err := bw.Write(b.AppendPix(nil)); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile encodes b to the file at path, creating or truncating it.
func WriteFile(path string, b *ir.Buffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := Write(f, b); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
