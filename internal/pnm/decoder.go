package pnm

import (
	"fmt"
	"io"
	"os"

	"github.com/juecd/pnmtool/internal/ir"
	"github.com/juecd/pnmtool/internal/logging"
)

// Decode parses a P6 (color) or P5 (greyscale) pixel map from memory.
// Payload bytes beyond Width*Height*Channels are ignored. Samples above the
// header's max value are kept as read; transforms clamp their results.
func Decode(data []byte) (*ir.Buffer, error) {
	info, err := GetInfo(data)
	if err != nil {
		return nil, err
	}

	payload := data[info.HeaderSize:]
	if len(payload) < info.PayloadSize {
		return nil, FormatError(fmt.Sprintf("payload truncated: %dx%d %s needs %d bytes, got %d",
			info.Width, info.Height, info.Kind, info.PayloadSize, len(payload)))
	}
	if extra := len(payload) - info.PayloadSize; extra > 0 {
		logging.Logger().Debug("pnm: ignoring trailing payload bytes", "bytes", extra)
	}

	return ir.New(info.Kind, info.Width, info.Height, info.MaxValue, payload[:info.PayloadSize])
}

// ReadFile decodes the pixel map stored at path.
func ReadFile(path string) (*ir.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	b, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return b, nil
}
