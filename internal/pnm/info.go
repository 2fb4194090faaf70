package pnm

import (
	"fmt"

	"github.com/juecd/pnmtool/internal/ir"
)

// Magic tokens for the two supported variants.
const (
	MagicColor = "P6"
	MagicGrey  = "P5"
)

// maxHeaderDigits bounds each header integer so that the payload size can be
// computed without overflow.
const maxHeaderDigits = 9

// A FormatError reports that the input is not a valid P5/P6 pixel map.
type FormatError string

func (e FormatError) Error() string { return "pnm: " + string(e) }

// Magic returns the magic token used to encode a buffer of the given kind.
func Magic(kind ir.Kind) (string, error) {
	switch kind {
	case ir.KindColor:
		return MagicColor, nil
	case ir.KindGrey:
		return MagicGrey, nil
	default:
		return "", fmt.Errorf("pnm: no magic token for %s", kind)
	}
}

// Info contains the header fields of a pixel map.
type Info struct {
	Magic       string
	Kind        ir.Kind
	Width       int
	Height      int
	MaxValue    int
	HeaderSize  int // bytes before the first payload byte
	PayloadSize int // payload bytes required by the header
}

// GetInfo parses the header of a pixel map without reading its payload.
func GetInfo(data []byte) (*Info, error) {
	if len(data) < 2 {
		return nil, FormatError("data too short for a pixel map header")
	}

	info := &Info{Magic: string(data[:2])}
	switch info.Magic {
	case MagicColor:
		info.Kind = ir.KindColor
	case MagicGrey:
		info.Kind = ir.KindGrey
	default:
		return nil, FormatError(fmt.Sprintf("unrecognized magic token %q", info.Magic))
	}

	s := scanner{data: data, pos: 2}
	if !s.atSpace() {
		return nil, FormatError("missing whitespace after magic token")
	}

	fields := [3]*int{&info.Width, &info.Height, &info.MaxValue}
	names := [3]string{"width", "height", "max value"}
	for i, dst := range fields {
		v, err := s.readInt(names[i])
		if err != nil {
			return nil, err
		}
		*dst = v
	}

	// A single whitespace byte separates the header from the payload.
	if !s.atSpace() {
		return nil, FormatError("missing whitespace after max value")
	}
	s.pos++

	if info.Width <= 0 || info.Height <= 0 {
		return nil, FormatError(fmt.Sprintf("invalid dimensions %dx%d", info.Width, info.Height))
	}
	if info.MaxValue > ir.MaxSupportedValue {
		return nil, FormatError(fmt.Sprintf("unsupported max value %d (max %d)", info.MaxValue, ir.MaxSupportedValue))
	}

	info.HeaderSize = s.pos
	info.PayloadSize = info.Width * info.Height * info.Kind.Channels()
	return info, nil
}

// scanner walks the ASCII header of a pixel map.
type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) atSpace() bool {
	return s.pos < len(s.data) && isSpace(s.data[s.pos])
}

// skip consumes whitespace and comments, which run from '#' to end of line.
func (s *scanner) skip() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case isSpace(c):
			s.pos++
		case c == '#':
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *scanner) readInt(name string) (int, error) {
	s.skip()
	start := s.pos
	v := 0
	for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
		if s.pos-start == maxHeaderDigits {
			return 0, FormatError(name + " too large")
		}
		v = v*10 + int(s.data[s.pos]-'0')
		s.pos++
	}
	if s.pos == start {
		if s.pos == len(s.data) {
			return 0, FormatError("header truncated before " + name)
		}
		return 0, FormatError(fmt.Sprintf("invalid %s: unexpected byte %q", name, s.data[s.pos]))
	}
	return v, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
