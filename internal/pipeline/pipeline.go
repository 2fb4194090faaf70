package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juecd/pnmtool/internal/filter"
	"github.com/juecd/pnmtool/internal/ir"
	"github.com/juecd/pnmtool/internal/logging"
	"github.com/juecd/pnmtool/internal/pnm"
	"github.com/juecd/pnmtool/internal/transform"
)

// OpKind identifies a transform.
type OpKind int

const (
	OpNegate OpKind = iota + 1
	OpMirror
	OpGreyscale
	OpBlur
)

func (k OpKind) String() string {
	switch k {
	case OpNegate:
		return "negate"
	case OpMirror:
		return "mirror"
	case OpGreyscale:
		return "greyscale"
	case OpBlur:
		return "blur"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is a single transform step. Radius and Sigma are used by OpBlur only.
type Op struct {
	Kind   OpKind
	Radius int
	Sigma  float64
}

func (o Op) String() string {
	if o.Kind == OpBlur {
		return fmt.Sprintf("blur:%d:%s", o.Radius, strconv.FormatFloat(o.Sigma, 'g', -1, 64))
	}
	return o.Kind.String()
}

// ParseOp converts an op name to an Op. Blur takes its radius and sigma as
// "blur:RADIUS:SIGMA".
func ParseOp(s string) (Op, error) {
	name, args, _ := strings.Cut(s, ":")
	switch name {
	case "negate", "invert":
		return Op{Kind: OpNegate}, nil
	case "mirror":
		return Op{Kind: OpMirror}, nil
	case "greyscale", "grayscale", "grey", "gray":
		return Op{Kind: OpGreyscale}, nil
	case "blur":
		radiusStr, sigmaStr, ok := strings.Cut(args, ":")
		if !ok {
			return Op{}, fmt.Errorf("blur op %q: expected blur:RADIUS:SIGMA", s)
		}
		radius, err := strconv.Atoi(radiusStr)
		if err != nil {
			return Op{}, fmt.Errorf("blur op %q: radius: %w", s, err)
		}
		sigma, err := strconv.ParseFloat(sigmaStr, 64)
		if err != nil {
			return Op{}, fmt.Errorf("blur op %q: sigma: %w", s, err)
		}
		return Op{Kind: OpBlur, Radius: radius, Sigma: sigma}, nil
	default:
		return Op{}, fmt.Errorf("unknown op: %q", s)
	}
}

// Apply runs a single op on b.
func (o Op) Apply(b *ir.Buffer) (*ir.Buffer, error) {
	switch o.Kind {
	case OpNegate:
		return transform.Negate(b), nil
	case OpMirror:
		return transform.MirrorHorizontal(b), nil
	case OpGreyscale:
		return transform.Greyscale(b)
	case OpBlur:
		return filter.Blur(b, o.Radius, o.Sigma)
	default:
		return nil, fmt.Errorf("unknown op kind %d", int(o.Kind))
	}
}

// Options controls a pipeline run.
type Options struct {
	Ops []Op // applied in order
}

// Result holds the output of a pipeline run.
type Result struct {
	Data      []byte // encoded P5/P6 pixel map
	SrcWidth  int
	SrcHeight int
	SrcKind   ir.Kind
	Kind      ir.Kind // kind of the encoded output
}

// Apply runs ops on b in order and returns the last buffer produced.
func Apply(b *ir.Buffer, ops []Op) (*ir.Buffer, error) {
	log := logging.Logger()
	for i, op := range ops {
		out, err := op.Apply(b)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i+1, op, err)
		}
		log.Debug("pipeline: applied op", "index", i+1, "op", op.String(), "result", out.String())
		b = out
	}
	return b, nil
}

// Run executes the full pipeline: decode → ops → encode.
func Run(data []byte, opts Options) (*Result, error) {
	// 1. Decode
	src, err := pnm.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	logging.Logger().Debug("pipeline: decoded", "image", src.String(), "bytes", len(data))

	// 2. Transform
	out, err := Apply(src, opts.Ops)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	// 3. Encode
	encoded, err := pnm.Encode(out)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:      encoded,
		SrcWidth:  src.Width(),
		SrcHeight: src.Height(),
		SrcKind:   src.Kind(),
		Kind:      out.Kind(),
	}, nil
}
