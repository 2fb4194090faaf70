package main

import (
	"strings"

	"github.com/juecd/pnmtool/internal/pipeline"
	"github.com/spf13/pflag"
)

// opsFlag collects repeated --op values in the order given.
type opsFlag struct {
	ops []pipeline.Op
}

var _ pflag.Value = (*opsFlag)(nil)

func (f *opsFlag) String() string {
	names := make([]string, len(f.ops))
	for i, op := range f.ops {
		names[i] = op.String()
	}
	return strings.Join(names, ",")
}

// Set accepts a single op or a comma-separated list.
func (f *opsFlag) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		op, err := pipeline.ParseOp(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		f.ops = append(f.ops, op)
	}
	return nil
}

func (f *opsFlag) Type() string { return "op" }
