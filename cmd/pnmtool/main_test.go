package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/juecd/pnmtool/internal/ir"
	"github.com/juecd/pnmtool/internal/pipeline"
	"github.com/juecd/pnmtool/internal/pnm"
	"github.com/juecd/pnmtool/internal/transform"
)

func TestOpsFlag(t *testing.T) {
	var f opsFlag
	if err := f.Set("negate"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.Set("blur:1:2, mirror"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want := []pipeline.Op{
		{Kind: pipeline.OpNegate},
		{Kind: pipeline.OpBlur, Radius: 1, Sigma: 2},
		{Kind: pipeline.OpMirror},
	}
	if diff := cmp.Diff(want, f.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	if got := f.String(); got != "negate,blur:1:2,mirror" {
		t.Errorf("String() = %q", got)
	}
	if err := f.Set("sepia"); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ppm")
	out := filepath.Join(dir, "out.pgm")

	src, err := ir.New(ir.KindColor, 2, 1, 255, []uint8{100, 150, 200, 0, 0, 250})
	if err != nil {
		t.Fatalf("ir.New: %v", err)
	}
	if err := pnm.WriteFile(in, src); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rootCmd.SetArgs([]string{"convert", "-i", in, "-o", out, "--op", "mirror", "--op", "greyscale"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("convert: %v", err)
	}

	got, err := pnm.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want, err := transform.Greyscale(transform.MirrorHorizontal(src))
	if err != nil {
		t.Fatalf("Greyscale: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("convert output %v, expected %v", got.AppendPix(nil), want.AppendPix(nil))
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output missing: %v", err)
	}
}
