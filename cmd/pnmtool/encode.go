package main

import (
	"fmt"
	"os"

	"github.com/juecd/pnmtool/internal/ir"
	"github.com/juecd/pnmtool/internal/pnm"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw samples as a P6/P5 pixel map",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw sample file")
	encodeCmd.Flags().StringP("output", "o", "", "Output pixel map")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.Flags().String("kind", "color", "Sample layout (color, grey)")
	encodeCmd.Flags().Int("max", 255, "Max sample value (0-255)")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagRequired("width")
	encodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	kindStr, _ := cmd.Flags().GetString("kind")
	maxValue, _ := cmd.Flags().GetInt("max")

	kind, err := ir.ParseKind(kindStr)
	if err != nil {
		return err
	}

	pixels, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	expected := width * height * kind.Channels()
	if len(pixels) != expected {
		return fmt.Errorf("expected %d bytes for %dx%d %s, got %d", expected, width, height, kind, len(pixels))
	}

	b, err := ir.New(kind, width, height, maxValue, pixels)
	if err != nil {
		return err
	}
	if err := pnm.WriteFile(outputPath, b); err != nil {
		return err
	}

	fmt.Printf("Encoded %v → %s\n", b, outputPath)
	return nil
}
