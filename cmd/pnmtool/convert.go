package main

import (
	"fmt"
	"os"

	"github.com/juecd/pnmtool/internal/logging"
	"github.com/juecd/pnmtool/internal/pipeline"
	"github.com/spf13/cobra"
)

var convertOps opsFlag

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Apply a sequence of transforms to a pixel map",
	Long: `Apply transforms in the order given by repeated --op flags.

Ops: negate, mirror, greyscale, blur:RADIUS:SIGMA`,
	Example: "  pnmtool convert -i in.ppm -o out.pgm --op blur:2:1.5 --op greyscale",
	RunE:    runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input P6/P5 file")
	convertCmd.Flags().StringP("output", "o", "", "Output file")
	convertCmd.Flags().Var(&convertOps, "op", "Transform to apply (repeatable)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logging.Logger().Info("read input", "path", inputPath, "bytes", len(inputData))

	result, err := pipeline.Run(inputData, pipeline.Options{Ops: convertOps.ops})
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logging.Logger().Info("wrote output", "path", outputPath, "bytes", len(result.Data))

	fmt.Printf("Converted %dx%d %s → %s (%s)\n", result.SrcWidth, result.SrcHeight, result.SrcKind, result.Kind, convertOps.String())
	fmt.Printf("Input:  %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))
	return nil
}
