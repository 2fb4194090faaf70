package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/juecd/pnmtool/internal/pnm"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Decode a pixel map to raw samples (raw output + JSON sidecar)",
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringP("input", "i", "", "Input P6/P5 file")
	dumpCmd.Flags().StringP("output", "o", "", "Output raw sample file")
	dumpCmd.MarkFlagRequired("input")
	dumpCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(dumpCmd)
}

type dumpMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Max    int    `json:"max"`
}

func runDump(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	b, err := pnm.ReadFile(inputPath)
	if err != nil {
		return err
	}

	raw := b.AppendPix(nil)
	if err := os.WriteFile(outputPath, raw, 0644); err != nil {
		return fmt.Errorf("writing raw samples: %w", err)
	}

	format := "RGB8"
	if b.Channels() == 1 {
		format = "GRAY8"
	}
	meta := dumpMeta{
		Width:  b.Width(),
		Height: b.Height(),
		Format: format,
		Max:    b.MaxValue(),
	}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := strings.TrimSuffix(outputPath, ".raw") + ".json"
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	fmt.Printf("Dumped %v → raw samples (%d bytes)\n", b, len(raw))
	fmt.Printf("Sidecar: %s\n", metaPath)
	return nil
}
