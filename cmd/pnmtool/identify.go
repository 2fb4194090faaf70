package main

import (
	"fmt"
	"os"

	"github.com/juecd/pnmtool/internal/pnm"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Print the header of a pixel map",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := pnm.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	payload := len(data) - info.HeaderSize
	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     %s (%s)\n", info.Magic, info.Kind)
	fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Printf("Channels:   %d\n", info.Kind.Channels())
	fmt.Printf("Max value:  %d\n", info.MaxValue)
	fmt.Printf("File size:  %d bytes (header %d, payload %d)\n", len(data), info.HeaderSize, payload)

	switch {
	case payload < info.PayloadSize:
		fmt.Printf("Payload:    truncated, %d bytes missing\n", info.PayloadSize-payload)
	case payload > info.PayloadSize:
		fmt.Printf("Payload:    %d trailing bytes ignored\n", payload-info.PayloadSize)
	default:
		fmt.Println("Payload:    complete")
	}
	return nil
}
