package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	outputPath string
	fontSize   float64
)

func renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [payload]",
		Short: "Render a payload to an image file",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file, .svg .png .pdf or .eps (default: payload name with .svg)")
	cmd.Flags().Float64Var(&fontSize, "font-size", 12, "Base font size in points")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	in := args[0]
	_, g, err := buildChart(in)
	if err != nil {
		return err
	}
	out := outputFor(in, outputPath)
	if err := writeChart(g, out, vg.Length(fontSize)); err != nil {
		return err
	}
	log.Printf("Wrote %s (%d series, %.0fx%.0f)", out, len(g.Series),
		g.Dimensions.ContainerWidth, g.Dimensions.ContainerHeight)
	return nil
}

// outputFor returns out, or in with its extension replaced by .svg.
func outputFor(in, out string) string {
	if out != "" {
		return out
	}
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".svg"
}
