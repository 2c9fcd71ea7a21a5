package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/vdobler/kpichart"
)

var (
	tooltipIndex int
	tooltipPixel float64
	tooltipJSON  bool
)

func tooltipCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tooltip [payload]",
		Short: "Print the tooltip of a data point",
		Long: `tooltip prints the tooltip of the point with the given index of the largest
active series, or of the point whose hit-region contains the pixel --x.`,
		Args: cobra.ExactArgs(1),
		RunE: runTooltip,
	}
	cmd.Flags().IntVarP(&tooltipIndex, "index", "i", 0, "Point index")
	cmd.Flags().Float64VarP(&tooltipPixel, "x", "x", math.NaN(), "Pixel of the plot area, overrides --index")
	cmd.Flags().BoolVar(&tooltipJSON, "json", false, "Print the tooltip as JSON")
	return cmd
}

func runTooltip(cmd *cobra.Command, args []string) error {
	c, _, err := buildChart(args[0])
	if err != nil {
		return err
	}
	var (
		tt kpichart.Tooltip
		ok bool
	)
	if math.IsNaN(tooltipPixel) {
		tt, ok = c.TooltipAt(tooltipIndex)
	} else {
		tt, ok = c.TooltipAtPixel(tooltipPixel)
	}
	if !ok {
		return fmt.Errorf("no tooltip (tooltips enabled: %t)", c.Config().HasTooltips)
	}
	return printTooltip(os.Stdout, tt, tooltipJSON)
}

func printTooltip(w io.Writer, tt kpichart.Tooltip, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tt)
	}
	fmt.Fprintln(w, tt.Header)
	for _, r := range tt.Rows {
		fmt.Fprintf(w, "  %-20s %s\n", r.Name, r.Value)
	}
	return nil
}
