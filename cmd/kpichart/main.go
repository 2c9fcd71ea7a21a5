// Command kpichart renders KPI charts from JSON, YAML or XLSX payloads.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/vdobler/kpichart"
	"github.com/vdobler/kpichart/render"
	"github.com/vdobler/kpichart/source"
	"gonum.org/v1/plot/vg"
)

var (
	configPath string
	width      float64
	height     float64
	verbose    bool
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("kpichart: ")

	rootCmd := &cobra.Command{
		Use:   "kpichart",
		Short: "Render KPI charts",
		Long: `kpichart computes the geometry of a KPI chart (columns, areas and lines
on a shared x axis) from a payload file and renders it as SVG, PNG, PDF or EPS.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML or JSON configuration overriding the payload's")
	rootCmd.PersistentFlags().Float64Var(&width, "width", 0, "Container width in pixels")
	rootCmd.PersistentFlags().Float64Var(&height, "height", 0, "Container height in pixels")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log the recompute steps of the engine")

	rootCmd.AddCommand(renderCommand(), watchCommand(), tooltipCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildChart loads the payload in path into a new chart. The configuration
// file and the size flags are merged over the payload's configuration.
func buildChart(path string) (*kpichart.Chart, *kpichart.Geometry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("file not found: %s", path)
	}
	p, err := source.Load(path)
	if err != nil {
		return nil, nil, err
	}

	c := kpichart.New(nil)
	if verbose {
		c.SetLogger(log.New(os.Stderr, "engine: ", 0))
	}
	if p.Config != nil {
		if _, err := c.UpdateConfig(*p.Config); err != nil {
			return nil, nil, fmt.Errorf("payload config: %w", err)
		}
		p.Config = nil
	}
	if configPath != "" {
		cfg, err := source.ReadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		if _, err := c.UpdateConfig(cfg); err != nil {
			return nil, nil, fmt.Errorf("config %s: %w", configPath, err)
		}
	}
	var size kpichart.PartialConfig
	if width > 0 {
		size.ContainerWidth = kpichart.Ptr(width)
	}
	if height > 0 {
		size.ContainerHeight = kpichart.Ptr(height)
	}
	if !size.IsEmpty() {
		if _, err := c.UpdateConfig(size); err != nil {
			return nil, nil, err
		}
	}

	g, err := p.Apply(c)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, g, nil
}

// writeChart renders g to the file out, the format taken from its extension.
func writeChart(g *kpichart.Geometry, out string, fontSize vg.Length) error {
	f, err := render.FormatOf(out)
	if err != nil {
		return err
	}
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := render.Write(file, g, f, render.DefaultStyle(fontSize)); err != nil {
		file.Close()
		return fmt.Errorf("rendering %s: %w", out, err)
	}
	return file.Close()
}
