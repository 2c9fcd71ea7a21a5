package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/vdobler/kpichart/host"
	"gonum.org/v1/plot/vg"
)

var pollInterval time.Duration

func watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [payload]",
		Short: "Render a payload and render it again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: payload name with .svg)")
	cmd.Flags().Float64Var(&fontSize, "font-size", 12, "Base font size in points")
	cmd.Flags().DurationVar(&pollInterval, "interval", time.Second, "Poll interval for file changes")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watch(ctx, args[0], outputFor(args[0], outputPath), pollInterval, host.ResizeDelay)
}

// watch renders in to out now and after each burst of changes to in or to
// the configuration file. Render errors are logged, not returned.
func watch(ctx context.Context, in, out string, interval, settle time.Duration) error {
	rerender := func() {
		_, g, err := buildChart(in)
		if err != nil {
			log.Printf("Skipping render: %v", err)
			return
		}
		if err := writeChart(g, out, vg.Length(fontSize)); err != nil {
			log.Printf("Skipping render: %v", err)
			return
		}
		log.Printf("Wrote %s", out)
	}

	files := []string{in}
	if configPath != "" {
		files = append(files, configPath)
	}
	last := modTimes(files)
	rerender()

	debounce, changed := host.NewSignal(settle)
	defer debounce.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if now := modTimes(files); !sameTimes(now, last) {
				last = now
				debounce.Trigger()
			}
		case <-changed:
			rerender()
		}
	}
}

func modTimes(files []string) []time.Time {
	ts := make([]time.Time, len(files))
	for i, f := range files {
		if fi, err := os.Stat(f); err == nil {
			ts[i] = fi.ModTime()
		}
	}
	return ts
}

func sameTimes(a, b []time.Time) bool {
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
