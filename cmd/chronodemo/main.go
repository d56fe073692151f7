// Command chronodemo prints the tick/label table the chronoaxis engine
// produces for a time range, for eyeballing interval selection and
// landmark behavior without wiring up a chart.
//
//	chronodemo --start 2024-01-01T00:00:00Z --end 2024-01-01T02:00:00Z --width 400
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/chronoaxis"
)

var flags struct {
	start        string
	end          string
	width        float64
	labelSize    float64
	intervalType string
	format       string
	locale       string
	zone         string
	configPath   string
	verbose      bool
}

func main() {
	root := &cobra.Command{
		Use:           "chronodemo",
		Short:         "Print chronoaxis tick selection for a time range",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&flags.start, "start", "", "range start, RFC 3339 (required)")
	root.Flags().StringVar(&flags.end, "end", "", "range end, RFC 3339 (required)")
	root.Flags().Float64Var(&flags.width, "width", 800, "available axis width in pixels")
	root.Flags().Float64Var(&flags.labelSize, "label-size", 0, "pixel budget per label")
	root.Flags().StringVar(&flags.intervalType, "interval-type", "", "force a tier (years..milliseconds)")
	root.Flags().StringVar(&flags.format, "format", "", "label pattern override")
	root.Flags().StringVar(&flags.locale, "locale", "", "BCP 47 locale tag")
	root.Flags().StringVar(&flags.zone, "zone", "", "IANA time zone for labels")
	root.Flags().StringVar(&flags.configPath, "config", "", "axis config YAML file")
	root.Flags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")
	_ = root.MarkFlagRequired("start")
	_ = root.MarkFlagRequired("end")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chronodemo:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flags.verbose {
		chronoaxis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := chronoaxis.Config{
		IntervalType:    flags.intervalType,
		Format:          flags.format,
		Locale:          flags.locale,
		TimeZone:        flags.zone,
		TargetLabelSize: flags.labelSize,
	}
	if flags.configPath != "" {
		loaded, err := chronoaxis.LoadConfig(flags.configPath)
		if err != nil {
			return err
		}
		cfg = merge(loaded, cfg)
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	ax := chronoaxis.New(opts...)

	start, err := time.Parse(time.RFC3339, flags.start)
	if err != nil {
		return fmt.Errorf("parse --start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, flags.end)
	if err != nil {
		return fmt.Errorf("parse --end: %w", err)
	}

	r := chronoaxis.Range{Min: ax.ToNumeric(start), Max: ax.ToNumeric(end)}
	res, err := ax.Recompute(r, flags.width)
	if err != nil {
		return err
	}

	fmt.Printf("tier=%s minor=%s step=%.6g days  majors=%d minors=%d flags=%s\n\n",
		res.Tier, res.MinorTier, res.Step.Magnitude,
		len(res.MajorTicks), len(res.MinorTicks), res.Flags)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tDATE\tLANDMARK\tLABEL")
	for _, tick := range res.Ticks {
		mark := ""
		if tick.Landmark {
			mark = tick.Field.String()
		}
		fmt.Fprintf(w, "%.6f\t%s\t%s\t%s\n",
			tick.Position,
			ax.ToDate(tick.Position).Format(time.RFC3339),
			mark,
			strings.ReplaceAll(tick.Label, "\n", `\n`))
	}
	return w.Flush()
}

// merge overlays non-zero CLI values on top of a loaded config file.
func merge(base, over chronoaxis.Config) chronoaxis.Config {
	if over.IntervalType != "" {
		base.IntervalType = over.IntervalType
	}
	if over.Format != "" {
		base.Format = over.Format
	}
	if over.Locale != "" {
		base.Locale = over.Locale
	}
	if over.TimeZone != "" {
		base.TimeZone = over.TimeZone
	}
	if over.TargetLabelSize > 0 {
		base.TargetLabelSize = over.TargetLabelSize
	}
	return base
}
