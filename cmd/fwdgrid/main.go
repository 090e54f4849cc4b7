// Command fwdgrid prints a forward rate grid from a spot yield table:
// one row per future as-of date, one column per tenor.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/meenmo/fwdcurve/config"
	"github.com/meenmo/fwdcurve/curve"
	"github.com/meenmo/fwdcurve/export"
	"github.com/meenmo/fwdcurve/grid"
	"github.com/meenmo/fwdcurve/marketdata/ust"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	configPath := flag.String("config", "", "YAML config path (uses the bundled Treasury snapshot if omitted)")
	months := flag.Int("months", 0, "Number of monthly as-of rows (overrides config)")
	start := flag.String("start", "", "First as-of date, YYYY-MM-DD (overrides config)")
	format := flag.String("format", "", "Output format: text, json, or xlsx (overrides config)")
	out := flag.String("out", "", "Output path (stdout if omitted, required for xlsx)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if err := run(*configPath, *months, *start, *format, *out); err != nil {
		slog.Error("fwdgrid failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, months int, start, format, outPath string) error {
	cfg := &config.Config{Output: config.OutputConfig{Format: config.FormatText}}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over config file and environment.
	if months != 0 {
		cfg.Grid.NumMonths = months
	}
	if start != "" {
		cfg.Grid.StartDate = start
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if outPath != "" {
		cfg.Output.Path = outPath
	}

	yields := cfg.Curve.Yields
	if len(yields) == 0 {
		slog.Debug("no yield table configured, using bundled Treasury snapshot")
		yields = ust.DefaultSource().Yields()
	}
	c, err := curve.BuildYieldCurveFromTable(yields, cfg.Curve.TenorYears)
	if err != nil {
		return err
	}

	startDate, err := cfg.Grid.Start()
	if err != nil {
		return err
	}

	table, err := grid.NewBuilder(slog.Default()).Build(grid.Input{
		Curve:     c,
		NumMonths: cfg.Grid.NumMonths,
		StartDate: startDate,
	})
	if err != nil {
		return err
	}

	return render(table, cfg.Output)
}

func render(table *grid.Table, out config.OutputConfig) error {
	switch out.Format {
	case config.FormatText, config.FormatJSON:
		w := os.Stdout
		if out.Path != "" {
			f, err := os.Create(out.Path)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		if out.Format == config.FormatJSON {
			return export.WriteJSON(w, table)
		}
		return export.WriteText(w, table)
	case config.FormatXLSX:
		if out.Path == "" {
			return fmt.Errorf("%s output needs -out", config.FormatXLSX)
		}
		f, err := os.Create(out.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteXLSX(f, table)
	default:
		return fmt.Errorf("unknown output format %q", out.Format)
	}
}
