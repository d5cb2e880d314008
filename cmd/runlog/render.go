package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/runlog/internal/config"
	"github.com/crimson-sun/runlog/internal/ingest"
	"github.com/crimson-sun/runlog/internal/logging"
	"github.com/crimson-sun/runlog/internal/render"
	"github.com/crimson-sun/runlog/internal/render/console"
	"github.com/crimson-sun/runlog/internal/render/csvexp"
	"github.com/crimson-sun/runlog/internal/render/file"
	"github.com/crimson-sun/runlog/internal/render/htmlexp"
	"github.com/crimson-sun/runlog/internal/render/jsonexp"
	"github.com/crimson-sun/runlog/internal/render/multi"
	"github.com/crimson-sun/runlog/internal/render/snapshot"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

var (
	renderInput       string
	renderFromSnap    bool
	renderFormats     []string
	renderOuts        []string
	renderFragment    bool
	renderConsolidate bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "-", "NDJSON input path, or - for stdin")
	renderCmd.Flags().BoolVar(&renderFromSnap, "from-snapshot", false, "input is a msgpack snapshot instead of NDJSON")
	renderCmd.Flags().StringSliceVarP(&renderFormats, "format", "f", nil, "output format(s): console|json|csv|html|snapshot")
	renderCmd.Flags().StringSliceVarP(&renderOuts, "out", "o", nil, "output path(s), paired with --format; unpaired formats go to stdout")
	renderCmd.Flags().BoolVar(&renderFragment, "fragment", false, "html: omit the document wrapper")
	renderCmd.Flags().BoolVar(&renderConsolidate, "consolidate", true, "collapse repeated message groups before rendering")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Read run results and render them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, &cfg)
		logging.Init(cfg.Log.Level, machineToStdout(cfg))

		log, err := readLog(cfg)
		if err != nil {
			return err
		}

		if cfg.Consolidate.Enabled {
			before := len(log.Messages())
			log.Consolidate()
			slog.Debug("consolidated", "before", before, "after", len(log.Messages()))
		}

		sinks, err := buildSinks(cfg)
		if err != nil {
			return err
		}
		out := multi.New(sinks...)
		if err := out.Write(context.Background(), log); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	},
}

// applyFlags folds explicitly set command-line flags over the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if len(renderFormats) > 0 {
		cfg.Output.Format = renderFormats[0]
	}
	if cmd.Flags().Changed("fragment") {
		cfg.Output.Fragment = renderFragment
	}
	if cmd.Flags().Changed("consolidate") {
		cfg.Consolidate.Enabled = renderConsolidate
	}
	if len(renderOuts) > 0 {
		cfg.Output.Path = renderOuts[0]
	}
}

// formats returns the full list of requested formats, falling back to config.
func formats(cfg config.Config) []string {
	if len(renderFormats) > 0 {
		return renderFormats
	}
	return []string{cfg.Output.Format}
}

// target pairs a requested format with its destination, "" meaning stdout.
type target struct {
	format string
	path   string
}

// targets resolves every format to a destination. Positional --out paths
// bind first; the configured output path only binds when a single format is
// requested, so extra formats always land on stdout.
func targets(cfg config.Config) []target {
	names := formats(cfg)
	ts := make([]target, len(names))
	for i, name := range names {
		path := ""
		if i < len(renderOuts) {
			path = renderOuts[i]
		} else if len(names) == 1 {
			path = cfg.Output.Path
		}
		ts[i] = target{format: name, path: path}
	}
	return ts
}

// machineToStdout reports whether machine-readable output is headed for
// stdout, in which case diagnostics switch to JSON.
func machineToStdout(cfg config.Config) bool {
	for _, t := range targets(cfg) {
		if t.format != "console" && t.path == "" {
			return true
		}
	}
	return false
}

func readLog(cfg config.Config) (*resultlog.Log, error) {
	var in io.ReadCloser = os.Stdin
	if renderInput != "-" {
		f, err := os.Open(renderInput)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		in = f
	}
	defer func() {
		if in != os.Stdin {
			in.Close()
		}
	}()

	limit := resultlog.WithGroupLimit(cfg.Consolidate.GroupLimit)
	if renderFromSnap {
		return snapshot.Decode(in, limit)
	}

	log := resultlog.New(limit)
	n, err := ingest.ReadInto(log, in)
	if err != nil {
		return nil, err
	}
	slog.Debug("ingested records", "count", n, "input", renderInput)
	return log, nil
}

// buildSinks turns resolved targets into sinks. File sinks own their
// destinations and may run concurrently; stdout-bound formats share one
// stream and are folded into a single ordered Stream sink.
func buildSinks(cfg config.Config) ([]render.Sink, error) {
	ts := targets(cfg)
	if len(renderOuts) > len(ts) {
		return nil, fmt.Errorf("%d output paths for %d formats", len(renderOuts), len(ts))
	}

	var (
		sinks    []render.Sink
		toStdout []render.Renderer
	)
	for _, t := range ts {
		r, err := buildRenderer(t.format, cfg, t.path == "")
		if err != nil {
			return nil, err
		}
		if t.path == "" {
			toStdout = append(toStdout, r)
			continue
		}
		fs, err := file.New(t.path, r)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fs)
	}
	if len(toStdout) > 0 {
		sinks = append(sinks, multi.NewStream(os.Stdout, toStdout...))
	}
	return sinks, nil
}

func buildRenderer(name string, cfg config.Config, toStdout bool) (render.Renderer, error) {
	switch name {
	case "console":
		useColor := cfg.Output.Color == "on" ||
			(cfg.Output.Color == "auto" && toStdout && isTerminal(os.Stdout))
		return console.New(console.WithColor(useColor)), nil
	case "json":
		return jsonexp.New(), nil
	case "csv":
		return csvexp.New(), nil
	case "html":
		if cfg.Output.Fragment {
			return htmlexp.New(htmlexp.AsFragment()), nil
		}
		return htmlexp.New(), nil
	case "snapshot":
		return snapshot.New(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}
