package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/thatguystone/assetmin"
	"github.com/thatguystone/assetmin/internal/config"
)

// flags holds everything that isn't part of the config file
type flags struct {
	configs []string
	watch   bool
	serve   bool
	verbose bool
}

func newFlagSet(name string, f *flags, cfg *config.C) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringSliceVarP(&f.configs, "config", "c", nil,
		"YAML config files, applied in order")
	fs.BoolVarP(&f.watch, "watch", "w", false,
		"Rebuild files as they change")
	fs.BoolVar(&f.serve, "serve", false,
		"Serve /minify and /metrics over HTTP")
	fs.BoolVarP(&f.verbose, "verbose", "v", false,
		"Log more")

	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output,
		"Directory to write minified files to (default: stdout)")
	fs.StringVar(&cfg.JSEngine, "js-engine", cfg.JSEngine,
		"JS engine: "+strings.Join(assetmin.JSEngineNames(), ", "))
	fs.StringVar(&cfg.CSSEngine, "css-engine", cfg.CSSEngine,
		"CSS engine: "+strings.Join(assetmin.CSSEngineNames(), ", "))
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict,
		"Fail instead of falling back to unminified content")
	fs.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs,
		"Files to minify in parallel")
	fs.StringVar(&cfg.Listen, "listen", cfg.Listen,
		"Address to serve on, with --serve")
	fs.Bool("no-minify", false,
		"Pass files through (SCSS is still compiled)")

	return fs
}

// parseArgs loads config files named by --config, then applies any flags
// given explicitly on top of them.
func parseArgs(args []string, out io.Writer) (*config.C, *flags, []string, error) {
	var f flags

	// Flag values land in a scratch config; only the flags that were set
	// are copied over the loaded files.
	fs := newFlagSet(args[0], &f, config.New())
	fs.SetOutput(out)

	err := fs.Parse(args[1:])
	if err != nil {
		return nil, nil, nil, err
	}

	cfg := config.New()
	err = cfg.Load(f.configs...)
	if err != nil {
		return nil, nil, nil, err
	}

	overlay(cfg, fs)

	if cfg.Jobs < 1 {
		return nil, nil, nil, fmt.Errorf("--jobs must be at least 1, got %d", cfg.Jobs)
	}

	return cfg, &f, fs.Args(), nil
}

// overlay copies the flags that were set on the command line into cfg
func overlay(cfg *config.C, fs *flag.FlagSet) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "output":
			cfg.Output = fl.Value.String()
		case "js-engine":
			cfg.JSEngine = fl.Value.String()
		case "css-engine":
			cfg.CSSEngine = fl.Value.String()
		case "strict":
			cfg.Strict, _ = fs.GetBool("strict")
		case "jobs":
			cfg.Jobs, _ = fs.GetInt("jobs")
		case "listen":
			cfg.Listen = fl.Value.String()
		case "no-minify":
			noMinify, _ := fs.GetBool("no-minify")
			cfg.Options.Minify = assetmin.Bool(!noMinify)
		}
	})
}
