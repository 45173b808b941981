// Command assetmin minifies JS, CSS, JSON, SCSS, HTML and SVG files
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thatguystone/assetmin"
	"github.com/thatguystone/assetmin/internal/metrics"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	err := run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, f, paths, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}

	logf := func(string, ...interface{}) {}
	if f.verbose {
		logf = log.Printf
	}

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS, and
	// the runtime default is fine then.
	_, _ = maxprocs.Set(maxprocs.Logger(logf))

	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	if err != nil {
		return err
	}

	d, err := cfg.Dispatcher(
		assetmin.LogTo(logf),
		assetmin.Observe(col))
	if err != nil {
		return err
	}

	lg := assetmin.NewLogger("assetmin", log.Printf)
	b := newBuilder(d, cfg, os.Stdout, lg)

	if len(paths) == 0 && !f.serve {
		return fmt.Errorf("no files given")
	}

	buildErr := b.build(paths)
	if !f.watch && !f.serve {
		return buildErr
	}

	if buildErr != nil {
		lg.Error(buildErr, "build failed")
	}

	if f.watch && len(paths) > 0 {
		w, err := startWatch(b, paths)
		if err != nil {
			return err
		}

		defer w.Stop()
		lg.Log("watching for changes")
	}

	if f.serve {
		lg.Log("listening on " + cfg.Listen)
		return http.ListenAndServe(cfg.Listen, newMux(d, reg))
	}

	select {}
}
