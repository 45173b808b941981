package main

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/thatguystone/assetmin"
	"github.com/thatguystone/assetmin/internal/config"
	"golang.org/x/sync/errgroup"
)

// builder minifies files from disk
type builder struct {
	d    *assetmin.Dispatcher
	cfg  *config.C
	log  assetmin.Logger
	mtx  sync.Mutex // Serializes writes to stdout
	outw io.Writer
}

func newBuilder(d *assetmin.Dispatcher, cfg *config.C, outw io.Writer, log assetmin.Logger) *builder {
	return &builder{
		d:    d,
		cfg:  cfg,
		log:  log,
		outw: outw,
	}
}

// build minifies every path, cfg.Jobs at a time. All paths are attempted;
// the first error is returned.
func (b *builder) build(paths []string) error {
	err := b.checkOutputs(paths)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(b.cfg.Jobs)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			return b.buildFile(path)
		})
	}

	return g.Wait()
}

func (b *builder) buildFile(path string) error {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read")
	}

	at := assetmin.AssetTypeFromPath(path)
	out, minErr := b.d.Minify(at.String(), b.cfg.Options, string(src))

	// Whatever the error handler chose as the body is still written: the
	// default handler never drops content.
	err = b.write(path, at, out)
	if err != nil {
		return err
	}

	if minErr != nil {
		return errors.Wrapf(minErr, "in %s", path)
	}

	if b.cfg.Output != "" {
		b.log.Log(path + " -> " + b.outPath(path, at))
	}

	return nil
}

func (b *builder) write(path string, at assetmin.AssetType, out string) error {
	if b.cfg.Output == "" {
		b.mtx.Lock()
		defer b.mtx.Unlock()

		_, err := io.WriteString(b.outw, out)
		return err
	}

	dst := b.outPath(path, at)

	err := os.MkdirAll(filepath.Dir(dst), 0750)
	if err == nil {
		err = ioutil.WriteFile(dst, []byte(out), 0640)
	}

	return errors.Wrapf(err, "failed to write %s", dst)
}

// checkOutputs rejects inputs that would be written to the same output file
func (b *builder) checkOutputs(paths []string) error {
	if b.cfg.Output == "" {
		return nil
	}

	srcs := map[string]string{}
	for _, path := range paths {
		dst := b.outPath(path, assetmin.AssetTypeFromPath(path))

		prev, ok := srcs[dst]
		if ok {
			return errors.Errorf("%s and %s would both be written to %s",
				prev, path, dst)
		}

		srcs[dst] = path
	}

	return nil
}

// outPath gives where a file is written in the output directory: same base
// name, with the extension of the minified type (eg. all.scss -> all.css).
func (b *builder) outPath(path string, at assetmin.AssetType) string {
	base := filepath.Base(path)

	if ext := at.Ext(); ext != "" {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ext
	}

	return filepath.Join(b.cfg.Output, base)
}
