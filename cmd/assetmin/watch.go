package main

import (
	"path/filepath"

	"github.com/thatguystone/assetmin/watch"
)

// rebuilder rebuilds the files it was started with when they change
type rebuilder struct {
	b     *builder
	paths map[string]bool
}

func startWatch(b *builder, paths []string) (*watch.Watch, error) {
	rb := rebuilder{
		b:     b,
		paths: make(map[string]bool, len(paths)),
	}

	var dirs []string
	seen := make(map[string]bool)

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}

		abs, err = filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, err
		}

		rb.paths[abs] = true

		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	w, err := watch.New(dirs...)
	if err != nil {
		return nil, err
	}

	w.Notify(rb)
	return w, nil
}

func (rb rebuilder) Changed(evs watch.Events) {
	for _, path := range evs.Paths(rb.wanted) {
		err := rb.b.buildFile(path)
		if err != nil {
			rb.b.log.Error(err, "rebuild failed")
		}
	}
}

func (rb rebuilder) wanted(path string) bool {
	return rb.paths[path]
}
