// Package config loads assetmin settings from YAML files
package config

import (
	"io/ioutil"
	"runtime"

	"github.com/pkg/errors"
	"github.com/thatguystone/assetmin"
	"gopkg.in/yaml.v2"
)

// C stands for "config".
type C struct {
	// Engines to use, by name
	JSEngine  string `yaml:"js_engine"`
	CSSEngine string `yaml:"css_engine"`

	// Fail hard instead of falling back to unminified content
	Strict bool `yaml:"strict"`

	// Passed to every minification
	Options assetmin.Options `yaml:"options"`

	// Where minified files are written. Empty means stdout.
	Output string `yaml:"output"`

	// Address to serve on, when serving
	Listen string `yaml:"listen"`

	// How many files may be minified in parallel. Defaults to GOMAXPROCS.
	Jobs int `yaml:"jobs"`
}

// New creates a config with all defaults set
func New() *C {
	return &C{
		JSEngine:  assetmin.DefaultEngine,
		CSSEngine: assetmin.DefaultEngine,
		Listen:    ":8000",
		Jobs:      runtime.GOMAXPROCS(-1),
	}
}

// Load extra configs on top of this config.
func (c *C) Load(files ...string) error {
	for _, file := range files {
		b, err := ioutil.ReadFile(file)
		if err != nil {
			return errors.Wrap(err, "failed to read config file")
		}

		err = yaml.UnmarshalStrict(b, c)
		if err != nil {
			return errors.Wrapf(err, "failed to unmarshal config file %s", file)
		}
	}

	if c.Jobs < 1 {
		c.Jobs = 1
	}

	return nil
}

// Dispatcher creates a Dispatcher configured from c. Any extra options are
// applied last.
func (c *C) Dispatcher(opts ...assetmin.Option) (*assetmin.Dispatcher, error) {
	all := []assetmin.Option{
		assetmin.UseJSEngine(c.JSEngine),
		assetmin.UseCSSEngine(c.CSSEngine),
	}

	if c.Strict {
		all = append(all, assetmin.ErrorHandler(assetmin.StrictErrorHandler))
	}

	return assetmin.New(append(all, opts...)...)
}
