package config

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/thatguystone/assetmin"
	"github.com/thatguystone/cog/check"
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func TestDefaults(t *testing.T) {
	c := check.New(t)

	cfg := New()
	c.Equal(cfg.JSEngine, assetmin.DefaultEngine)
	c.Equal(cfg.CSSEngine, assetmin.DefaultEngine)
	c.False(cfg.Strict)
	c.True(cfg.Jobs > 0)
	c.True(cfg.Options.Minify == nil)
}

func TestLoadErrors(t *testing.T) {
	c := check.New(t)

	cfg := New()
	err := cfg.Load(fixture("narp.yml"))
	c.NotNil(err)

	err = cfg.Load(fixture("invalid.yml"))
	c.NotNil(err)

	err = cfg.Load(fixture("unknown.yml"))
	c.NotNil(err)
}

func TestLoadLayered(t *testing.T) {
	c := check.New(t)

	cfg := New()
	err := cfg.Load(fixture("one.yml"), fixture("two.yml"))
	c.Must.Nil(err)

	c.Equal(cfg.JSEngine, "esbuild")
	c.Equal(cfg.CSSEngine, "cssmin")
	c.True(cfg.Strict)
	c.Equal(cfg.Output, "public/")
	c.Equal(cfg.Jobs, 1)

	c.Equal(cfg.Options.JS.Target, "es2017")
	c.Equal(cfg.Options.CSS.Precision, 3)
	c.Equal(cfg.Options.SCSS.IncludePaths, []string{"styles/"})
	c.Must.True(cfg.Options.Minify != nil)
	c.False(*cfg.Options.Minify)
}

func TestDispatcher(t *testing.T) {
	c := check.New(t)

	cfg := New()
	err := cfg.Load(fixture("one.yml"), fixture("two.yml"))
	c.Must.Nil(err)

	d, err := cfg.Dispatcher(assetmin.LogTo(c.Logf))
	c.Must.Nil(err)

	out, err := d.Minify("json", assetmin.Options{}, "{")
	c.Equal(out, "")

	_, ok := err.(*assetmin.Error)
	c.True(ok)
}

func TestDispatcherBadEngine(t *testing.T) {
	c := check.New(t)

	cfg := New()
	err := cfg.Load(fixture("bad_engine.yml"))
	c.Must.Nil(err)

	_, err = cfg.Dispatcher()
	c.Must.NotNil(err)
	c.Equal(errors.Cause(err), assetmin.ErrUnknownEngine)
}
