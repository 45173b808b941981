package main

import (
	"io/ioutil"
	"testing"

	"github.com/thatguystone/assetmin"
	"github.com/thatguystone/cog/check"
)

func TestParseArgsDefaults(t *testing.T) {
	c := check.New(t)

	cfg, f, paths, err := parseArgs([]string{"assetmin", "a.js", "b.css"}, ioutil.Discard)
	c.Must.Nil(err)

	c.Equal(paths, []string{"a.js", "b.css"})
	c.Equal(cfg.JSEngine, assetmin.DefaultEngine)
	c.Equal(cfg.Output, "")
	c.False(f.watch)
	c.True(cfg.Options.Minify == nil)
}

func TestParseArgsOverlay(t *testing.T) {
	c := check.New(t)

	cfg, _, _, err := parseArgs(
		[]string{
			"assetmin",
			"-c", "testdata/config.yml",
			"--css-engine", "esbuild",
			"--no-minify",
			"a.js",
		},
		ioutil.Discard)
	c.Must.Nil(err)

	// From the file
	c.Equal(cfg.JSEngine, "jsmin")
	c.Equal(cfg.Output, "out/")
	c.Equal(cfg.Jobs, 2)

	// From flags
	c.Equal(cfg.CSSEngine, "esbuild")
	c.Must.True(cfg.Options.Minify != nil)
	c.False(*cfg.Options.Minify)

	cfg, _, _, err = parseArgs(
		[]string{"assetmin", "-c", "testdata/config.yml", "-o", "elsewhere/", "-j", "4"},
		ioutil.Discard)
	c.Must.Nil(err)
	c.Equal(cfg.Output, "elsewhere/")
	c.Equal(cfg.Jobs, 4)
}

func TestParseArgsErrors(t *testing.T) {
	c := check.New(t)

	_, _, _, err := parseArgs([]string{"assetmin", "--nope"}, ioutil.Discard)
	c.NotNil(err)

	_, _, _, err = parseArgs([]string{"assetmin", "-c", "testdata/missing.yml"}, ioutil.Discard)
	c.NotNil(err)

	_, _, _, err = parseArgs([]string{"assetmin", "-j", "0"}, ioutil.Discard)
	c.NotNil(err)
}
