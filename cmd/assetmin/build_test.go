package main

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thatguystone/assetmin"
	"github.com/thatguystone/assetmin/internal/config"
	"github.com/thatguystone/assetmin/internal/metrics"
	"github.com/thatguystone/cog/check"
)

type tmpDir struct {
	c    *check.C
	root string
}

func newTmpDir(c *check.C, files map[string]string) *tmpDir {
	root, err := ioutil.TempDir("", "assetmin-cmd")
	c.Must.Nil(err)

	tmp := &tmpDir{c: c, root: root}
	for name, contents := range files {
		err := os.MkdirAll(filepath.Dir(tmp.path(name)), 0750)
		c.Must.Nil(err)

		err = ioutil.WriteFile(tmp.path(name), []byte(contents), 0640)
		c.Must.Nil(err)
	}

	return tmp
}

func (tmp *tmpDir) path(name string) string {
	return filepath.Join(tmp.root, name)
}

func (tmp *tmpDir) read(name string) string {
	b, err := ioutil.ReadFile(tmp.path(name))
	tmp.c.Must.Nil(err)
	return string(b)
}

func (tmp *tmpDir) remove() {
	os.RemoveAll(tmp.root)
}

func newTestBuilder(c *check.C, cfg *config.C, out *bytes.Buffer) *builder {
	d, err := cfg.Dispatcher(assetmin.LogTo(c.Logf))
	c.Must.Nil(err)

	return newBuilder(d, cfg, out, assetmin.NewLogger("test", c.Logf))
}

func TestBuildToDir(t *testing.T) {
	c := check.New(t)

	tmp := newTmpDir(c, map[string]string{
		"app.js":     "var a = 1;  // one\n",
		"data.json":  `{"a": [1, 2]}`,
		"style.scss": "$c: red;\na { b { color: $c; } }\n",
		"notes.txt":  "  left  alone  ",
	})
	defer tmp.remove()

	cfg := config.New()
	cfg.JSEngine = "jsmin"
	cfg.Output = tmp.path("public")

	b := newTestBuilder(c, cfg, nil)
	err := b.build([]string{
		tmp.path("app.js"),
		tmp.path("data.json"),
		tmp.path("style.scss"),
		tmp.path("notes.txt"),
	})
	c.Must.Nil(err)

	c.Equal(tmp.read("public/app.js"), "var a=1;")
	c.Equal(tmp.read("public/data.json"), `{"a":[1,2]}`)
	c.Equal(tmp.read("public/style.css"), "a b{color:red}")
	c.Equal(tmp.read("public/notes.txt"), "  left  alone  ")
}

func TestBuildToStdout(t *testing.T) {
	c := check.New(t)

	tmp := newTmpDir(c, map[string]string{
		"data.json": `{"a": 1}`,
	})
	defer tmp.remove()

	var out bytes.Buffer
	b := newTestBuilder(c, config.New(), &out)

	err := b.build([]string{tmp.path("data.json")})
	c.Must.Nil(err)
	c.Equal(out.String(), `{"a":1}`)
}

func TestBuildErrors(t *testing.T) {
	c := check.New(t)

	tmp := newTmpDir(c, map[string]string{
		"bad.json": `{"a": `,
	})
	defer tmp.remove()

	cfg := config.New()
	cfg.Output = tmp.path("public")

	b := newTestBuilder(c, cfg, nil)

	err := b.build([]string{tmp.path("bad.json")})
	c.Must.NotNil(err)
	c.Contains(err.Error(), "bad.json")

	// Default policy: the original is still written
	c.Equal(tmp.read("public/bad.json"), `{"a": `)

	err = b.build([]string{tmp.path("missing.js")})
	c.NotNil(err)
}

func TestBuildOutputCollision(t *testing.T) {
	c := check.New(t)

	tmp := newTmpDir(c, map[string]string{
		"a/app.js":   "var a = 1;",
		"b/app.js":   "var b = 2;",
		"c/all.scss": "a { color: red; }",
		"d/all.css":  "b { color: red; }",
	})
	defer tmp.remove()

	cfg := config.New()
	cfg.Output = tmp.path("public")

	b := newTestBuilder(c, cfg, nil)

	err := b.build([]string{tmp.path("a/app.js"), tmp.path("b/app.js")})
	c.Must.NotNil(err)
	c.Contains(err.Error(), "a/app.js")
	c.Contains(err.Error(), "b/app.js")

	err = b.build([]string{tmp.path("c/all.scss"), tmp.path("d/all.css")})
	c.Must.NotNil(err)
	c.Contains(err.Error(), "all.css")

	// Nothing is written when outputs collide
	_, err = os.Stat(tmp.path("public"))
	c.True(os.IsNotExist(err))

	// Stdout has no such problem
	var out bytes.Buffer
	b = newTestBuilder(c, config.New(), &out)

	err = b.build([]string{tmp.path("a/app.js"), tmp.path("b/app.js")})
	c.Must.Nil(err)
}

func TestBuildStrict(t *testing.T) {
	c := check.New(t)

	tmp := newTmpDir(c, map[string]string{
		"bad.json": `{"a": `,
	})
	defer tmp.remove()

	cfg := config.New()
	cfg.Strict = true
	cfg.Output = tmp.path("public")

	b := newTestBuilder(c, cfg, nil)

	err := b.build([]string{tmp.path("bad.json")})
	c.Must.NotNil(err)
	c.Equal(tmp.read("public/bad.json"), "")
}

func TestServeMux(t *testing.T) {
	c := check.New(t)

	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	c.Must.Nil(err)

	d, err := assetmin.New(assetmin.LogTo(c.Logf), assetmin.Observe(col))
	c.Must.Nil(err)

	srv := httptest.NewServer(newMux(d, reg))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/minify?type=json", "application/json",
		strings.NewReader(`{"a": 1}`))
	c.Must.Nil(err)
	body, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	c.Must.Nil(err)
	c.Equal(string(body), `{"a":1}`)

	resp, err = http.Get(srv.URL + "/metrics")
	c.Must.Nil(err)
	body, err = ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	c.Must.Nil(err)
	c.Contains(string(body), `assetmin_minify_total{asset_type="json",result="ok"} 1`)
}
