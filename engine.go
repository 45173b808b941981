package assetmin

import (
	"sort"
	"sync"
)

// DefaultEngine is the engine used for JS and CSS unless configured otherwise
const DefaultEngine = "tdewolff"

// A JSEngine minifies JavaScript
type JSEngine interface {
	MinifyJS(src string, opts JSOptions) (string, error)
}

// A CSSEngine builds CSS minifiers for a set of options
type CSSEngine interface {
	NewCSS(opts CSSOptions) CSSMinifier
}

// A CSSMinifier minifies a stylesheet
type CSSMinifier interface {
	Minify(src string) CSSResult
}

// CSSResult is the outcome of a CSS minification. Any Errors mean the Styles
// are unusable.
type CSSResult struct {
	Styles string
	Errors []error
}

// An SCSSCompiler turns SCSS into CSS
type SCSSCompiler interface {
	CompileSCSS(src string, opts SCSSOptions) (string, error)
}

var (
	jsEngines = map[string]func() (JSEngine, error){
		"tdewolff": func() (JSEngine, error) { return tdewolffEngine{}, nil },
		"esbuild":  func() (JSEngine, error) { return esbuildEngine{}, nil },
		"jsmin":    func() (JSEngine, error) { return jsminEngine{}, nil },
	}

	cssEngines = map[string]func() (CSSEngine, error){
		"tdewolff": func() (CSSEngine, error) { return tdewolffEngine{}, nil },
		"esbuild":  func() (CSSEngine, error) { return esbuildEngine{}, nil },
		"cssmin":   func() (CSSEngine, error) { return cssminEngine{}, nil },
	}
)

// JSEngineNames lists the registered JS engines
func JSEngineNames() []string {
	return engineNames(jsEngines)
}

// CSSEngineNames lists the registered CSS engines
func CSSEngineNames() []string {
	return engineNames(cssEngines)
}

func engineNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// lazy is an engine handle that isn't loaded until first use. Once load has
// run, its result (engine or failure) sticks.
type lazy[T any] struct {
	once sync.Once
	load func() (T, error)
	v    T
	err  error
}

func (l *lazy[T]) get() (T, error) {
	l.once.Do(func() {
		l.v, l.err = l.load()
	})

	return l.v, l.err
}
