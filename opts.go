package assetmin

// An Option is passed to New() to change default options
type Option interface {
	applyTo(d *Dispatcher)
}

type option func(d *Dispatcher)

func (o option) applyTo(d *Dispatcher) { o(d) }

// ErrorHandler sets the policy applied to failed minifications. Defaults to
// DefaultErrorHandler.
func ErrorHandler(h ErrorHandlerFunc) Option {
	return option(func(d *Dispatcher) {
		d.handleError = h
	})
}

// UseJSEngine selects a registered JS engine by name (see JSEngineNames)
func UseJSEngine(name string) Option {
	return option(func(d *Dispatcher) {
		d.jsEngine = name
		d.js.load = nil
	})
}

// UseCSSEngine selects a registered CSS engine by name (see CSSEngineNames)
func UseCSSEngine(name string) Option {
	return option(func(d *Dispatcher) {
		d.cssEngine = name
		d.css.load = nil
	})
}

// LoadJSEngine provides the JS engine directly. load is called once, on first
// use.
func LoadJSEngine(load func() (JSEngine, error)) Option {
	return option(func(d *Dispatcher) {
		d.jsEngine = "custom"
		d.js.load = load
	})
}

// LoadCSSEngine provides the CSS engine directly. load is called once, on
// first use.
func LoadCSSEngine(load func() (CSSEngine, error)) Option {
	return option(func(d *Dispatcher) {
		d.cssEngine = "custom"
		d.css.load = load
	})
}

// LoadSCSSCompiler replaces the libsass compiler. load is called once, on
// first use.
func LoadSCSSCompiler(load func() (SCSSCompiler, error)) Option {
	return option(func(d *Dispatcher) {
		d.scss.load = load
	})
}

// LogTo sets the log function
func LogTo(logf LogFunc) Option {
	return option(func(d *Dispatcher) {
		d.logf = logf
	})
}

// Observe reports every call to o
func Observe(o Observer) Option {
	return option(func(d *Dispatcher) {
		d.observer = o
	})
}
