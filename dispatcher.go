package assetmin

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// A Dispatcher routes bodies to minification engines by asset type. It is
// safe for concurrent use; engines are loaded once, on first use.
type Dispatcher struct {
	handleError ErrorHandlerFunc
	jsEngine    string
	cssEngine   string
	logf        LogFunc
	log         Logger
	observer    Observer

	js   lazy[JSEngine]
	css  lazy[CSSEngine]
	scss lazy[SCSSCompiler]
}

// failure is the stage and cause of a handler failure, before the Dispatcher
// builds the full Error
type failure struct {
	stage Stage
	err   error
	body  *string // Input of the failed stage, when it's not the original body
}

// New creates a Dispatcher. Engine names are checked here, but no engine is
// loaded until it's needed.
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		handleError: DefaultErrorHandler,
		jsEngine:    DefaultEngine,
		cssEngine:   DefaultEngine,
		logf:        log.Printf,
	}

	for _, opt := range opts {
		opt.applyTo(d)
	}

	if d.js.load == nil {
		load, ok := jsEngines[d.jsEngine]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownEngine, "js engine %q", d.jsEngine)
		}

		d.js.load = load
	}

	if d.css.load == nil {
		load, ok := cssEngines[d.cssEngine]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownEngine, "css engine %q", d.cssEngine)
		}

		d.css.load = load
	}

	if d.scss.load == nil {
		d.scss.load = loadLibsass
	}

	if d.handleError == nil {
		d.handleError = DefaultErrorHandler
	}

	d.log = NewLogger(
		fmt.Sprintf("assetmin{js=%s,css=%s}", d.jsEngine, d.cssEngine),
		d.logf)

	return d, nil
}

// CompileAndMinify minifies body as the given asset type (eg. "js", "css") and
// hands the result to cb, before returning. Unknown asset types are passed
// through unchanged.
//
// When an engine fails, the Dispatcher's error handler decides what cb gets.
// cb is called at most once.
func (d *Dispatcher) CompileAndMinify(
	assetType string,
	opts Options,
	body string,
	cb Callback) {

	if cb == nil {
		panic("assetmin: CompileAndMinify called with nil callback")
	}

	at := ParseAssetType(assetType)
	start := time.Now()

	out, fail := d.dispatch(at, opts, body)

	ev := Event{
		AssetType: at,
		Skipped:   at == Unknown || (!opts.minify() && at != SCSS),
		In:        len(body),
		Out:       len(out),
	}

	if fail == nil {
		ev.Took = time.Since(start)
		d.observe(ev)

		cb(nil, out)
		return
	}

	info := &Error{
		Stage:     fail.stage,
		Err:       fail.err,
		Body:      body,
		AssetType: at,
		Options:   opts,
	}

	if fail.body != nil {
		info.Body = *fail.body
	}

	ev.Took = time.Since(start)
	ev.Out = 0
	ev.Err = info
	d.observe(ev)

	d.log.Error(info, "minify failed")
	d.handleError(info, d.once(info, cb))
}

// Minify is CompileAndMinify with the result returned directly
func (d *Dispatcher) Minify(
	assetType string,
	opts Options,
	body string) (out string, err error) {

	called := false
	d.CompileAndMinify(assetType, opts, body,
		func(cbErr error, cbBody string) {
			called = true
			out, err = cbBody, cbErr
		})

	if !called {
		return body, ErrNoResult
	}

	return
}

func (d *Dispatcher) dispatch(
	at AssetType,
	opts Options,
	body string) (string, *failure) {

	switch at {
	case JS:
		return d.minifyJS(opts, body)

	case CSS:
		return d.minifyCSS(opts, body)

	case JSON:
		return d.minifyJSON(opts, body)

	case SCSS:
		return d.compileSCSS(opts, body)

	case HTML:
		return d.minifyHTML(opts, body)

	case SVG:
		return d.minifySVG(opts, body)

	default:
		return body, nil
	}
}

func (d *Dispatcher) minifyJS(opts Options, body string) (string, *failure) {
	if !opts.minify() {
		return body, nil
	}

	eng, err := d.js.get()
	if err != nil {
		return "", minifyFailed(errors.Wrap(err, "failed to load js engine"))
	}

	out, err := eng.MinifyJS(body, opts.JS)
	if err != nil {
		return "", minifyFailed(err)
	}

	return out, nil
}

func (d *Dispatcher) minifyCSS(opts Options, body string) (string, *failure) {
	if !opts.minify() {
		return body, nil
	}

	eng, err := d.css.get()
	if err != nil {
		return "", minifyFailed(errors.Wrap(err, "failed to load css engine"))
	}

	res := eng.NewCSS(opts.CSS).Minify(body)
	if len(res.Errors) > 0 {
		return "", minifyFailed(Errors(res.Errors))
	}

	return res.Styles, nil
}

func (d *Dispatcher) minifyJSON(opts Options, body string) (string, *failure) {
	if !opts.minify() {
		return body, nil
	}

	out, err := minifyJSON(body)
	if err != nil {
		return "", minifyFailed(err)
	}

	return out, nil
}

func (d *Dispatcher) compileSCSS(opts Options, body string) (string, *failure) {
	comp, err := d.scss.get()
	if err != nil {
		return "", &failure{
			stage: StageCompile,
			err:   errors.Wrap(err, "failed to load scss compiler"),
		}
	}

	css, err := comp.CompileSCSS(body, opts.SCSS)
	if err != nil {
		return "", &failure{
			stage: StageCompile,
			err:   err,
		}
	}

	// If minifying fails, fall back to the compiled CSS, not the SCSS
	out, fail := d.minifyCSS(opts, css)
	if fail != nil {
		fail.body = &css
	}

	return out, fail
}

func (d *Dispatcher) minifyHTML(opts Options, body string) (string, *failure) {
	if !opts.minify() {
		return body, nil
	}

	out, err := minifyHTML(body, opts.HTML)
	if err != nil {
		return "", minifyFailed(err)
	}

	return out, nil
}

func (d *Dispatcher) minifySVG(opts Options, body string) (string, *failure) {
	if !opts.minify() {
		return body, nil
	}

	out, err := minifySVG(body)
	if err != nil {
		return "", minifyFailed(err)
	}

	return out, nil
}

func (d *Dispatcher) observe(ev Event) {
	if d.observer != nil {
		d.observer.Observe(ev)
	}
}

// once guards cb from error handlers that call back more than once
func (d *Dispatcher) once(info *Error, cb Callback) Callback {
	var called int32

	return func(err error, body string) {
		if !atomic.CompareAndSwapInt32(&called, 0, 1) {
			d.log.Error(info, "error handler called back more than once, ignoring")
			return
		}

		cb(err, body)
	}
}

func minifyFailed(err error) *failure {
	return &failure{
		stage: StageMinify,
		err:   err,
	}
}
