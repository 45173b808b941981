package assetmin

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

// esbuildEngine wraps esbuild's transform API, for both JS and CSS
type esbuildEngine struct{}

type esbuildCSS struct {
	opts CSSOptions
}

var esbuildTargets = map[string]api.Target{
	"":       api.ESNext,
	"esnext": api.ESNext,
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
}

// esbuildError is a single message from an esbuild run
type esbuildError struct {
	text      string
	line, col int // 0 when esbuild gave no location
}

func (err esbuildError) Error() string {
	if err.line == 0 {
		return err.text
	}

	return fmt.Sprintf("%d:%d: %s", err.line, err.col, err.text)
}

func (esbuildEngine) MinifyJS(src string, opts JSOptions) (string, error) {
	target, ok := esbuildTargets[strings.ToLower(opts.Target)]
	if !ok {
		return "", errors.Errorf("unknown esbuild target %q", opts.Target)
	}

	res := api.Transform(src, api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            target,
		MinifyWhitespace:  true,
		MinifyIdentifiers: !opts.KeepVarNames,
		MinifySyntax:      true,
	})

	if errs := esbuildErrors(res.Errors); len(errs) > 0 {
		if len(errs) == 1 {
			return "", errs[0]
		}

		return "", Errors(errs)
	}

	return strings.TrimSuffix(string(res.Code), "\n"), nil
}

func (esbuildEngine) NewCSS(opts CSSOptions) CSSMinifier {
	return esbuildCSS{opts: opts}
}

func (c esbuildCSS) Minify(src string) (res CSSResult) {
	out := api.Transform(src, api.TransformOptions{
		Loader:           api.LoaderCSS,
		MinifyWhitespace: true,
		MinifySyntax:     true,
	})

	res.Errors = esbuildErrors(out.Errors)
	if len(res.Errors) == 0 {
		res.Styles = strings.TrimSuffix(string(out.Code), "\n")
	}

	return
}

func esbuildErrors(msgs []api.Message) []error {
	if len(msgs) == 0 {
		return nil
	}

	errs := make([]error, len(msgs))
	for i, msg := range msgs {
		err := esbuildError{text: msg.Text}
		if msg.Location != nil {
			err.line = msg.Location.Line
			err.col = msg.Location.Column
		}

		errs[i] = err
	}

	return errs
}
