package assetmin

import (
	"strings"

	"github.com/dchest/cssmin"
	"github.com/dchest/jsmin"
)

// jsminEngine is Douglas Crockford's jsmin: whitespace and comments only,
// options are ignored
type jsminEngine struct{}

// cssminEngine is a port of YUI's cssmin. It never fails.
type cssminEngine struct{}

func (jsminEngine) MinifyJS(src string, _ JSOptions) (string, error) {
	out, err := jsmin.Minify([]byte(src))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

func (cssminEngine) NewCSS(CSSOptions) CSSMinifier {
	return cssminEngine{}
}

func (cssminEngine) Minify(src string) CSSResult {
	return CSSResult{
		Styles: string(cssmin.Minify([]byte(src))),
	}
}
