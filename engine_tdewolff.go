package assetmin

import (
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/thatguystone/assetmin/internal/min"
)

// tdewolffEngine wraps github.com/tdewolff/minify. It also handles every
// asset type that has no pluggable engine (JSON, HTML, SVG).
type tdewolffEngine struct{}

type tdewolffCSS struct {
	m *css.Minifier
}

func (tdewolffEngine) MinifyJS(src string, opts JSOptions) (string, error) {
	return min.With(
		&js.Minifier{
			Precision:    opts.Precision,
			KeepVarNames: opts.KeepVarNames,
		},
		src)
}

func (tdewolffEngine) NewCSS(opts CSSOptions) CSSMinifier {
	return tdewolffCSS{
		m: &css.Minifier{
			Precision: opts.Precision,
			KeepCSS2:  opts.KeepCSS2,
		},
	}
}

func (c tdewolffCSS) Minify(src string) (res CSSResult) {
	styles, err := min.With(c.m, src)
	if err != nil {
		res.Errors = []error{err}
		return
	}

	res.Styles = styles
	return
}

func minifyJSON(src string) (string, error) {
	return min.JSON(src)
}

func minifyHTML(src string, opts HTMLOptions) (string, error) {
	return min.With(
		&html.Minifier{
			KeepComments:     opts.KeepComments,
			KeepWhitespace:   opts.KeepWhitespace,
			KeepDocumentTags: opts.KeepDocumentTags,
		},
		src)
}

func minifySVG(src string) (string, error) {
	return min.String(min.SVGType, src)
}
