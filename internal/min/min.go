// Package min holds the tdewolff minifier registry shared by every engine
package min

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	min_css "github.com/tdewolff/minify/v2/css"
	min_html "github.com/tdewolff/minify/v2/html"
	min_js "github.com/tdewolff/minify/v2/js"
	min_json "github.com/tdewolff/minify/v2/json"
	min_svg "github.com/tdewolff/minify/v2/svg"
)

const (
	// DefaultType is sent for content that has no better type
	DefaultType = "application/octet-stream"

	CSSType  = "text/css"
	HTMLType = "text/html"
	JSType   = "application/javascript"
	JSONType = "application/json"
	SVGType  = "image/svg+xml"
)

var min = minify.New()

func init() {
	min.AddFunc(CSSType, min_css.Minify)
	min.AddFunc(HTMLType, min_html.Minify)
	min.AddFuncRegexp(
		regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"),
		min_js.Minify)
	min.AddFuncRegexp(regexp.MustCompile("[/+]json$"), min_json.Minify)
	min.AddFunc(SVGType, min_svg.Minify)
}

// String minifies s with the default minifier for mediaType
func String(mediaType, s string) (string, error) {
	return min.String(mediaType, s)
}

// With minifies s with the given minifier. The shared registry still handles
// anything embedded in s (eg. <style> in HTML).
func With(m minify.Minifier, s string) (string, error) {
	var b bytes.Buffer
	b.Grow(len(s))

	err := m.Minify(min, &b, strings.NewReader(s), nil)
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
