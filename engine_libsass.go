package assetmin

import (
	"bytes"
	"strings"

	libsass "github.com/wellington/go-libsass"
)

// libsassCompiler compiles SCSS with libsass
type libsassCompiler struct{}

func loadLibsass() (SCSSCompiler, error) {
	return libsassCompiler{}, nil
}

func (libsassCompiler) CompileSCSS(src string, opts SCSSOptions) (string, error) {
	var b bytes.Buffer

	comp, err := libsass.New(&b, strings.NewReader(src),
		libsass.IncludePaths(opts.IncludePaths),

		// Default to Nested: the CSS engine does the compressing
		libsass.OutputStyle(libsass.NESTED_STYLE))
	if err != nil {
		return "", err
	}

	err = comp.Run()
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
