package assetmin

// Options controls how a single body is minified. The zero value minifies
// with each engine's defaults.
type Options struct {
	// Minification is on unless this is explicitly false. SCSS is still
	// compiled when minification is off.
	Minify *bool `yaml:"minify,omitempty"`

	JS   JSOptions   `yaml:"js"`
	CSS  CSSOptions  `yaml:"css"`
	SCSS SCSSOptions `yaml:"scss"`
	HTML HTMLOptions `yaml:"html"`
}

// JSOptions are passed through to the JS engine
type JSOptions struct {
	KeepVarNames bool   `yaml:"keep_var_names" param:"keepvarnames"`
	Precision    int    `yaml:"precision" param:"precision"` // Significant digits in numbers; 0 keeps all
	Target       string `yaml:"target" param:"target"`       // esbuild only, eg. "es2017"
}

// CSSOptions are passed through to the CSS engine
type CSSOptions struct {
	Precision int  `yaml:"precision" param:"precision"`
	KeepCSS2  bool `yaml:"keep_css2" param:"keepcss2"`
}

// SCSSOptions configure the SCSS compiler
type SCSSOptions struct {
	IncludePaths []string `yaml:"include_paths"`
}

// HTMLOptions are passed through to the HTML minifier
type HTMLOptions struct {
	KeepComments     bool `yaml:"keep_comments" param:"keepcomments"`
	KeepWhitespace   bool `yaml:"keep_whitespace" param:"keepwhitespace"`
	KeepDocumentTags bool `yaml:"keep_document_tags" param:"keepdocumenttags"`
}

// Bool returns a pointer to b, for use with Options.Minify
func Bool(b bool) *bool {
	return &b
}

func (o Options) minify() bool {
	return o.Minify == nil || *o.Minify
}
