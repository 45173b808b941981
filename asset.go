// Package assetmin routes asset bodies (JS, CSS, JSON, SCSS, HTML, SVG) to
// third-party minification engines and shapes their failures.
//
// A Dispatcher never minifies anything itself: it picks the engine for an
// asset type, runs it, and sends any failure through a pluggable error handler
// that decides what the caller finally gets back.
package assetmin

import (
	"path/filepath"
	"strings"

	"github.com/thatguystone/assetmin/internal/min"
)

// AssetType identifies the minification routine that applies to a body
type AssetType int

// Supported asset types. Unknown bodies are passed through untouched.
const (
	Unknown AssetType = iota
	JS
	CSS
	JSON
	SCSS
	HTML
	SVG
)

var (
	assetTags = map[string]AssetType{
		"js":   JS,
		"mjs":  JS,
		"css":  CSS,
		"json": JSON,
		"scss": SCSS,
		"html": HTML,
		"htm":  HTML,
		"svg":  SVG,
	}

	assetNames = [...]string{
		Unknown: "unknown",
		JS:      "js",
		CSS:     "css",
		JSON:    "json",
		SCSS:    "scss",
		HTML:    "html",
		SVG:     "svg",
	}

	assetMediaTypes = [...]string{
		Unknown: min.DefaultType,
		JS:      min.JSType,
		CSS:     min.CSSType,
		JSON:    min.JSONType,
		SCSS:    min.CSSType, // Compiled output
		HTML:    min.HTMLType,
		SVG:     min.SVGType,
	}
)

// ParseAssetType maps a tag (eg. "css", ".css", "JS") to its AssetType. Tags
// that aren't recognized give Unknown.
func ParseAssetType(tag string) AssetType {
	tag = strings.ToLower(strings.TrimPrefix(tag, "."))
	return assetTags[tag]
}

// AssetTypeFromPath determines the AssetType of a file from its extension
func AssetTypeFromPath(path string) AssetType {
	return ParseAssetType(filepath.Ext(path))
}

func (t AssetType) String() string {
	if t < 0 || int(t) >= len(assetNames) {
		return assetNames[Unknown]
	}

	return assetNames[t]
}

// MediaType gives the media type of the minified output
func (t AssetType) MediaType() string {
	if t < 0 || int(t) >= len(assetMediaTypes) {
		return min.DefaultType
	}

	return assetMediaTypes[t]
}

// Ext gives the file extension of the minified output. SCSS compiles to CSS,
// so it gets ".css".
func (t AssetType) Ext() string {
	switch t {
	case Unknown:
		return ""
	case SCSS:
		return ".css"
	default:
		return "." + t.String()
	}
}
