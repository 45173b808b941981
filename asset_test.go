package assetmin

import (
	"testing"

	"github.com/thatguystone/cog/check"
)

func TestParseAssetType(t *testing.T) {
	c := check.New(t)

	tests := []struct {
		in  string
		out AssetType
	}{
		{"js", JS},
		{".js", JS},
		{"JS", JS},
		{"mjs", JS},
		{"css", CSS},
		{"json", JSON},
		{"scss", SCSS},
		{"html", HTML},
		{".htm", HTML},
		{"svg", SVG},
		{"", Unknown},
		{"coffee", Unknown},
		{"js.map", Unknown},
	}

	for _, test := range tests {
		c.Equal(ParseAssetType(test.in), test.out)
	}
}

func TestAssetTypeFromPath(t *testing.T) {
	c := check.New(t)

	c.Equal(AssetTypeFromPath("static/app.min.js"), JS)
	c.Equal(AssetTypeFromPath("/styles/all.SCSS"), SCSS)
	c.Equal(AssetTypeFromPath("README"), Unknown)
}

func TestAssetTypeOutput(t *testing.T) {
	c := check.New(t)

	c.Equal(JS.String(), "js")
	c.Equal(AssetType(99).String(), "unknown")

	c.Equal(SCSS.Ext(), ".css")
	c.Equal(JSON.Ext(), ".json")
	c.Equal(Unknown.Ext(), "")

	c.Equal(SCSS.MediaType(), "text/css")
	c.Equal(JS.MediaType(), "application/javascript")
	c.Equal(AssetType(-1).MediaType(), "application/octet-stream")
}
