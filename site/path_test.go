package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"index.md", "index.html"},
		{"Index.md", "index.html"},
		{"INDEX.MD", "index.html"},
		{"guide.md", "guide.html"},
		{"sub/index.md", "sub/index.html"},
		{"sub/deep/page.md", "sub/deep/page.html"},
		{"release-notes.md", "release-notes.html"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, OutputPathFor(tc.rel), tc.rel)
	}
}

func TestRelHref(t *testing.T) {
	assert.Equal(t, "assets", relHref("index.html", "assets"))
	assert.Equal(t, "../assets", relHref("sub/page.html", "assets"))
	assert.Equal(t, "../../assets", relHref("a/b/page.html", "assets"))
	assert.Equal(t, "../index.html", relHref("sub/page.html", "index.html"))
	assert.Equal(t, "index.html", relHref("guide.html", "index.html"))
}

func TestHomeHref(t *testing.T) {
	assert.Equal(t, "index.html", homeHref("guide.html", "index.md"))
	assert.Equal(t, "../index.html", homeHref("sub/page.html", "index.md"))
	assert.Equal(t, "README.html", homeHref("guide.html", "README.md"))
	assert.Equal(t, "../README.html", homeHref("sub/page.html", "README.md"))
	assert.Equal(t, "../../README.html", homeHref("a/b/page.html", "README.md"))
}

func TestAssetPrefix_NestedAssetsDir(t *testing.T) {
	assert.Equal(t, "static/img", assetPrefix("index.html", "static/img"))
	assert.Equal(t, "../static/img", assetPrefix("sub/page.html", "static/img"))
}

func TestCanonicalURL(t *testing.T) {
	base := "https://docs.example.com"
	assert.Equal(t, "https://docs.example.com/guide.html", canonicalURL(base, "guide.html"))
	assert.Equal(t, "https://docs.example.com/", canonicalURL(base, "index.html"))
	assert.Equal(t, "https://docs.example.com/sub/", canonicalURL(base, "sub/index.html"))
	assert.Equal(t, "", canonicalURL("", "guide.html"))
}
