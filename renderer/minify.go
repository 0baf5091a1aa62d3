package renderer

import (
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
)

var htmlMinifier = func() *minify.M {
	m := minify.New()
	m.Add("text/html", &mhtml.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	return m
}()

// MinifyHTML strips redundant whitespace from a finished HTML document.
// The output is deterministic for identical input.
func MinifyHTML(raw []byte) ([]byte, error) {
	return htmlMinifier.Bytes("text/html", raw)
}
