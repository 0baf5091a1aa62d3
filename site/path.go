package site

import (
	"path"
	"strings"
)

// OutputPathFor maps a source-relative markdown path to its generated HTML
// path. An index file maps to its directory's index.html; anything else swaps
// the markdown extension for .html.
func OutputPathFor(relMd string) string {
	rel := path.Clean(strings.ReplaceAll(relMd, "\\", "/"))
	dir := path.Dir(rel)
	base := path.Base(rel)

	var name string
	if strings.EqualFold(base, "index.md") {
		name = "index.html"
	} else {
		name = strings.TrimSuffix(base, path.Ext(base)) + ".html"
	}
	if dir == "." {
		return name
	}
	return path.Join(dir, name)
}

// relHref computes the relative link from the directory containing
// outputRel to target, both slash paths relative to the output root.
// The generated site carries no absolute paths so it stays relocatable.
func relHref(outputRel, target string) string {
	fromDir := path.Dir(outputRel)
	if fromDir == "." {
		return target
	}
	up := strings.Count(fromDir, "/") + 1
	return strings.Repeat("../", up) + target
}

// assetPrefix is the relative path from a page's directory to the shared
// asset directory, without a trailing slash.
func assetPrefix(outputRel, assetsRel string) string {
	return strings.TrimSuffix(relHref(outputRel, assetsRel), "/")
}

// homeHref is the relative path from a page's directory to the generated
// home page, derived from the configured home document.
func homeHref(outputRel, homeDoc string) string {
	return relHref(outputRel, OutputPathFor(homeDoc))
}

// canonicalURL derives the externally advertised URL for a generated page.
// Directory index pages advertise the directory URL. Empty when no base URL
// is configured.
func canonicalURL(baseURL, outputRel string) string {
	if baseURL == "" {
		return ""
	}
	loc := strings.TrimSuffix(outputRel, "index.html")
	return baseURL + "/" + loc
}
