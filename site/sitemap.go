package site

import (
	"encoding/xml"
	"fmt"
)

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// buildSitemap produces sitemap.xml from the canonical URLs of all pages.
// Returns nil when no base URL is configured, in which case canonical
// locations cannot be advertised.
func buildSitemap(baseURL string, pages []page) ([]byte, error) {
	if baseURL == "" {
		return nil, nil
	}
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(pages)),
	}
	for _, pg := range pages {
		set.URLs = append(set.URLs, sitemapURL{Loc: canonicalURL(baseURL, pg.OutputPath)})
	}
	payload, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(payload, '\n')...), nil
}
