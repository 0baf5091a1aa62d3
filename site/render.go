package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkdocsite/mkdocsite/renderer"
	"github.com/mkdocsite/mkdocsite/templatex"
)

// pageData builds the render context consumed once by the layout template.
// Asset and home links are relative to the page's own directory so the
// generated tree works from any base path.
func (s *Service) pageData(pg page) *templatex.PageData {
	resources := make([]templatex.ResourceLink, 0, len(s.cfg.Resources))
	for _, res := range s.cfg.Resources {
		resources = append(resources, templatex.ResourceLink{Label: res.Label, URL: res.URL})
	}

	return &templatex.PageData{
		Title:       pg.Title,
		PageTitle:   s.pageTitle(pg.Title),
		SiteName:    s.cfg.SiteName,
		TOCHTML:     pg.TOC,
		ContentHTML: pg.HTML,
		AssetPrefix: assetPrefix(pg.OutputPath, s.cfg.AssetsDir),
		HomeHref:    homeHref(pg.OutputPath, s.cfg.HomeDoc),
		Resources:   resources,
		Meta: templatex.Meta{
			Description:   pg.Description,
			Keywords:      pg.Keywords,
			Canonical:     canonicalURL(s.cfg.BaseURL, pg.OutputPath),
			OpenGraphType: "article",
			OpenGraphSite: s.cfg.SiteName,
		},
	}
}

func (s *Service) renderPage(pg page) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.templates.Render(&buf, s.pageData(pg)); err != nil {
		return nil, fmt.Errorf("render %s: %w", pg.Rel, err)
	}
	if !s.cfg.Minify {
		return buf.Bytes(), nil
	}
	minified, err := renderer.MinifyHTML(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minify %s: %w", pg.Rel, err)
	}
	return minified, nil
}

func (s *Service) writePage(pg page) (string, error) {
	document, err := s.renderPage(pg)
	if err != nil {
		return "", err
	}
	target := filepath.Join(s.cfg.OutputDir, filepath.FromSlash(pg.OutputPath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, document, 0o644); err != nil {
		return "", err
	}
	return target, nil
}

func (s *Service) pageTitle(raw string) string {
	title := strings.TrimSpace(raw)
	name := s.cfg.SiteName
	if title == "" {
		return name
	}
	if name == "" {
		return title
	}
	return fmt.Sprintf("%s - %s", title, name)
}
