package site

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkdocsite/mkdocsite/config"
	"github.com/mkdocsite/mkdocsite/fsutil"
	"github.com/mkdocsite/mkdocsite/renderer"
	"github.com/mkdocsite/mkdocsite/templatex"
)

// Service orchestrates the whole build: asset mirroring, discovery, page
// conversion, and output writing.
type Service struct {
	cfg       *config.Config
	templates *templatex.Engine
	renderer  *renderer.Renderer
	logger    *slog.Logger
}

// NewService constructs a Service instance.
func NewService(cfg *config.Config, templates *templatex.Engine, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return &Service{
		cfg:       cfg,
		templates: templates,
		renderer:  renderer.New(),
		logger:    logger,
	}
}

// Build renders the entire source tree into the output directory. Pages are
// processed in sorted order, one at a time; the first failure aborts the
// build and leaves already-written output in place.
func (s *Service) Build() error {
	files, err := ListMarkdown(s.cfg.SourceDir, s.cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("discover markdown: %w", err)
	}

	// Output paths are pure functions of the source paths, so collisions are
	// detected up front before anything is converted or written.
	seen := make(map[string]string, len(files))
	for _, rel := range files {
		out := OutputPathFor(rel)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%w: %s and %s both map to %s", ErrOutputCollision, prev, rel, out)
		}
		seen[out] = rel
	}

	if err := s.copyAssets(); err != nil {
		return err
	}

	pages := make([]page, 0, len(files))
	for _, rel := range files {
		pg, err := s.buildPage(rel)
		if err != nil {
			return err
		}

		target, err := s.writePage(pg)
		if err != nil {
			return err
		}
		s.logger.Info("wrote", "path", target)
		pages = append(pages, pg)
	}

	if err := s.writeManifest(pages); err != nil {
		return err
	}
	if err := s.writeSitemap(pages); err != nil {
		return err
	}

	s.logger.Info("build completed", "pages", len(pages), "output", s.cfg.OutputDir)
	return nil
}

// buildPage converts one markdown file into a fully derived page.
func (s *Service) buildPage(rel string) (page, error) {
	src := filepath.Join(s.cfg.SourceDir, filepath.FromSlash(rel))
	data, err := os.ReadFile(src)
	if err != nil {
		return page{}, fmt.Errorf("read %s: %w", rel, err)
	}

	converted, err := s.renderer.Render(data)
	if err != nil {
		return page{}, fmt.Errorf("convert %s: %w", rel, err)
	}

	body, err := RewriteLinks(converted.HTML)
	if err != nil {
		return page{}, fmt.Errorf("rewrite links %s: %w", rel, err)
	}

	raw := string(data)
	title := GuessTitle(raw, rel)
	if override := metaString(converted.Meta, "title"); override != "" {
		title = override
	}
	description := GuessDescription(raw, title)
	if override := metaString(converted.Meta, "description"); override != "" {
		description = override
	}
	keywords := GuessKeywords(raw)
	if override := metaString(converted.Meta, "keywords"); override != "" {
		keywords = override
	}

	return page{
		Source:      src,
		Rel:         rel,
		OutputPath:  OutputPathFor(rel),
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Summary:     summarize(converted.PlainText),
		HTML:        template.HTML(body),
		TOC:         BuildTOC(converted.Headings, s.cfg.TOCDepth),
	}, nil
}

// copyAssets mirrors the assets subtree into the output root. A missing
// assets subtree is not an error; the directory is still created so asset
// links have a target.
func (s *Service) copyAssets() error {
	if err := os.MkdirAll(s.cfg.AssetsOutputDir(), 0o755); err != nil {
		return fmt.Errorf("create assets dir: %w", err)
	}
	src := s.cfg.AssetsSourceDir()
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat assets: %w", err)
	}
	if !info.IsDir() {
		return nil
	}
	copied, err := fsutil.CopyTree(src, s.cfg.AssetsOutputDir(), nil)
	if err != nil {
		return fmt.Errorf("copy assets: %w", err)
	}
	s.logger.Info("copied assets", "files", copied)
	return nil
}

func (s *Service) writeManifest(pages []page) error {
	payload, err := buildManifest(pages)
	if err != nil {
		return err
	}
	target := filepath.Join(s.cfg.OutputDir, "pages.json")
	if err := os.WriteFile(target, payload, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	s.logger.Info("wrote", "path", target)
	return nil
}

func (s *Service) writeSitemap(pages []page) error {
	payload, err := buildSitemap(s.cfg.BaseURL, pages)
	if err != nil {
		return err
	}
	if payload == nil {
		return nil
	}
	target := filepath.Join(s.cfg.OutputDir, "sitemap.xml")
	if err := os.WriteFile(target, payload, 0o644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	s.logger.Info("wrote", "path", target)
	return nil
}

// metaString coerces a front matter value into a display string. Lists are
// joined with commas so a keywords list round-trips into the meta tag form.
func metaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	switch v := meta[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}
