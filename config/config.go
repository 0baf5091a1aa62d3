package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resource is an external link shown in the site navigation bar.
type Resource struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Config encapsulates build-time options.
type Config struct {
	SourceDir   string     `json:"sourceDir"`
	OutputDir   string     `json:"outputDir"`
	AssetsDir   string     `json:"assetsDir"`
	TemplateDir string     `json:"templateDir"`
	BaseURL     string     `json:"baseUrl"`
	SiteName    string     `json:"siteName"`
	HomeDoc     string     `json:"homeDoc"`
	TOCDepth    int        `json:"tocDepth"`
	Minify      bool       `json:"minify"`
	LogLevel    string     `json:"logLevel"`
	Resources   []Resource `json:"resources"`
}

// Load reads configuration from disk and applies sane defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a configuration populated with defaults only, for callers
// that build a site without a configuration file.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults normalizes unset or blank fields.
func (c *Config) ApplyDefaults() {
	c.SourceDir = strings.TrimSpace(c.SourceDir)
	if c.SourceDir == "" {
		c.SourceDir = "./docs"
	}
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "./dist"
	}
	c.AssetsDir = normalizeAssetsDir(c.AssetsDir)
	c.TemplateDir = strings.TrimSpace(c.TemplateDir)

	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")

	c.SiteName = strings.TrimSpace(c.SiteName)
	if c.SiteName == "" {
		c.SiteName = "Documentation"
	}

	c.HomeDoc = normalizeHomeDoc(c.HomeDoc)

	if c.TOCDepth <= 0 {
		c.TOCDepth = 3
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate rejects configurations the build cannot act on.
func (c *Config) Validate() error {
	info, err := os.Stat(c.SourceDir)
	if err != nil {
		return fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path %q is not a directory", c.SourceDir)
	}
	if c.BaseURL != "" {
		parsed, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("base URL %q must be absolute", c.BaseURL)
		}
	}
	for i, res := range c.Resources {
		if strings.TrimSpace(res.Label) == "" {
			return fmt.Errorf("resource %d has an empty label", i)
		}
		if strings.TrimSpace(res.URL) == "" {
			return fmt.Errorf("resource %q has an empty url", res.Label)
		}
		if _, err := url.ParseRequestURI(strings.TrimSpace(res.URL)); err != nil {
			return fmt.Errorf("resource %q: %w", res.Label, err)
		}
	}
	return nil
}

// AssetsSourceDir reports the path of the assets subtree under the source root.
func (c *Config) AssetsSourceDir() string {
	return filepath.Join(c.SourceDir, filepath.FromSlash(c.AssetsDir))
}

// AssetsOutputDir reports where the assets subtree lands under the output root.
func (c *Config) AssetsOutputDir() string {
	return filepath.Join(c.OutputDir, filepath.FromSlash(c.AssetsDir))
}

func normalizeAssetsDir(input string) string {
	trimmed := strings.TrimSpace(strings.ReplaceAll(input, "\\", "/"))
	trimmed = strings.Trim(trimmed, "/")
	if trimmed == "" {
		return "assets"
	}
	cleaned := path.Clean(trimmed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "assets"
	}
	return cleaned
}

func normalizeHomeDoc(input string) string {
	trimmed := strings.TrimSpace(strings.ReplaceAll(input, "\\", "/"))
	if trimmed == "" {
		trimmed = "index.md"
	}
	if !strings.HasSuffix(strings.ToLower(trimmed), ".md") {
		trimmed += ".md"
	}
	cleaned := path.Clean(trimmed)
	for strings.HasPrefix(cleaned, "./") {
		cleaned = strings.TrimPrefix(cleaned, "./")
	}
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		cleaned = "index.md"
	}
	return filepath.ToSlash(cleaned)
}
