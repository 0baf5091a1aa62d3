package templatex

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// LayoutTemplate is the entry template every layout set must define.
const LayoutTemplate = "layout"

//go:embed layout.html
var defaultLayoutFS embed.FS

// Engine is a thin wrapper around Go templates with a built-in default layout.
type Engine struct {
	templates *template.Template
}

// Meta holds SEO-oriented metadata for the rendered page.
type Meta struct {
	Description   string
	Keywords      string
	Canonical     string
	OpenGraphType string
	OpenGraphSite string
}

// ResourceLink is an external navigation entry rendered in the page header.
type ResourceLink struct {
	Label string
	URL   string
}

// TOCEntry models a single heading for the page sidebar.
type TOCEntry struct {
	ID    string
	Text  string
	Level int
}

// PageData represents the data model expected by the layout. It is consumed
// exactly once per generated page.
type PageData struct {
	Title       string
	PageTitle   string
	SiteName    string
	TOCHTML     template.HTML
	ContentHTML template.HTML
	AssetPrefix string
	HomeHref    string
	Resources   []ResourceLink
	Meta        Meta
}

// Load instantiates an engine. With an empty templateDir the embedded default
// layout is used; otherwise every *.html file under templateDir is parsed and
// must define the "layout" template.
func Load(templateDir string) (*Engine, error) {
	funcs := template.FuncMap{
		"safeHTML": func(v any) template.HTML {
			switch value := v.(type) {
			case template.HTML:
				return value
			case string:
				return template.HTML(value)
			default:
				return ""
			}
		},
	}

	if templateDir == "" {
		tpl, err := template.New("root").Funcs(funcs).ParseFS(defaultLayoutFS, "layout.html")
		if err != nil {
			return nil, fmt.Errorf("parse embedded layout: %w", err)
		}
		if tpl.Lookup(LayoutTemplate) == nil {
			return nil, fmt.Errorf("embedded layout does not define %q", LayoutTemplate)
		}
		return &Engine{templates: tpl}, nil
	}

	pattern := filepath.Join(templateDir, "*.html")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", templateDir)
	}
	sort.Strings(files)

	tpl, err := template.New("root").Funcs(funcs).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if tpl.Lookup(LayoutTemplate) == nil {
		return nil, fmt.Errorf("template %q is not defined", LayoutTemplate)
	}
	return &Engine{templates: tpl}, nil
}

// Render writes the rendered layout into the provided writer.
func (e *Engine) Render(w io.Writer, data *PageData) error {
	if e.templates == nil {
		return fmt.Errorf("template engine not initialized")
	}
	if data != nil && strings.TrimSpace(data.PageTitle) == "" {
		data.PageTitle = data.Title
	}
	return e.templates.ExecuteTemplate(w, LayoutTemplate, data)
}
