package site

import "html/template"

// page is one discovered markdown source and everything derived from it.
// Built once per file, written once, then discarded.
type page struct {
	Source      string // path of the markdown file on disk
	Rel         string // slash path relative to the source root
	OutputPath  string // slash path of the generated file relative to the output root
	Title       string
	Description string
	Keywords    string
	Summary     string // plain-text excerpt for the build manifest
	HTML        template.HTML
	TOC         template.HTML
}
