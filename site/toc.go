package site

import (
	"html/template"
	"strings"

	"github.com/mkdocsite/mkdocsite/renderer"
)

// BuildTOC renders the table-of-contents fragment for a page from its
// extracted headings. Headings deeper than maxDepth are dropped; a page
// without eligible headings yields an empty fragment.
func BuildTOC(headings []renderer.Heading, maxDepth int) template.HTML {
	eligible := make([]renderer.Heading, 0, len(headings))
	for _, h := range headings {
		if h.Level <= maxDepth {
			eligible = append(eligible, h)
		}
	}
	if len(eligible) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<nav class="toc">`)

	// Stack of heading levels with an open list; each nested list lives
	// inside the previous entry's <li>.
	stack := make([]int, 0, 4)
	for _, h := range eligible {
		if len(stack) == 0 {
			sb.WriteString(`<ul class="list-unstyled">`)
			stack = append(stack, h.Level)
		} else if h.Level > stack[len(stack)-1] {
			sb.WriteString(`<ul class="list-unstyled">`)
			stack = append(stack, h.Level)
		} else {
			sb.WriteString(`</li>`)
			for len(stack) > 1 && stack[len(stack)-1] > h.Level {
				stack = stack[:len(stack)-1]
				sb.WriteString(`</ul></li>`)
			}
		}
		sb.WriteString(`<li><a class="toc-link" href="#`)
		sb.WriteString(h.ID)
		sb.WriteString(`">`)
		sb.WriteString(template.HTMLEscapeString(h.Text))
		sb.WriteString(`</a>`)
	}
	sb.WriteString(`</li>`)
	for len(stack) > 1 {
		stack = stack[:len(stack)-1]
		sb.WriteString(`</ul></li>`)
	}
	sb.WriteString(`</ul></nav>`)

	return template.HTML(sb.String())
}
