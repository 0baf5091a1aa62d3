package site

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteLinks rewrites intra-site anchors in a rendered body fragment so
// links to markdown sources resolve against the generated HTML tree.
// External, fragment, and mail links pass through untouched.
func RewriteLinks(body []byte) ([]byte, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(body), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}

	var buf bytes.Buffer
	for _, node := range nodes {
		rewriteAnchors(node)
		if err := html.Render(&buf, node); err != nil {
			return nil, fmt.Errorf("render body: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func rewriteAnchors(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rewritten, ok := rewriteHref(attr.Val); ok {
				n.Attr[i].Val = rewritten
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteAnchors(c)
	}
}

func rewriteHref(href string) (string, bool) {
	if href == "" {
		return "", false
	}
	if strings.HasPrefix(href, "http") || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto") {
		return "", false
	}
	if !strings.HasSuffix(href, ".md") {
		return "", false
	}
	return strings.TrimSuffix(href, ".md") + ".html", true
}
