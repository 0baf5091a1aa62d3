package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteLinks_RelativeMarkdownTarget(t *testing.T) {
	body := []byte(`<p><a href="foo/bar.md">doc</a></p>`)

	out, err := RewriteLinks(body)
	require.NoError(t, err)
	assert.Contains(t, string(out), `href="foo/bar.html"`)
	assert.NotContains(t, string(out), ".md")
}

func TestRewriteLinks_LeavesNonInternalTargets(t *testing.T) {
	tests := []struct {
		name string
		href string
	}{
		{"external http", "https://x.com/a.md"},
		{"plain http", "http://example.org/readme.md"},
		{"fragment", "#anchor"},
		{"mailto", "mailto:a@b.com"},
		{"non-markdown", "image.png"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := []byte(`<p><a href="` + tc.href + `">x</a></p>`)
			out, err := RewriteLinks(body)
			require.NoError(t, err)
			assert.Contains(t, string(out), `href="`+tc.href+`"`)
		})
	}
}

func TestRewriteLinks_NestedAnchors(t *testing.T) {
	body := []byte(`<ul><li><a href="one.md">one</a></li><li><em><a href="sub/two.md">two</a></em></li></ul>`)

	out, err := RewriteLinks(body)
	require.NoError(t, err)
	assert.Contains(t, string(out), `href="one.html"`)
	assert.Contains(t, string(out), `href="sub/two.html"`)
}

func TestRewriteLinks_AnchorWithoutHref(t *testing.T) {
	body := []byte(`<p><a name="target">x</a></p>`)

	out, err := RewriteLinks(body)
	require.NoError(t, err)
	assert.Contains(t, string(out), `name="target"`)
}

func TestRewriteLinks_StableAcrossRepeatedRuns(t *testing.T) {
	body := []byte(`<h2 id="setup">Setup</h2><p>Read <a href="guide.md">the guide</a>.</p>`)

	once, err := RewriteLinks(body)
	require.NoError(t, err)
	twice, err := RewriteLinks(once)
	require.NoError(t, err)
	assert.Equal(t, string(once), string(twice))
}
