package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessTitle_FirstTopLevelHeading(t *testing.T) {
	raw := "intro line\n\n# Guide\n\n## Setup\n"
	assert.Equal(t, "Guide", GuessTitle(raw, "guide.md"))
}

func TestGuessTitle_TrimsHeadingWhitespace(t *testing.T) {
	assert.Equal(t, "Guide", GuessTitle("#   Guide  \n", "guide.md"))
}

func TestGuessTitle_IgnoresDeeperHeadings(t *testing.T) {
	raw := "## Setup\n\nBody.\n"
	assert.Equal(t, "Getting Started", GuessTitle(raw, "docs/getting-started.md"))
}

func TestGuessTitle_FilenameFallback(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"getting-started.md", "Getting Started"},
		{"api_reference.md", "Api Reference"},
		{"deep/nested/release-notes.md", "Release Notes"},
		{"index.md", "Index"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, GuessTitle("no headings here\n", tc.rel), tc.rel)
	}
}

func TestGuessTitle_SkipsFrontMatter(t *testing.T) {
	raw := "---\ntitle: ignored\n---\n# Real Title\n"
	assert.Equal(t, "Real Title", GuessTitle(raw, "page.md"))
}

func TestGuessDescription_FirstParagraph(t *testing.T) {
	raw := "# Guide\n\nIntro text.\n\n## Setup\n\nMore text.\n"
	assert.Equal(t, "Intro text.", GuessDescription(raw, "Guide"))
}

func TestGuessDescription_CollapsesNewlines(t *testing.T) {
	raw := "# Guide\n\nFirst line\nsecond line\nthird line.\n\nNext paragraph.\n"
	assert.Equal(t, "First line second line third line.", GuessDescription(raw, "Guide"))
}

func TestGuessDescription_SkipsHeadingBlocks(t *testing.T) {
	raw := "# Guide\n## Setup\n\nActual prose.\n"
	assert.Equal(t, "Actual prose.", GuessDescription(raw, "Guide"))
}

func TestGuessDescription_FallsBackToTitle(t *testing.T) {
	assert.Equal(t, "Guide", GuessDescription("# Guide\n", "Guide"))
	assert.Equal(t, "Guide", GuessDescription("", "Guide"))
}

func TestGuessKeywords_HeadingsInDocumentOrder(t *testing.T) {
	raw := "# Guide\n\ntext\n\n## Setup\n\n### Details\n\n## Usage\n"
	assert.Equal(t, "Guide, Setup, Details, Usage", GuessKeywords(raw))
}

func TestGuessKeywords_StripsMarkersAndWhitespace(t *testing.T) {
	raw := "##   Padded Heading   \n"
	assert.Equal(t, "Padded Heading", GuessKeywords(raw))
}

func TestGuessKeywords_CappedAtTen(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString("# H")
		sb.WriteByte(byte('a' + i))
		sb.WriteString("\n")
	}
	keywords := GuessKeywords(sb.String())
	assert.Len(t, strings.Split(keywords, ", "), 10)
	assert.True(t, strings.HasPrefix(keywords, "Ha, Hb"))
}

func TestGuessKeywords_NoHeadings(t *testing.T) {
	assert.Equal(t, "", GuessKeywords("plain text only\n"))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "", summarize(""))
	assert.Equal(t, "", summarize("  \n\t"))
	assert.Equal(t, "Short excerpt.", summarize("  Short excerpt.\n"))

	long := strings.Repeat("x", 250)
	got := summarize(long)
	assert.Len(t, got, 203)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, strings.Repeat("x", 200), got[:200])
}

func TestStripFrontMatter(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"none", "# Title\n", "# Title\n"},
		{"simple", "---\nkey: value\n---\n# Title\n", "# Title\n"},
		{"empty block", "---\n---\n# Title\n", "# Title\n"},
		{"dashes mid-document survive", "# Title\n\n---\n\ntext\n", "# Title\n\n---\n\ntext\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripFrontMatter(tc.raw))
		})
	}
}
