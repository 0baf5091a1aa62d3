package site

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxKeywords = 10

var titleCaser = cases.Title(language.English)

// GuessTitle returns the text of the first level-1 heading line in raw
// markdown, or a title derived from the file name when no such heading exists.
func GuessTitle(raw, relPath string) string {
	for _, line := range strings.Split(stripFrontMatter(raw), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return titleFromPath(relPath)
}

// GuessDescription returns the first blank-line-delimited paragraph that is
// not a heading, with internal newlines collapsed to single spaces. Documents
// with no such paragraph fall back to the provided title.
func GuessDescription(raw, fallback string) string {
	for _, block := range splitParagraphs(stripFrontMatter(raw)) {
		if strings.HasPrefix(block[0], "#") {
			continue
		}
		return strings.Join(block, " ")
	}
	return fallback
}

// GuessKeywords returns a comma-separated list of heading texts of any level,
// in document order, capped at the first ten.
func GuessKeywords(raw string) string {
	keywords := make([]string, 0, maxKeywords)
	for _, line := range strings.Split(stripFrontMatter(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		text := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		if text == "" {
			continue
		}
		keywords = append(keywords, text)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return strings.Join(keywords, ", ")
}

// summarize trims rendered plain text into a short excerpt for the build
// manifest.
func summarize(plain string) string {
	plain = strings.TrimSpace(plain)
	if plain == "" {
		return ""
	}
	if len(plain) <= 200 {
		return plain
	}
	return plain[:200] + "..."
}

func titleFromPath(relPath string) string {
	name := strings.TrimSuffix(filepath.Base(relPath), filepath.Ext(relPath))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "Untitled"
	}
	return titleCaser.String(name)
}

// splitParagraphs groups consecutive non-blank lines into blocks of trimmed
// lines. Blank lines delimit blocks and never appear in the output.
func splitParagraphs(raw string) [][]string {
	blocks := make([][]string, 0, 8)
	var current []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, trimmed)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// stripFrontMatter removes a leading YAML front matter fence so metadata
// scanning only sees document text.
func stripFrontMatter(raw string) string {
	rest, ok := strings.CutPrefix(raw, "---\n")
	if !ok {
		if rest, ok = strings.CutPrefix(raw, "---\r\n"); !ok {
			return raw
		}
	}
	if after, ok := strings.CutPrefix(rest, "---\n"); ok {
		return after
	}
	if after, ok := strings.CutPrefix(rest, "---\r\n"); ok {
		return after
	}
	for _, marker := range []string{"\n---\n", "\n---\r\n"} {
		if idx := strings.Index(rest, marker); idx >= 0 {
			return rest[idx+len(marker):]
		}
	}
	return raw
}
