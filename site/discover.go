package site

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ListMarkdown enumerates markdown files under srcDir, excluding the assets
// subtree and hidden directories. Paths are returned in slash form relative
// to srcDir, sorted lexicographically so build ordering is stable.
func ListMarkdown(srcDir, assetsRel string) ([]string, error) {
	assetsRel = filepath.ToSlash(strings.Trim(assetsRel, "/"))

	files := make([]string, 0, 32)
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		slash := filepath.ToSlash(rel)
		if d.IsDir() {
			if isIgnorable(slash) || isAssetPath(slash, assetsRel) {
				return filepath.SkipDir
			}
			return nil
		}
		if isIgnorable(slash) || isAssetPath(slash, assetsRel) {
			return nil
		}
		if isMarkdown(slash) {
			files = append(files, slash)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func isAssetPath(rel, assetsRel string) bool {
	if assetsRel == "" {
		return false
	}
	return rel == assetsRel || strings.HasPrefix(rel, assetsRel+"/")
}

func isIgnorable(rel string) bool {
	base := filepath.Base(rel)
	return strings.HasPrefix(base, ".")
}

func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
