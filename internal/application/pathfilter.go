package application

import (
	"path"
	"strings"

	"github.com/reviewloop/reviewloop/internal/domain/model"
)

// ExcludeFiles removes every file whose path matches one of the glob
// patterns. Exclusion is whole-file: a matched file contributes none of its
// hunks to the review.
func ExcludeFiles(files []model.File, patterns []string) []model.File {
	if len(patterns) == 0 {
		return files
	}
	kept := []model.File{}
	for _, f := range files {
		if matchesAny(f.Path, patterns) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// SplitPatterns parses a comma-separated exclusion list into individual glob
// patterns, trimming whitespace and dropping empty entries.
func SplitPatterns(csv string) []string {
	patterns := []string{}
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// matchesAny reports whether filePath matches any of the glob patterns.
// Matching uses path.Match semantics; an invalid pattern matches nothing.
// Deleted files have an empty path, which only an empty or catch-all
// pattern can match, so exclusion patterns effectively never apply to them.
func matchesAny(filePath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, filePath); err == nil && ok {
			return true
		}
	}
	return false
}
