package application

import (
	"strconv"

	"github.com/reviewloop/reviewloop/internal/domain/model"
)

// MapComments pairs model suggestions with the file they were produced for,
// yielding line-anchored review comments. Suggestions for files without a
// resolvable path (deletions) are dropped silently. Line numbers are coerced
// from the raw model string; non-numeric values coerce to 0 and are removed
// by the final submission filter rather than rejected here.
func MapComments(file model.File, suggestions []model.Suggestion) []model.ReviewComment {
	if file.Path == "" {
		return nil
	}

	comments := make([]model.ReviewComment, 0, len(suggestions))
	for _, s := range suggestions {
		line, err := strconv.Atoi(s.LineNumber)
		if err != nil {
			line = 0
		}
		comments = append(comments, model.ReviewComment{
			Path: file.Path,
			Line: line,
			Body: s.ReviewComment,
		})
	}
	return comments
}

// FilterSubmittable keeps only comments that satisfy the submission
// invariants: a non-empty path and a positive line number.
func FilterSubmittable(comments []model.ReviewComment) []model.ReviewComment {
	kept := []model.ReviewComment{}
	for _, c := range comments {
		if c.Path != "" && c.Line > 0 {
			kept = append(kept, c)
		}
	}
	return kept
}
