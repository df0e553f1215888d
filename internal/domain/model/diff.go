// Package model defines the domain types shared across the review pipeline.
package model

// LineKind classifies a single line within a diff hunk.
type LineKind string

const (
	LineContext  LineKind = "context"
	LineAddition LineKind = "addition"
	LineDeletion LineKind = "deletion"
)

// Line is one line of a diff hunk. Content keeps the raw text including the
// leading "+", "-", or " " prefix. A line number of 0 means the side does not
// apply: additions have no OldNumber, deletions have no NewNumber.
type Line struct {
	Kind      LineKind
	Content   string
	OldNumber int
	NewNumber int
}

// Hunk is one contiguous block of changes within a file's diff. Header keeps
// the raw "@@ -a,b +c,d @@ ..." line as it appeared in the diff. A hunk is
// never mutated after parsing.
type Hunk struct {
	Header   string
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []Line
}

// File is one file entry of a unified diff. Path is the new-side (target)
// path; it is empty when the diff target is /dev/null, i.e. the file was
// deleted. OldPath is the old-side path, empty for newly added files.
type File struct {
	Path    string
	OldPath string
	Hunks   []Hunk
}

// IsDeleted reports whether the file was removed in this diff. Deleted files
// are never analyzed.
func (f File) IsDeleted() bool {
	return f.Path == ""
}
