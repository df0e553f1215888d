package application

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/reviewloop/reviewloop/internal/domain/model"
)

// hunkHeaderPattern matches "@@ -oldStart[,oldLen] +newStart[,newLen] @@".
var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// devNull marks an absent side of a file entry in a unified diff.
const devNull = "/dev/null"

// ParseDiff turns raw unified-diff text into an ordered list of files with
// their hunks and numbered lines. An empty or whitespace-only diff means
// "nothing to review" and yields an empty list with a nil error; a non-nil
// error is only returned for structurally broken input such as a malformed
// hunk header. Parsing is pure: the same input always produces a
// structurally identical result.
func ParseDiff(text string) ([]model.File, error) {
	if strings.TrimSpace(text) == "" {
		return []model.File{}, nil
	}

	files := []model.File{}
	var file *model.File
	var hunk *model.Hunk
	oldLine, newLine := 0, 0

	flushHunk := func() {
		if hunk != nil && file != nil {
			file.Hunks = append(file.Hunks, *hunk)
		}
		hunk = nil
	}
	flushFile := func() {
		flushHunk()
		if file != nil {
			files = append(files, *file)
		}
		file = nil
	}

	// A trailing newline is a line terminator, not an empty trailing line.
	for _, raw := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(raw, "diff --git "):
			flushFile()
			file = &model.File{}

		// The hunk == nil guard keeps deletion lines whose content begins
		// with "--" (or additions with "++") from being read as headers.
		case hunk == nil && strings.HasPrefix(raw, "--- "):
			if file == nil {
				file = &model.File{}
			}
			file.OldPath = stripPathPrefix(strings.TrimPrefix(raw, "--- "))

		case hunk == nil && strings.HasPrefix(raw, "+++ "):
			if file == nil {
				file = &model.File{}
			}
			file.Path = stripPathPrefix(strings.TrimPrefix(raw, "+++ "))

		case strings.HasPrefix(raw, "@@"):
			m := hunkHeaderPattern.FindStringSubmatch(raw)
			if m == nil {
				return nil, fmt.Errorf("malformed hunk header %q", raw)
			}
			flushHunk()
			hunk = &model.Hunk{
				Header:   raw,
				OldStart: atoiDefault(m[1], 0),
				OldLines: atoiDefault(m[2], 1),
				NewStart: atoiDefault(m[3], 0),
				NewLines: atoiDefault(m[4], 1),
			}
			oldLine = hunk.OldStart
			newLine = hunk.NewStart

		case hunk == nil:
			// File metadata (index, mode, rename, binary markers) between
			// the file header and the first hunk.

		case strings.HasPrefix(raw, "\\"):
			// "\ No newline at end of file"

		case strings.HasPrefix(raw, "+"):
			hunk.Lines = append(hunk.Lines, model.Line{
				Kind:      model.LineAddition,
				Content:   raw,
				NewNumber: newLine,
			})
			newLine++

		case strings.HasPrefix(raw, "-"):
			hunk.Lines = append(hunk.Lines, model.Line{
				Kind:      model.LineDeletion,
				Content:   raw,
				OldNumber: oldLine,
			})
			oldLine++

		default:
			// Context lines carry a leading space; a fully empty line is an
			// empty context line that some tools emit without the prefix.
			hunk.Lines = append(hunk.Lines, model.Line{
				Kind:      model.LineContext,
				Content:   raw,
				OldNumber: oldLine,
				NewNumber: newLine,
			})
			oldLine++
			newLine++
		}
	}
	flushFile()

	return files, nil
}

// stripPathPrefix normalizes a diff header path: the conventional "a/" or
// "b/" prefix is removed and /dev/null maps to the empty string, which marks
// the side as absent.
func stripPathPrefix(p string) string {
	p = strings.TrimSpace(p)
	if p == devNull {
		return ""
	}
	if strings.HasPrefix(p, "a/") || strings.HasPrefix(p, "b/") {
		return p[2:]
	}
	return p
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
