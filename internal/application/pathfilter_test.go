package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewloop/reviewloop/internal/domain/model"
)

func TestSplitPatterns(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "*.md", []string{"*.md"}},
		{"multiple with spaces", " *.md , vendor/* ,*.lock", []string{"*.md", "vendor/*", "*.lock"}},
		{"trailing comma", "*.md,", []string{"*.md"}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPatterns(tt.csv))
		})
	}
}

func TestExcludeFiles(t *testing.T) {
	files := []model.File{
		{Path: "README.md"},
		{Path: "app.ts"},
		{Path: "docs/guide.md"},
	}

	kept := ExcludeFiles(files, []string{"*.md"})
	require.Len(t, kept, 2)
	assert.Equal(t, "app.ts", kept[0].Path)
	// path.Match does not cross "/" boundaries, so docs/guide.md survives *.md.
	assert.Equal(t, "docs/guide.md", kept[1].Path)

	kept = ExcludeFiles(files, []string{"*.md", "docs/*"})
	require.Len(t, kept, 1)
	assert.Equal(t, "app.ts", kept[0].Path)
}

func TestExcludeFiles_NoPatterns(t *testing.T) {
	files := []model.File{{Path: "a.go"}, {Path: "b.go"}}
	assert.Equal(t, files, ExcludeFiles(files, nil))
}

// Deleted files are matched with an empty path, so only an empty or
// catch-all pattern can remove a deletion entry; ordinary globs never do.
func TestExcludeFiles_DeletedFileEmptyPath(t *testing.T) {
	files := []model.File{{Path: ""}, {Path: "app.ts"}}

	kept := ExcludeFiles(files, []string{"*.md"})
	require.Len(t, kept, 2)

	kept = ExcludeFiles(files, []string{""})
	require.Len(t, kept, 1)
	assert.Equal(t, "app.ts", kept[0].Path)

	// "*" matches the empty sequence too, so it is a catch-all.
	kept = ExcludeFiles(files, []string{"*"})
	assert.Empty(t, kept)
}

func TestExcludeFiles_InvalidPatternMatchesNothing(t *testing.T) {
	files := []model.File{{Path: "app.ts"}}
	kept := ExcludeFiles(files, []string{"[unclosed"})
	assert.Equal(t, files, kept)
}
