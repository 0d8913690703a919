package features

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/scan"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func walk(t *testing.T, root string) *scan.Tree {
	t.Helper()
	tree, err := scan.Walk(root, filetype.NewFilter(root, filetype.FilterOptions{}), scan.Options{})
	require.NoError(t, err)
	return tree
}

func TestHistogramKey(t *testing.T) {
	tests := map[string]string{
		"main.PY":          ".py",
		"README.md":        "readme",
		"requirements.txt": "requirements",
		"LICENSE":          "license",
		"Makefile":         "makefile",
		".gitignore":       ".gitignore",
		"notes.txt":        ".txt",
	}
	for name, want := range tests {
		assert.Equal(t, want, HistogramKey(name), name)
	}
}

func TestExtract(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "a.py"), "a = 1\n")
	writeFile(t, filepath.Join(root, "src", "b.py"), "b = 2\n")
	writeFile(t, filepath.Join(root, "Docs", "guide.md"), "# guide\n")
	writeFile(t, filepath.Join(root, "docs", "api", "ref.md"), "# ref\n")
	writeFile(t, filepath.Join(root, "assets", "logo.png"), "png")
	writeFile(t, filepath.Join(root, "README.md"), "# readme\n")
	writeFile(t, filepath.Join(root, "Makefile"), "all:\n")
	writeFile(t, filepath.Join(root, ".gitignore"), "*.tmp\n")
	writeFile(t, filepath.Join(root, "scratch.tmp"), "skip me")

	fs := Extract(walk(t, root))

	assert.Equal(t, 8, fs.TotalFiles)
	assert.Equal(t, 2, fs.CodeCount)
	assert.Equal(t, 3, fs.TextCount)
	assert.Equal(t, 1, fs.ImageCount)
	assert.Equal(t, map[string]int{
		".py":        2,
		".md":        2,
		".png":       1,
		"readme":     1,
		"makefile":   1,
		".gitignore": 1,
	}, fs.ExtensionHistogram)
	assert.Equal(t, map[string]int{
		"src":    1,
		"docs":   2,
		"api":    1,
		"assets": 1,
	}, fs.FolderHistogram)
	assert.Equal(t, 3, fs.CategoriesPresent())
}

func TestExtractEmpty(t *testing.T) {
	fs := Extract(walk(t, t.TempDir()))
	assert.Zero(t, fs.TotalFiles)
	assert.Empty(t, fs.ExtensionHistogram)
	assert.Zero(t, fs.CategoriesPresent())
}
