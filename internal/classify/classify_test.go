package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianshen/projinsight/internal/features"
	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/scan"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func extract(t *testing.T, root string) features.FeatureSet {
	t.Helper()
	tree, err := scan.Walk(root, filetype.NewFilter(root, filetype.FilterOptions{}), scan.Options{})
	require.NoError(t, err)
	return features.Extract(tree)
}

func TestClassifyPythonProjectIsCoding(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		writeFile(t, filepath.Join(root, name+".py"), "x = 1\n")
	}
	writeFile(t, filepath.Join(root, "requirements.txt"), "flask\n")

	res := New(DefaultOptions()).Classify(extract(t, root))

	assert.Equal(t, LabelCoding, res.Label)
	assert.Greater(t, res.Confidence, 0.8)
	assert.Greater(t, res.Scores.Code, res.Scores.Text)
}

func TestClassifyCodeAndDocsIsMixed(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		writeFile(t, filepath.Join(root, "src", name+".go"), "package x\n")
		writeFile(t, filepath.Join(root, "docs", name+".md"), "# doc\n")
	}

	res := New(DefaultOptions()).Classify(extract(t, root))

	assert.Equal(t, "mixed:coding+writing", res.Label)
	assert.True(t, res.IsMixed())
}

func TestClassifyTooFewFiles(t *testing.T) {
	fs := features.FeatureSet{
		TotalFiles:         1,
		CodeCount:          1,
		ExtensionHistogram: map[string]int{".py": 1},
		FolderHistogram:    map[string]int{},
	}

	res := New(DefaultOptions()).Classify(fs)

	assert.Equal(t, LabelUnknown, res.Label)
	assert.False(t, res.IsMixed())
	assert.Zero(t, res.Scores)
}

func TestClassifyNoKnownCategory(t *testing.T) {
	fs := features.FeatureSet{
		TotalFiles:         3,
		ExtensionHistogram: map[string]int{".bin": 3},
		FolderHistogram:    map[string]int{},
	}

	res := New(DefaultOptions()).Classify(fs)

	assert.Equal(t, LabelUnknown, res.Label)
	assert.InDelta(t, 0.15, res.Confidence, 1e-9)
}

func TestClassifyMixedClauses(t *testing.T) {
	tests := []struct {
		name string
		fs   features.FeatureSet
		want string
	}{
		{
			// Only code files exist, so the shared-work clause cannot fire;
			// the folder and readme bonuses still make the race close.
			name: "close race with a single file type",
			fs: features.FeatureSet{
				TotalFiles:         10,
				CodeCount:          3,
				ExtensionHistogram: map[string]int{".py": 3, "readme": 1, ".bin": 6},
				FolderHistogram:    map[string]int{"docs": 1},
			},
			want: "mixed:writing+coding",
		},
		{
			name: "shared work with a wide margin",
			fs: features.FeatureSet{
				TotalFiles:         10,
				CodeCount:          5,
				TextCount:          5,
				ExtensionHistogram: map[string]int{".py": 5, ".txt": 5},
				FolderHistogram:    map[string]int{"src": 1, "docs": 1},
			},
			want: "mixed:coding+writing",
		},
		{
			name: "two types but a dominant one",
			fs: features.FeatureSet{
				TotalFiles:         10,
				CodeCount:          8,
				TextCount:          2,
				ExtensionHistogram: map[string]int{".py": 8, ".txt": 2},
				FolderHistogram:    map[string]int{},
			},
			want: LabelCoding,
		},
		{
			name: "art only",
			fs: features.FeatureSet{
				TotalFiles:         6,
				ImageCount:         6,
				ExtensionHistogram: map[string]int{".png": 6},
				FolderHistogram:    map[string]int{"renders": 1},
			},
			want: LabelArt,
		},
	}

	c := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.fs).Label)
		})
	}
}

func TestClassifyTiesKeepCategoryOrder(t *testing.T) {
	fs := features.FeatureSet{
		TotalFiles:         4,
		CodeCount:          2,
		ImageCount:         2,
		ExtensionHistogram: map[string]int{".py": 2, ".png": 2},
		FolderHistogram:    map[string]int{"src": 1, "images": 1},
	}
	opts := DefaultOptions()
	opts.ImageWeight = opts.CodeWeight

	res := New(opts).Classify(fs)

	assert.Equal(t, res.Scores.Code, res.Scores.Image)
	assert.Equal(t, "mixed:coding+art", res.Label)
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name string
		fs   features.FeatureSet
		want float64
	}{
		{"no files", features.FeatureSet{}, 0},
		{"single code file", features.FeatureSet{TotalFiles: 1, CodeCount: 1}, 0.85},
		{"capped file boost", features.FeatureSet{TotalFiles: 10, CodeCount: 5, TextCount: 5}, 0.6},
		{"never above one", features.FeatureSet{TotalFiles: 100, CodeCount: 100}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Confidence(tt.fs), 1e-9)
		})
	}
}
