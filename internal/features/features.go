// Package features turns a scanned boundary into the counts the classifier
// scores: files per category, an extension histogram and a folder-name
// histogram.
package features

import (
	"path"
	"strings"

	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/scan"
)

// signalStems are file stems that key the extension histogram by name
// instead of extension, so README.md and requirements.txt stay visible.
var signalStems = map[string]bool{
	"readme":       true,
	"requirements": true,
	"license":      true,
	"licence":      true,
	"copying":      true,
}

// FeatureSet holds the counted signals of one boundary.
type FeatureSet struct {
	TotalFiles         int            `json:"total_files"`
	CodeCount          int            `json:"code_count"`
	TextCount          int            `json:"text_count"`
	ImageCount         int            `json:"image_count"`
	ExtensionHistogram map[string]int `json:"extension_histogram"`
	FolderHistogram    map[string]int `json:"folder_histogram"`
}

// Extract counts the analyzable files of tree. Skipped files do not count.
func Extract(tree *scan.Tree) FeatureSet {
	fs := FeatureSet{
		ExtensionHistogram: make(map[string]int),
		FolderHistogram:    make(map[string]int),
	}

	for _, f := range tree.Analyzable() {
		fs.TotalFiles++
		switch f.Category {
		case filetype.Code:
			fs.CodeCount++
		case filetype.Content:
			fs.TextCount++
		case filetype.Image:
			fs.ImageCount++
		}
		fs.ExtensionHistogram[HistogramKey(path.Base(f.RelPath))]++
	}

	for _, dir := range tree.Dirs {
		fs.FolderHistogram[strings.ToLower(path.Base(dir))]++
	}
	return fs
}

// HistogramKey returns the extension-histogram key for a file name: the
// signal stem for readme/requirements/license files, the lowercased
// extension otherwise, and the lowercased name when there is no extension.
func HistogramKey(name string) string {
	lower := strings.ToLower(name)
	ext := filetype.Ext(lower)
	stem := strings.TrimSuffix(lower, ext)
	if signalStems[stem] {
		return stem
	}
	if ext == "" || ext == lower {
		return lower
	}
	return ext
}

// CategoriesPresent returns how many of code, content and image have at
// least one file.
func (fs FeatureSet) CategoriesPresent() int {
	n := 0
	for _, c := range []int{fs.CodeCount, fs.TextCount, fs.ImageCount} {
		if c > 0 {
			n++
		}
	}
	return n
}
