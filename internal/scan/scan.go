// Package scan walks an extracted file tree and turns each file into a
// FileRecord: its category, size and line counts, and (for code and content
// files) its text.
package scan

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/julianshen/projinsight/internal/filetype"
)

// DefaultMaxTextBytes caps how much of a file is kept in FileRecord.Text.
const DefaultMaxTextBytes = 1 << 20

// FileRecord describes one file below a scan root.
type FileRecord struct {
	Path             string            `json:"path"`
	RelPath          string            `json:"rel_path"`
	Category         filetype.Category `json:"category"`
	Skipped          bool              `json:"skipped,omitempty"`
	Lines            int               `json:"lines,omitempty"`
	Characters       int               `json:"characters,omitempty"`
	Bytes            int64             `json:"bytes,omitempty"`
	Text             string            `json:"-"`
	Truncated        bool              `json:"truncated,omitempty"`
	DetectedLanguage string            `json:"detected_language,omitempty"`
	ModifiedAt       time.Time         `json:"modified_at,omitzero"`
	Error            string            `json:"error,omitempty"`
}

// Options tunes Inspect and Walk.
type Options struct {
	// MaxTextBytes caps the text read per file. Zero means DefaultMaxTextBytes.
	MaxTextBytes int64
	// Timestamps maps slash-separated root-relative paths to modification
	// times taken from archive metadata. It wins over the filesystem mtime.
	Timestamps map[string]time.Time
}

func (o Options) maxText() int64 {
	if o.MaxTextBytes <= 0 {
		return DefaultMaxTextBytes
	}
	return o.MaxTextBytes
}

// Inspect builds the FileRecord for path, which must live below the filter
// root. Failures never escape: an unreadable or undecodable file yields a
// degraded record with Error set.
func Inspect(path string, filter *filetype.Filter, opts Options) FileRecord {
	rel, err := filepath.Rel(filter.Root(), path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rec := FileRecord{
		Path:             path,
		RelPath:          filepath.ToSlash(rel),
		Category:         filetype.Classify(path),
		DetectedLanguage: filetype.Language(path),
	}

	if filter.Ignored(path, false) {
		rec.Skipped = true
		return rec
	}

	info, err := os.Stat(path)
	if err != nil {
		rec.Error = err.Error()
		return rec
	}
	rec.Bytes = info.Size()
	rec.ModifiedAt = info.ModTime()
	if ts, ok := opts.Timestamps[rec.RelPath]; ok {
		rec.ModifiedAt = ts
	}

	if rec.Category != filetype.Code && rec.Category != filetype.Content {
		return rec
	}

	text, truncated, err := readText(path, opts.maxText())
	if err != nil {
		rec.Error = err.Error()
		return rec
	}
	rec.Text = text
	rec.Truncated = truncated
	rec.Characters = utf8.RuneCountInString(text)
	rec.Lines = countLines(text)
	return rec
}

// readText reads at most limit bytes of path as UTF-8 text.
func readText(path string, limit int64) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return "", false, err
	}
	truncated := int64(len(data)) > limit
	if truncated {
		data = data[:limit]
		// Do not split a multi-byte rune at the cap.
		for len(data) > 0 && !utf8.Valid(data) {
			data = data[:len(data)-1]
		}
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return "", false, fmt.Errorf("undecodable content in %s", filepath.Base(path))
	}
	return string(data), truncated, nil
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := bytes.Count([]byte(text), []byte{'\n'})
	if text[len(text)-1] != '\n' {
		n++
	}
	return n
}

// Tree is the result of walking one directory: every file record in
// relative-path order plus every directory visited below the root.
type Tree struct {
	Root  string
	Files []FileRecord
	Dirs  []string
}

// Walk visits every file below root. Directories in the static ignore set
// are not entered. Directories matched by ignore files or exclude patterns
// are still walked so their files get Skipped records, but they are left
// out of Dirs. Per-file failures become degraded records; only failure to
// read root itself is returned as an error.
func Walk(root string, filter *filetype.Filter, opts Options) (*Tree, error) {
	abs, err := filetype.Resolve(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, fmt.Errorf("reading root: %w", err)
	}

	tree := &Tree{Root: abs}
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("scan: skipping path %q: %v", path, err)
			if d != nil && d.IsDir() && path != abs {
				return filepath.SkipDir
			}
			return nil
		}
		if path == abs {
			return nil
		}
		rel, relErr := filepath.Rel(abs, path)
		if relErr != nil {
			return nil
		}
		if d.IsDir() {
			if filetype.IsIgnoredName(d.Name()) {
				return filepath.SkipDir
			}
			if filter.Ignored(path, true) {
				return nil
			}
			tree.Dirs = append(tree.Dirs, filepath.ToSlash(rel))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if filetype.HasIgnoredSegment(rel) {
			return nil
		}
		tree.Files = append(tree.Files, Inspect(path, filter, opts))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", abs, err)
	}

	sort.Slice(tree.Files, func(i, j int) bool { return tree.Files[i].RelPath < tree.Files[j].RelPath })
	sort.Strings(tree.Dirs)
	return tree, nil
}

// Analyzable returns the records that were not skipped.
func (t *Tree) Analyzable() []FileRecord {
	out := make([]FileRecord, 0, len(t.Files))
	for _, f := range t.Files {
		if !f.Skipped {
			out = append(out, f)
		}
	}
	return out
}

// ByCategory returns the analyzable records of category c.
func (t *Tree) ByCategory(c filetype.Category) []FileRecord {
	var out []FileRecord
	for _, f := range t.Files {
		if !f.Skipped && f.Category == c {
			out = append(out, f)
		}
	}
	return out
}
