package filetype

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/denormal/go-gitignore"
)

// DefaultIgnoreFile is the per-directory ignore file honored by a Filter.
const DefaultIgnoreFile = ".gitignore"

// FilterOptions configures a Filter.
type FilterOptions struct {
	// IgnoreFile is the name of per-directory ignore files. Defaults to .gitignore.
	IgnoreFile string
	// Exclude holds doublestar patterns matched against root-relative,
	// slash-separated paths.
	Exclude []string
}

// Filter decides whether a path below Root is ignored. A path is ignored when
// any of its segments is in the static ignore set, when it matches an exclude
// pattern, or when an ignore file in one of its ancestor directories lists a
// pattern matching it.
type Filter struct {
	root       string
	ignoreFile string
	exclude    []string

	mu       sync.Mutex
	matchers map[string]gitignore.GitIgnore
}

// NewFilter returns a Filter rooted at root.
func NewFilter(root string, opts FilterOptions) *Filter {
	if resolved, err := Resolve(root); err == nil {
		root = resolved
	} else if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	name := opts.IgnoreFile
	if name == "" {
		name = DefaultIgnoreFile
	}
	return &Filter{
		root:       filepath.Clean(root),
		ignoreFile: name,
		exclude:    opts.Exclude,
		matchers:   make(map[string]gitignore.GitIgnore),
	}
}

// Root returns the directory the filter is anchored at.
func (f *Filter) Root() string {
	return f.root
}

// Ignored reports whether path should be skipped. path may be absolute or
// relative to the filter root.
func (f *Filter) Ignored(path string, isDir bool) bool {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(f.root, path)
	}
	rel, err := filepath.Rel(f.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		// Outside the root only the static names apply.
		return IsIgnoredName(filepath.Base(path))
	}
	if rel == "." {
		return false
	}
	if HasIgnoredSegment(rel) {
		return true
	}

	if f.excluded(filepath.ToSlash(rel)) {
		return true
	}

	return f.ignoredByFiles(abs, rel, isDir)
}

// excluded matches the exclude patterns against rel and each of its
// ancestors, so files below an excluded directory are excluded too.
func (f *Filter) excluded(rel string) bool {
	for prefix := rel; prefix != "." && prefix != ""; prefix = path.Dir(prefix) {
		for _, pattern := range f.exclude {
			if ok, err := doublestar.Match(pattern, prefix); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// ignoredByFiles consults ignore files from the deepest ancestor upwards.
// The first matcher with an opinion decides, mirroring how nested ignore
// files take precedence over their parents.
func (f *Filter) ignoredByFiles(abs, rel string, isDir bool) bool {
	dirs := []string{f.root}
	parts := strings.Split(rel, string(filepath.Separator))
	cur := f.root
	for _, part := range parts[:len(parts)-1] {
		cur = filepath.Join(cur, part)
		dirs = append(dirs, cur)
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		m := f.matcher(dirs[i])
		if m == nil {
			continue
		}
		local, err := filepath.Rel(dirs[i], abs)
		if err != nil {
			continue
		}
		if ignored, decided := matchPrefixes(m, local, isDir); decided {
			return ignored
		}
	}
	return false
}

// matchPrefixes tests every ancestor prefix of local, so a file inside an
// ignored directory is ignored too.
func matchPrefixes(m gitignore.GitIgnore, local string, isDir bool) (ignored, decided bool) {
	parts := strings.Split(local, string(filepath.Separator))
	for i := range parts {
		prefix := filepath.Join(parts[:i+1]...)
		prefixIsDir := isDir || i < len(parts)-1
		match := m.Relative(prefix, prefixIsDir)
		if match == nil {
			continue
		}
		if match.Ignore() {
			return true, true
		}
		if i == len(parts)-1 {
			return false, true
		}
	}
	return false, false
}

// matcher returns the parsed ignore file for dir, or nil when dir has none.
// Results are cached per directory.
func (f *Filter) matcher(dir string) gitignore.GitIgnore {
	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.matchers[dir]; ok {
		return m
	}

	var m gitignore.GitIgnore
	path := filepath.Join(dir, f.ignoreFile)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		parsed, err := gitignore.NewFromFile(path)
		if err != nil {
			log.Printf("filetype: skipping ignore file %q: %v", path, err)
		} else {
			m = parsed
		}
	}
	f.matchers[dir] = m
	return m
}
