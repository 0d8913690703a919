// Package discovery finds project boundaries inside an extracted tree.
//
// A directory becomes a boundary when it holds a root marker: a version
// control or editor directory, or a well-known manifest, readme, license or
// build file. Boundaries are tagged 1, 2, 3, ... in the order a top-down,
// depth-first traversal first reaches them, and the traversal does not look
// for further boundaries inside one it has already tagged.
package discovery

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/julianshen/projinsight/internal/filetype"
)

// UnownedTag is the tag of files that belong to no boundary.
const UnownedTag = 0

var markerDirs = map[string]bool{
	".git":    true,
	".svn":    true,
	".hg":     true,
	".vscode": true,
	".idea":   true,
}

var markerFiles = map[string]bool{
	"package.json":     true,
	"requirements.txt": true,
	"setup.py":         true,
	"setup.cfg":        true,
	"pyproject.toml":   true,
	"Pipfile":          true,
	"go.mod":           true,
	"Cargo.toml":       true,
	"pom.xml":          true,
	"build.gradle":     true,
	"build.gradle.kts": true,
	"settings.gradle":  true,
	"Gemfile":          true,
	"composer.json":    true,
	"CMakeLists.txt":   true,
	"Makefile":         true,
	"mix.exs":          true,
	"pubspec.yaml":     true,
	"Package.swift":    true,
	"build.sbt":        true,
	"stack.yaml":       true,
	"deno.json":        true,
	"README":           true,
	"README.md":        true,
	"README.txt":       true,
	"README.rst":       true,
	"LICENSE":          true,
	"LICENSE.md":       true,
	"LICENSE.txt":      true,
}

// Boundary is one discovered project root.
type Boundary struct {
	Root string `json:"root"`
	Tag  int    `json:"tag"`
}

// Boundaries is an ordered map from resolved absolute root path to tag.
type Boundaries struct {
	order []Boundary
	tags  map[string]int
}

// Len returns the number of boundaries.
func (b *Boundaries) Len() int {
	return len(b.order)
}

// All returns the boundaries in tag order.
func (b *Boundaries) All() []Boundary {
	return append([]Boundary(nil), b.order...)
}

// Tag returns the tag of the boundary rooted exactly at path.
func (b *Boundaries) Tag(path string) (int, bool) {
	tag, ok := b.tags[resolve(path)]
	return tag, ok
}

// Owner returns the most specific boundary containing file: among all
// boundaries that are ancestors of file, the one with the longest path.
// A path that cannot be resolved matches nothing.
func (b *Boundaries) Owner(file string) (Boundary, bool) {
	abs := resolve(file)
	if abs == "" {
		return Boundary{Tag: UnownedTag}, false
	}

	best := Boundary{Tag: UnownedTag}
	found := false
	for _, bd := range b.order {
		if !hasPathPrefix(abs, bd.Root) {
			continue
		}
		if !found || len(bd.Root) > len(best.Root) {
			best = bd
			found = true
		}
	}
	return best, found
}

// resolve returns path made absolute with symlinks evaluated. The part of
// path that does not exist yet is kept as written below its nearest
// existing ancestor. "" means path could not be made absolute.
func resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return abs
	}
	return filepath.Join(resolve(parent), filepath.Base(abs))
}

// Discover walks root and returns its project boundaries. Directories in
// the static ignore set are never entered, and neither are directories the
// filter ignores; filter may be nil. Only failure to read root itself is an
// error; unreadable subdirectories are skipped.
func Discover(root string, filter *filetype.Filter) (*Boundaries, error) {
	abs, err := filetype.Resolve(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", abs)
	}

	b := &Boundaries{tags: make(map[string]int)}
	stack := []string{abs}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if dir == abs {
				return nil, fmt.Errorf("reading root: %w", err)
			}
			log.Printf("discovery: skipping unreadable dir %q: %v", dir, err)
			continue
		}

		if hasMarker(entries) {
			b.add(dir)
			continue
		}

		var children []string
		for _, e := range entries {
			if !e.IsDir() || filetype.IsIgnoredName(e.Name()) {
				continue
			}
			child := filepath.Join(dir, e.Name())
			if filter != nil && filter.Ignored(child, true) {
				continue
			}
			children = append(children, child)
		}
		// Push in reverse so the lexically first child is visited next.
		sort.Sort(sort.Reverse(sort.StringSlice(children)))
		stack = append(stack, children...)
	}
	return b, nil
}

func (b *Boundaries) add(dir string) {
	if _, ok := b.tags[dir]; ok {
		return
	}
	tag := len(b.order) + 1
	b.tags[dir] = tag
	b.order = append(b.order, Boundary{Root: dir, Tag: tag})
}

func hasMarker(entries []os.DirEntry) bool {
	for _, e := range entries {
		if e.IsDir() {
			if markerDirs[e.Name()] {
				return true
			}
			continue
		}
		if markerFiles[e.Name()] {
			return true
		}
	}
	return false
}

// hasPathPrefix reports whether path equals base or lies below it.
func hasPathPrefix(path, base string) bool {
	path = filepath.Clean(path)
	base = filepath.Clean(base)
	if path == base {
		return true
	}
	sep := string(os.PathSeparator)
	if runtime.GOOS == "windows" {
		path = strings.ToLower(path)
		base = strings.ToLower(base)
	}
	if !strings.HasSuffix(base, sep) {
		base += sep
	}
	return strings.HasPrefix(path, base)
}
