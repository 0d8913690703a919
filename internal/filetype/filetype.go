// Package filetype classifies file paths into analysis categories using
// static extension tables, and decides which paths are ignored.
package filetype

import (
	"path/filepath"
	"strings"
)

// Category is the analysis category of a single file.
type Category string

const (
	Code    Category = "code"
	Content Category = "content"
	Image   Category = "image"
	Unknown Category = "unknown"
)

// Ext returns the lowercased extension of name, including the leading dot.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// Classify returns the category for path based on its extension alone.
func Classify(path string) Category {
	ext := Ext(path)
	switch {
	case ext == "":
		return Unknown
	case codeExtensions[ext]:
		return Code
	case contentExtensions[ext]:
		return Content
	case imageExtensions[ext]:
		return Image
	}
	return Unknown
}

// Language returns the language name for path, or "" when the extension
// is not a programming, markup or style language.
func Language(path string) string {
	return languageExtensions[Ext(path)]
}

// IsIgnoredName reports whether a single path segment is in the static
// ignore set.
func IsIgnoredName(name string) bool {
	return ignoreNames[name]
}

// HasIgnoredSegment reports whether any segment of a slash or OS separated
// path is in the static ignore set.
func HasIgnoredSegment(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if ignoreNames[part] {
			return true
		}
	}
	return false
}

// Resolve returns the absolute form of path with symlinks evaluated, so a
// root reached through a link and the same root reached directly compare
// equal.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
