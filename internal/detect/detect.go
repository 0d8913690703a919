// Package detect surfaces the languages and frameworks a project uses.
//
// Languages come from file extensions. Frameworks come from four kinds of
// evidence: dependency manifests and lockfiles, framework config files
// recognized by name, import statements in source files, and the commands
// shell scripts invoke. Every detector is a pure function of file content;
// a file that cannot be read or parsed contributes nothing.
package detect

import (
	"context"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/parser"
	"github.com/julianshen/projinsight/internal/scan"
)

// DefaultImportScanMaxBytes caps the size of source files scanned for
// import statements.
const DefaultImportScanMaxBytes = 512 << 10

// maxManifestBytes caps how much of a manifest or lockfile is read.
const maxManifestBytes = 4 << 20

// Source names the kind of evidence behind a signal.
type Source string

// Signal sources.
const (
	SourceExtension Source = "extension"
	SourceImport    Source = "import"
	SourceManifest  Source = "manifest"
	SourceFilename  Source = "filename"
)

// LanguageCount is a language and the number of files written in it.
type LanguageCount struct {
	Name  string `json:"name"`
	Files int    `json:"files"`
}

// FrameworkSignal is one piece of evidence for a framework.
type FrameworkSignal struct {
	Name    string `json:"name"`
	Source  Source `json:"source"`
	File    string `json:"file"`
	Version string `json:"version,omitempty"`
}

// Result holds everything detected for one project.
type Result struct {
	Languages  []LanguageCount   `json:"languages"`
	Frameworks []string          `json:"frameworks"`
	Signals    []FrameworkSignal `json:"signals"`
}

// LanguageNames returns the language names in descending file-count order.
func (r Result) LanguageNames() []string {
	names := make([]string, 0, len(r.Languages))
	for _, l := range r.Languages {
		names = append(names, l.Name)
	}
	return names
}

// Options configures a Detector.
type Options struct {
	ImportScanMaxBytes int64
}

// Detector runs all detectors over a scanned tree.
type Detector struct {
	opts Options
}

// New returns a Detector. A non-positive ImportScanMaxBytes uses the default.
func New(opts Options) *Detector {
	if opts.ImportScanMaxBytes <= 0 {
		opts.ImportScanMaxBytes = DefaultImportScanMaxBytes
	}
	return &Detector{opts: opts}
}

// Detect inspects every non-skipped file in tree. ctx bounds the source
// parsers; a cancelled context only shortens the import scan.
func (d *Detector) Detect(ctx context.Context, tree *scan.Tree) Result {
	res := Result{
		Languages:  Languages(tree),
		Frameworks: []string{},
		Signals:    []FrameworkSignal{},
	}

	psr := parser.NewParser()
	var signals []FrameworkSignal
	for _, f := range tree.Files {
		if f.Skipped {
			continue
		}
		name := path.Base(f.RelPath)
		lower := strings.ToLower(name)

		if fw := markerFramework(f.RelPath, lower); fw != "" {
			signals = append(signals, FrameworkSignal{Name: fw, Source: SourceFilename, File: f.RelPath})
		}
		if m, ok := findManifest(lower); ok {
			signals = append(signals, m.detect(f)...)
		}
		if f.Category == filetype.Code && f.Error == "" && f.Bytes <= d.opts.ImportScanMaxBytes {
			signals = append(signals, scanImports(ctx, psr, f)...)
		}
	}

	res.Signals = dedupeSignals(signals)
	res.Frameworks = frameworkNames(res.Signals)
	return res
}

// Languages counts non-skipped files per language, most common first and
// alphabetical on equal counts.
func Languages(tree *scan.Tree) []LanguageCount {
	counts := make(map[string]int)
	for _, f := range tree.Files {
		if f.Skipped || f.DetectedLanguage == "" {
			continue
		}
		counts[f.DetectedLanguage]++
	}

	out := make([]LanguageCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, LanguageCount{Name: name, Files: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Files != out[j].Files {
			return out[i].Files > out[j].Files
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// markerFramework recognizes framework config files by name or extension.
func markerFramework(rel, lower string) string {
	if fw, ok := filenameMarkers[lower]; ok {
		return fw
	}
	for prefix, fw := range filenamePrefixMarkers {
		if strings.HasPrefix(lower, prefix) {
			return fw
		}
	}
	if fw, ok := extensionMarkers[filetype.Ext(lower)]; ok {
		return fw
	}

	relLower := strings.ToLower(rel)
	if strings.HasPrefix(relLower, ".github/workflows/") || strings.Contains(relLower, "/.github/workflows/") {
		if ext := filetype.Ext(lower); ext == ".yml" || ext == ".yaml" {
			return "GitHub Actions"
		}
	}
	if lower == "conf.py" {
		if dir := path.Base(path.Dir(relLower)); dir == "docs" || dir == "doc" {
			return "Sphinx"
		}
	}
	return ""
}

// readCapped reads at most maxManifestBytes of the file at p.
func readCapped(p string) ([]byte, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxManifestBytes))
}

// dedupeSignals keeps the first signal per (name, source) pair and sorts
// the result case-insensitively by name, then by source.
func dedupeSignals(signals []FrameworkSignal) []FrameworkSignal {
	type key struct {
		name   string
		source Source
	}
	seen := make(map[key]int)
	out := make([]FrameworkSignal, 0, len(signals))
	for _, s := range signals {
		k := key{s.Name, s.Source}
		if i, ok := seen[k]; ok {
			if out[i].Version == "" && s.Version != "" {
				out[i].Version = s.Version
			}
			continue
		}
		seen[k] = len(out)
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if li, lj := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name); li != lj {
			return li < lj
		}
		return out[i].Source < out[j].Source
	})
	return out
}

func frameworkNames(signals []FrameworkSignal) []string {
	names := []string{}
	for i, s := range signals {
		if i > 0 && signals[i-1].Name == s.Name {
			continue
		}
		names = append(names, s.Name)
	}
	return names
}
