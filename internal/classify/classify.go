// Package classify labels a boundary as coding, writing, art, a mixed pair,
// or unknown from its feature counts, and derives a confidence value.
package classify

import (
	"sort"

	"github.com/julianshen/projinsight/internal/features"
)

// Labels produced by Classify.
const (
	LabelCoding  = "coding"
	LabelWriting = "writing"
	LabelArt     = "art"
	LabelUnknown = "unknown"

	mixedPrefix = "mixed:"
)

// Folder-name hints per category.
var (
	codeFolderHints = map[string]bool{
		"src": true, "lib": true, "app": true, "api": true, "cmd": true, "pkg": true,
		"internal": true, "core": true, "scripts": true, "test": true, "tests": true,
		"spec": true, "backend": true, "frontend": true, "server": true, "client": true,
		"components": true, "utils": true, "modules": true, "services": true,
		"models": true, "controllers": true, "routes": true, "handlers": true,
	}
	writingFolderHints = map[string]bool{
		"docs": true, "doc": true, "documentation": true, "writing": true, "writings": true,
		"articles": true, "posts": true, "blog": true, "chapters": true, "drafts": true,
		"essays": true, "papers": true, "manuscript": true, "manuscripts": true,
		"notes": true, "stories": true, "content": true, "reports": true, "poems": true,
	}
	artFolderHints = map[string]bool{
		"images": true, "img": true, "assets": true, "art": true, "artwork": true,
		"design": true, "designs": true, "graphics": true, "illustrations": true,
		"photos": true, "photography": true, "renders": true, "sketches": true,
		"textures": true, "sprites": true, "icons": true, "gallery": true, "media": true,
	}
)

var (
	readmeKeys  = []string{"readme", ".md", ".rst"}
	licenseKeys = []string{"license", "licence", "copying"}
	configKeys  = []string{".json", ".toml", ".yaml", ".yml", ".ini", ".cfg"}
)

// Options holds the tunable weights and thresholds.
type Options struct {
	MinFilesForConfident int
	MarginThreshold      float64
	FolderBonus          float64
	CodeWeight           float64
	TextWeight           float64
	ImageWeight          float64
}

// DefaultOptions returns the reference weights and thresholds.
func DefaultOptions() Options {
	return Options{
		MinFilesForConfident: 2,
		MarginThreshold:      0.25,
		FolderBonus:          1.5,
		CodeWeight:           3.0,
		TextWeight:           2.0,
		ImageWeight:          2.5,
	}
}

// Scores are the final per-category scores, kept for explainability.
type Scores struct {
	Code  float64 `json:"code"`
	Text  float64 `json:"text"`
	Image float64 `json:"image"`
}

// Result is the classification of one boundary.
type Result struct {
	Label      string              `json:"label"`
	Confidence float64             `json:"confidence"`
	Scores     Scores              `json:"scores"`
	Features   features.FeatureSet `json:"features"`
}

// IsMixed reports whether the label names two categories.
func (r Result) IsMixed() bool {
	return len(r.Label) > len(mixedPrefix) && r.Label[:len(mixedPrefix)] == mixedPrefix
}

// Classifier scores feature sets.
type Classifier struct {
	opts Options
}

// New returns a Classifier using opts.
func New(opts Options) *Classifier {
	return &Classifier{opts: opts}
}

type ranked struct {
	label string
	score float64
}

// Classify labels fs and attaches its confidence.
func (c *Classifier) Classify(fs features.FeatureSet) Result {
	res := Result{Label: LabelUnknown, Features: fs, Confidence: Confidence(fs)}
	if fs.TotalFiles < c.opts.MinFilesForConfident {
		return res
	}
	if fs.CodeCount+fs.TextCount+fs.ImageCount == 0 {
		return res
	}

	res.Scores = c.score(fs)
	res.Label = c.label(fs, res.Scores)
	return res
}

func (c *Classifier) score(fs features.FeatureSet) Scores {
	total := float64(fs.TotalFiles)
	s := Scores{
		Code:  float64(fs.CodeCount) / total * c.opts.CodeWeight,
		Text:  float64(fs.TextCount) / total * c.opts.TextWeight,
		Image: float64(fs.ImageCount) / total * c.opts.ImageWeight,
	}

	if intersects(fs.FolderHistogram, codeFolderHints) {
		s.Code += c.opts.FolderBonus
	}
	if intersects(fs.FolderHistogram, writingFolderHints) {
		s.Text += c.opts.FolderBonus
	}
	if intersects(fs.FolderHistogram, artFolderHints) {
		s.Image += c.opts.FolderBonus
	}

	ext := fs.ExtensionHistogram
	if hasAny(ext, readmeKeys) {
		s.Code += 0.5
		s.Text += 0.1
	}
	if ext["requirements"] > 0 {
		s.Code += 0.5
	}
	if hasAny(ext, licenseKeys) {
		s.Code += 0.5
	}
	if hasAny(ext, configKeys) {
		s.Code += 0.3
	}
	return s
}

// label ranks the three scores and applies both mixed-label clauses. The
// clauses are independent: either one alone is enough to emit mixed.
func (c *Classifier) label(fs features.FeatureSet, s Scores) string {
	order := []ranked{
		{LabelCoding, s.Code},
		{LabelWriting, s.Text},
		{LabelArt, s.Image},
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].score > order[j].score })
	top, second := order[0], order[1]
	diff := top.score - second.score

	nonzero := 0
	for _, n := range []int{fs.CodeCount, fs.TextCount, fs.ImageCount} {
		if n > 0 {
			nonzero++
		}
	}
	hasMultipleTypes := nonzero >= 2

	closeRace := diff < c.opts.MarginThreshold && top.score > 1.0 && second.score > 0.8
	sharedWork := hasMultipleTypes && top.score > 0.8 && second.score > 0.5 && diff < 1.0
	if closeRace || sharedWork {
		return mixedPrefix + top.label + "+" + second.label
	}
	return top.label
}

// Confidence derives a value in [0,1] from the dominant category ratio and
// the number of files.
func Confidence(fs features.FeatureSet) float64 {
	if fs.TotalFiles <= 0 {
		return 0.0
	}
	total := float64(fs.TotalFiles)
	maxRatio := max(
		float64(fs.CodeCount)/total,
		float64(fs.TextCount)/total,
		float64(fs.ImageCount)/total,
	)
	base := maxRatio * 0.8
	fileBoost := min(total*0.05, 0.2)
	return clamp(base+fileBoost, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

func intersects(hist map[string]int, hints map[string]bool) bool {
	for name, n := range hist {
		if n > 0 && hints[name] {
			return true
		}
	}
	return false
}

func hasAny(hist map[string]int, keys []string) bool {
	for _, k := range keys {
		if hist[k] > 0 {
			return true
		}
	}
	return false
}
