// Package pipeline runs the full project analysis over an extracted tree:
// it discovers project boundaries and, for each one, classifies it, detects
// its languages and frameworks, analyzes its documents, infers skills and
// writes resume bullets.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"

	"github.com/julianshen/projinsight/internal/classify"
	"github.com/julianshen/projinsight/internal/content"
	"github.com/julianshen/projinsight/internal/detect"
	"github.com/julianshen/projinsight/internal/discovery"
	"github.com/julianshen/projinsight/internal/features"
	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/resume"
	"github.com/julianshen/projinsight/internal/scan"
	"github.com/julianshen/projinsight/internal/skills"
)

// Config controls how an Analyzer scans and scores a tree.
type Config struct {
	MaxTextBytes       int64
	ImportScanMaxBytes int64
	IgnoreFile         string
	Exclude            []string
	Concurrency        int
	ContentCacheSize   int
	Classifier         classify.Options
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		MaxTextBytes:       scan.DefaultMaxTextBytes,
		ImportScanMaxBytes: detect.DefaultImportScanMaxBytes,
		IgnoreFile:         filetype.DefaultIgnoreFile,
		Concurrency:        4,
		ContentCacheSize:   content.DefaultCacheSize,
		Classifier:         classify.DefaultOptions(),
	}
}

// Request describes one analysis run.
type Request struct {
	Root string

	// Timestamps maps slash-separated root-relative paths to archive
	// modification times.
	Timestamps map[string]time.Time

	Contributors []resume.Contributor
	UserName     string
	UserEmail    string

	// AISummary and SendToLLM are produced elsewhere and passed through.
	AISummary string
	SendToLLM bool
}

// ProjectResult is the analysis of one boundary.
type ProjectResult struct {
	Tag              int                      `json:"tag"`
	Root             string                   `json:"root"`
	Classification   classify.Result          `json:"classification"`
	Languages        []string                 `json:"languages"`
	LanguageCounts   []detect.LanguageCount   `json:"language_counts"`
	Frameworks       []string                 `json:"frameworks"`
	FrameworkSignals []detect.FrameworkSignal `json:"framework_signals"`
	Skills           []string                 `json:"skills"`
	Documents        []content.DocumentResult `json:"documents"`
	Content          *content.Summary         `json:"content,omitempty"`
	Resume           resume.BulletSet         `json:"resume"`
}

// Report is the result of one run.
type Report struct {
	ID           string          `json:"id"`
	Root         string          `json:"root"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Projects     []ProjectResult `json:"projects"`
	UnownedFiles []string        `json:"unowned_files"`
	Warnings     []string        `json:"warnings"`
	AISummary    string          `json:"ai_summary,omitempty"`
	SendToLLM    bool            `json:"send_to_llm"`
}

// Analyzer runs analyses. It is safe for concurrent use.
type Analyzer struct {
	config     Config
	clock      clock.Clock
	classifier *classify.Classifier
	detector   *detect.Detector
	documents  *content.Analyzer
	generator  *resume.Generator
}

// NewAnalyzer creates an Analyzer. A nil clock means the wall clock.
func NewAnalyzer(cfg Config, clk clock.Clock) (*Analyzer, error) {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if clk == nil {
		clk = clock.New()
	}
	docs, err := content.NewAnalyzer(cfg.ContentCacheSize, cfg.Concurrency)
	if err != nil {
		return nil, fmt.Errorf("creating content analyzer: %w", err)
	}
	return &Analyzer{
		config:     cfg,
		clock:      clk,
		classifier: classify.New(cfg.Classifier),
		detector:   detect.New(detect.Options{ImportScanMaxBytes: cfg.ImportScanMaxBytes}),
		documents:  docs,
		generator:  resume.NewGenerator(clk),
	}, nil
}

// Run analyzes req.Root. Only an unusable root or a cancelled context fail
// the run; per-file and per-project problems are reported as warnings.
func (a *Analyzer) Run(ctx context.Context, req Request) (*Report, error) {
	if req.Root == "" {
		return nil, errors.New("root path is required")
	}
	root, err := filetype.Resolve(req.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("reading root: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled before start: %w", err)
	}

	filter := filetype.NewFilter(root, filetype.FilterOptions{
		IgnoreFile: a.config.IgnoreFile,
		Exclude:    a.config.Exclude,
	})
	tree, err := scan.Walk(root, filter, scan.Options{
		MaxTextBytes: a.config.MaxTextBytes,
		Timestamps:   req.Timestamps,
	})
	if err != nil {
		return nil, fmt.Errorf("scanning tree: %w", err)
	}
	bounds, err := discovery.Discover(root, filter)
	if err != nil {
		return nil, fmt.Errorf("discovering projects: %w", err)
	}

	var warnings error
	for _, f := range tree.Files {
		if f.Error != "" {
			warnings = multierr.Append(warnings, fmt.Errorf("%s: %s", f.RelPath, f.Error))
		}
	}

	parts, unowned := partition(tree, bounds)
	// Contributor stats describe the whole upload; only a lone project gets them.
	contributors := req.Contributors
	if len(parts) != 1 {
		contributors = nil
	}

	results := make([]ProjectResult, len(parts))
	failed := make([]bool, len(parts))
	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(a.config.Concurrency)
	for i, part := range parts {
		p.Go(func() {
			res, err := a.analyzeProject(ctx, part, req, contributors)
			if err != nil {
				mu.Lock()
				warnings = multierr.Append(warnings, fmt.Errorf("project %d (%s): %w", part.tag, part.rel, err))
				failed[i] = true
				mu.Unlock()
				return
			}
			results[i] = res
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	projects := make([]ProjectResult, 0, len(results))
	for i, res := range results {
		if !failed[i] {
			projects = append(projects, res)
		}
	}

	report := &Report{
		ID:           uuid.New().String(),
		Root:         root,
		GeneratedAt:  a.clock.Now(),
		Projects:     projects,
		UnownedFiles: unowned,
		Warnings:     []string{},
		AISummary:    req.AISummary,
		SendToLLM:    req.SendToLLM,
	}
	for _, w := range multierr.Errors(warnings) {
		report.Warnings = append(report.Warnings, w.Error())
	}
	return report, nil
}

// analyzeProject runs every per-project stage over one boundary.
func (a *Analyzer) analyzeProject(ctx context.Context, part project, req Request, contributors []resume.Contributor) (ProjectResult, error) {
	if err := ctx.Err(); err != nil {
		return ProjectResult{}, err
	}

	fs := features.Extract(part.tree)
	cls := a.classifier.Classify(fs)
	det := a.detector.Detect(ctx, part.tree)

	docs, err := a.documents.AnalyzeFiles(ctx, part.tree.ByCategory(filetype.Content))
	if err != nil {
		return ProjectResult{}, err
	}
	var summary *content.Summary
	if sum := content.Summarize(content.Analyses(docs)); !sum.IsEmpty() {
		summary = &sum
	}

	languages := det.LanguageNames()
	inferred := skills.Infer(skills.Input{
		Languages:  languages,
		Frameworks: det.Frameworks,
		Files:      part.tree.Files,
		Content:    summary,
	})
	bullets := a.generator.Generate(resume.Input{
		Languages:    languages,
		Frameworks:   det.Frameworks,
		Skills:       inferred,
		Content:      summary,
		Features:     fs,
		Contributors: contributors,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
	})

	if docs == nil {
		docs = []content.DocumentResult{}
	}
	return ProjectResult{
		Tag:              part.tag,
		Root:             part.rel,
		Classification:   cls,
		Languages:        languages,
		LanguageCounts:   det.Languages,
		Frameworks:       det.Frameworks,
		FrameworkSignals: det.Signals,
		Skills:           inferred,
		Documents:        docs,
		Content:          summary,
		Resume:           bullets,
	}, nil
}
