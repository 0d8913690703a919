package content

import (
	"context"
	"crypto/sha256"
	"fmt"
	"maps"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/scan"
)

// DefaultCacheSize is the number of analyses kept when no size is configured.
const DefaultCacheSize = 256

// DocumentResult pairs one analyzed file with its analysis.
type DocumentResult struct {
	Path     string   `json:"path"`
	Analysis Analysis `json:"analysis"`
}

// Analyzer analyzes documents concurrently and caches results by content
// hash, so identical documents across boundaries and runs are analyzed once.
// It is safe for concurrent use.
type Analyzer struct {
	cache       *lru.Cache[[sha256.Size]byte, Analysis]
	concurrency int
}

// NewAnalyzer creates an Analyzer holding up to cacheSize analyses and
// analyzing at most concurrency documents at a time.
func NewAnalyzer(cacheSize, concurrency int) (*Analyzer, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if concurrency <= 0 {
		concurrency = 4
	}
	cache, err := lru.New[[sha256.Size]byte, Analysis](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}
	return &Analyzer{cache: cache, concurrency: concurrency}, nil
}

// Analyze returns the analysis of text, consulting the cache first. The
// returned record is a private copy.
func (a *Analyzer) Analyze(text string) Analysis {
	key := sha256.Sum256([]byte(text))
	if cached, ok := a.cache.Get(key); ok {
		return clone(cached)
	}
	res := Analyze(text)
	a.cache.Add(key, res)
	return clone(res)
}

// AnalyzeFiles analyzes every readable content file in files. Results keep
// the order of files.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, files []scan.FileRecord) ([]DocumentResult, error) {
	var docs []scan.FileRecord
	for _, f := range files {
		if f.Category == filetype.Content && !f.Skipped && f.Error == "" {
			docs = append(docs, f)
		}
	}
	results := make([]DocumentResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, f := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = DocumentResult{Path: f.RelPath, Analysis: a.Analyze(f.Text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyze documents: %w", err)
	}
	return results, nil
}

// Analyses extracts the per-document analyses in order.
func Analyses(results []DocumentResult) []Analysis {
	out := make([]Analysis, len(results))
	for i, r := range results {
		out[i] = r.Analysis
	}
	return out
}

func clone(a Analysis) Analysis {
	a.Topics = slices.Clone(a.Topics)
	a.DomainIndicators = maps.Clone(a.DomainIndicators)
	return a
}
