package skills

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianshen/projinsight/internal/content"
	"github.com/julianshen/projinsight/internal/scan"
)

func files(paths ...string) []scan.FileRecord {
	out := make([]scan.FileRecord, len(paths))
	for i, p := range paths {
		out[i] = scan.FileRecord{RelPath: p}
	}
	return out
}

func numbered(pattern string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(pattern, i)
	}
	return out
}

func TestInferIsSortedAndIdempotent(t *testing.T) {
	in := Input{
		Languages:  []string{"Python", "JavaScript", "Shell"},
		Frameworks: []string{"Django", "React", "Docker", "pytest", "Jest"},
		Files:      files("a.md", "b.md", "c.md", "d.md", "e.md", "api.proto"),
	}

	first := Infer(in)
	second := Infer(in)

	assert.Equal(t, first, second)
	assert.True(t, sort.StringsAreSorted(first))
	assert.Contains(t, first, "Full-Stack Development")
	assert.Contains(t, first, "Test Automation")
	assert.Contains(t, first, "DevOps")
	assert.Contains(t, first, "Documentation")
	assert.Contains(t, first, "Protocol Buffers")
}

func TestInferNeverReturnsRawNames(t *testing.T) {
	in := Input{
		Languages:  []string{"Python", "Go", "Sass", "GraphQL"},
		Frameworks: []string{"Django", "Sass", "GraphQL", "WebAssembly"},
	}
	got := Infer(in)
	for _, name := range append(in.Languages, in.Frameworks...) {
		assert.NotContains(t, got, name)
	}
	assert.Contains(t, got, "CSS Preprocessing")
	assert.Contains(t, got, "RESTful APIs")
}

func TestInferLanguageSkills(t *testing.T) {
	got := Infer(Input{Languages: []string{"R", "Solidity"}})
	assert.Contains(t, got, "Statistical Analysis")
	assert.Contains(t, got, "Smart Contracts")
	assert.Contains(t, got, "Data Science")
}

func TestInferSpecificDocumentationSuppressesTechnicalWriting(t *testing.T) {
	got := Infer(Input{Frameworks: []string{"Sphinx"}})
	assert.Contains(t, got, "Code Documentation")
	assert.NotContains(t, got, "Technical Writing")

	got = Infer(Input{Frameworks: []string{"MkDocs"}})
	assert.Contains(t, got, "Technical Writing")

	got = Infer(Input{Frameworks: []string{"MkDocs", "FastAPI"}})
	assert.Contains(t, got, "API Documentation")
	assert.NotContains(t, got, "Technical Writing")
}

func TestInferCrossSignal(t *testing.T) {
	tests := []struct {
		name       string
		languages  []string
		frameworks []string
		want       []string
		absent     []string
	}{
		{
			name:       "backend and frontend become full stack",
			languages:  []string{"Python", "JavaScript"},
			frameworks: []string{"React"},
			want:       []string{"Full-Stack Development"},
			absent:     []string{"Backend Development", "Frontend Development"},
		},
		{
			name:      "backend language alone",
			languages: []string{"Go"},
			want:      []string{"Backend Development"},
			absent:    []string{"Frontend Development", "Full-Stack Development"},
		},
		{
			name:      "markup language alone is frontend",
			languages: []string{"HTML", "CSS"},
			want:      []string{"Frontend Development"},
			absent:    []string{"Backend Development", "Full-Stack Development"},
		},
		{
			name:      "scripting language without frameworks",
			languages: []string{"JavaScript"},
			absent:    []string{"Backend Development", "Frontend Development", "Full-Stack Development"},
		},
		{
			name:       "scripting language with backend framework",
			languages:  []string{"TypeScript"},
			frameworks: []string{"Express"},
			want:       []string{"Backend Development"},
		},
		{
			name:      "kotlin is a mobile language",
			languages: []string{"Kotlin"},
			want:      []string{"Mobile Development"},
			absent:    []string{"Backend Development"},
		},
		{
			name:       "scripting language with mobile framework",
			languages:  []string{"JavaScript"},
			frameworks: []string{"React Native"},
			want:       []string{"Mobile Development"},
		},
		{
			name:       "data framework",
			frameworks: []string{"Pandas"},
			want:       []string{"Data Science"},
		},
		{
			name:       "ml framework",
			frameworks: []string{"PyTorch"},
			want:       []string{"Machine Learning"},
			absent:     []string{"Machine Learning Engineering"},
		},
		{
			name:       "containers alone are not devops",
			languages:  []string{"Go"},
			frameworks: []string{"Docker"},
			want:       []string{"Containerization"},
			absent:     []string{"DevOps"},
		},
		{
			name:       "containers with shell are devops",
			languages:  []string{"Go", "Shell"},
			frameworks: []string{"Docker"},
			want:       []string{"DevOps"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(Input{Languages: tt.languages, Frameworks: tt.frameworks})
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, got, a)
			}
		})
	}
}

func TestInferCombinations(t *testing.T) {
	got := Infer(Input{Frameworks: []string{"PyTorch", "scikit-learn"}})
	assert.Contains(t, got, "Machine Learning Engineering")

	got = Infer(Input{Frameworks: []string{"Jest"}})
	assert.NotContains(t, got, "Test Automation")

	got = Infer(Input{Frameworks: []string{"Jest", "Cypress"}})
	assert.Contains(t, got, "Test Automation")

	got = Infer(Input{Frameworks: []string{"Terraform", "Kubernetes"}})
	assert.Contains(t, got, "Infrastructure Automation")
}

func TestInferFileTypeThresholds(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		skill  string
		expect bool
	}{
		{"nine jpegs", numbered("photos/img%d.jpg", 9), "Photography", false},
		{"ten jpegs", numbered("photos/img%d.JPG", 10), "Photography", true},
		{"two raw photos", numbered("raw/shot%d.nef", 2), "Photo Editing", false},
		{"three raw photos", numbered("raw/shot%d.cr2", 3), "Photo Editing", true},
		{"one video", numbered("clip%d.mp4", 1), "Video Production", false},
		{"two videos", numbered("clip%d.mov", 2), "Video Production", true},
		{"two wav files", numbered("take%d.wav", 2), "Audio Production", false},
		{"three wav files", numbered("take%d.wav", 3), "Audio Production", true},
		{"one layered design", []string{"poster.psd"}, "Graphic Design", true},
		{"one 3d model", []string{"chair.blend"}, "3D Modeling", true},
		{"four markdown files", numbered("docs/page%d.md", 4), "Documentation", false},
		{"five markdown files", numbered("docs/page%d.md", 5), "Documentation", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(Input{Files: files(tt.files...)})
			if tt.expect {
				assert.Contains(t, got, tt.skill)
			} else {
				assert.NotContains(t, got, tt.skill)
			}
		})
	}
}

func TestInferFileTypesSkipIgnoredAndSkipped(t *testing.T) {
	recs := files(numbered("node_modules/pkg/doc%d.md", 5)...)
	assert.NotContains(t, Infer(Input{Files: recs}), "Documentation")

	recs = files(numbered("docs/page%d.md", 5)...)
	recs[0].Skipped = true
	assert.NotContains(t, Infer(Input{Files: recs}), "Documentation")
}

func TestInferContentSkills(t *testing.T) {
	t.Run("research portfolio", func(t *testing.T) {
		sum := content.Summary{
			TotalDocuments:    3,
			TotalWords:        12000,
			PrimaryType:       content.ResearchPaper,
			PrimaryStyle:      content.StyleAcademic,
			PrimaryComplexity: content.Advanced,
			DocumentTypes:     map[content.DocumentType]int{content.ResearchPaper: 3},
			WritingStyles:     []content.WritingStyle{content.StyleAcademic},
			Topics:            []string{"Science", "Machine Learning"},
			HasCitations:      true,
			HasMath:           true,
		}
		got := Infer(Input{Content: &sum})
		for _, want := range []string{
			"Academic Research", "Academic Writing", "Advanced Writing", "Scientific Writing",
			"Research Methodology", "Mathematical Writing", "Long-Form Content", "Research Portfolio",
		} {
			assert.Contains(t, got, want)
		}
		assert.NotContains(t, got, "Content Creation")
	})

	t.Run("technical docs with code blocks", func(t *testing.T) {
		sum := content.Summary{
			TotalDocuments:    1,
			PrimaryType:       content.TechnicalDocumentation,
			PrimaryComplexity: content.Basic,
			DocumentTypes:     map[content.DocumentType]int{content.TechnicalDocumentation: 1},
			WritingStyles:     []content.WritingStyle{content.StyleTechnical},
			HasCodeBlocks:     true,
		}
		got := Infer(Input{Content: &sum})
		assert.Contains(t, got, "Code Documentation")
		assert.NotContains(t, got, "Technical Writing")
		assert.NotContains(t, got, "Advanced Writing")
	})

	t.Run("blog post with technical signals", func(t *testing.T) {
		sum := content.Summary{
			TotalDocuments: 1,
			PrimaryType:    content.BlogPost,
			DocumentTypes:  map[content.DocumentType]int{content.BlogPost: 1},
			WritingStyles:  []content.WritingStyle{content.StyleCasual},
			Topics:         []string{"Cloud Computing"},
		}
		got := Infer(Input{Content: &sum})
		assert.Contains(t, got, "Content Creation")
		assert.Contains(t, got, "Technical Writing")
	})

	t.Run("plain blog post", func(t *testing.T) {
		sum := content.Summary{
			TotalDocuments: 1,
			PrimaryType:    content.BlogPost,
			DocumentTypes:  map[content.DocumentType]int{content.BlogPost: 1},
			WritingStyles:  []content.WritingStyle{content.StyleCasual},
			Topics:         []string{"Business"},
		}
		got := Infer(Input{Content: &sum})
		assert.Equal(t, []string{"Business Writing", "Content Creation"}, got)
	})

	t.Run("domain indicators", func(t *testing.T) {
		sum := content.Summary{
			TotalDocuments:   1,
			PrimaryType:      content.GeneralArticle,
			DocumentTypes:    map[content.DocumentType]int{content.GeneralArticle: 1},
			WritingStyles:    []content.WritingStyle{content.StyleFormal},
			DomainIndicators: map[string]int{"business_writing": 5, "creative_writing": 4},
		}
		got := Infer(Input{Content: &sum})
		assert.Equal(t, []string{"Business Writing"}, got)
	})

	t.Run("empty summary adds nothing", func(t *testing.T) {
		sum := content.Summarize(nil)
		assert.Empty(t, Infer(Input{Content: &sum}))
		assert.Empty(t, Infer(Input{}))
	})
}
