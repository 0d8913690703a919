package resume

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianshen/projinsight/internal/content"
	"github.com/julianshen/projinsight/internal/features"
)

func newTestGenerator(t *testing.T) (*Generator, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	return NewGenerator(mock), mock
}

func TestGenerateFallback(t *testing.T) {
	g, mock := newTestGenerator(t)

	set := g.Generate(Input{})

	assert.Equal(t, []string{FallbackBullet}, set.Bullets)
	assert.Equal(t, mock.Now(), set.GeneratedAt)
}

func TestGenerateFallbackWithoutCommits(t *testing.T) {
	g, _ := newTestGenerator(t)
	set := g.Generate(Input{
		Contributors: []Contributor{{Name: "Jane Doe", Commits: 0}},
		UserName:     "Jane",
		Features:     features.FeatureSet{TotalFiles: 1},
	})
	assert.Equal(t, []string{FallbackBullet}, set.Bullets)
}

func TestGenerateContributionShare(t *testing.T) {
	g, _ := newTestGenerator(t)

	set := g.Generate(Input{
		Contributors: []Contributor{
			{Name: "Jane Doe", Email: "jane@example.com", Commits: 30, LinesAdded: 1200},
			{Name: "Bob Smith", Email: "bob@example.com", Commits: 50, LinesAdded: 800},
		},
		UserName: "Jane",
	})

	require.Len(t, set.Bullets, 1)
	assert.Contains(t, set.Bullets[0], "37.5%")
	assert.Contains(t, set.Bullets[0], "30 commits")
	assert.Contains(t, set.Bullets[0], "1200 lines added")
}

func TestContributionBullet(t *testing.T) {
	tests := []struct {
		name         string
		contributors []Contributor
		userName     string
		userEmail    string
		want         string
		ok           bool
	}{
		{
			name: "matches summed across entries",
			contributors: []Contributor{
				{Name: "Jane Doe", Email: "jane@home.org", Commits: 10, LinesAdded: 100},
				{Name: "jane", Email: "jd@work.com", Commits: 5, LinesAdded: 50},
				{Name: "Bob", Email: "bob@work.com", Commits: 25},
			},
			userName: "JANE",
			want:     "Authored 37.5% of the project's history (15 commits, 150 lines added)",
			ok:       true,
		},
		{
			name: "email local part matches user name",
			contributors: []Contributor{
				{Name: "J. Doe", Email: "jdoe@example.com", Commits: 1, LinesAdded: 7},
				{Name: "Bob", Email: "bob@example.com", Commits: 3},
			},
			userName: "jdoe",
			want:     "Authored 25.0% of the project's history (1 commit, 7 lines added)",
			ok:       true,
		},
		{
			name: "email local part matches user email",
			contributors: []Contributor{
				{Name: "Someone", Email: "sam@corp.example", Commits: 4, LinesAdded: 40},
			},
			userEmail: "sam@personal.example",
			want:      "Authored 100.0% of the project's history (4 commits, 40 lines added)",
			ok:        true,
		},
		{
			name: "no match reports the total",
			contributors: []Contributor{
				{Name: "Jane Doe", Commits: 30},
				{Name: "Bob Smith", Commits: 50},
			},
			userName: "Alice",
			want:     "Contributed to a codebase with 80 commits of version history",
			ok:       true,
		},
		{
			name:         "single commit total",
			contributors: []Contributor{{Name: "Bob", Commits: 1}},
			want:         "Contributed to a codebase with 1 commit of version history",
			ok:           true,
		},
		{
			name:         "no history",
			contributors: nil,
			userName:     "Jane",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := contributionBullet(tt.contributors, tt.userName, tt.userEmail)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinItems(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"Go"}, "Go"},
		{[]string{"Go", "Rust"}, "Go and Rust"},
		{[]string{"Go", "Rust", "Zig"}, "Go, Rust and Zig"},
		{[]string{"A", "B", "C", "D"}, "A, B, C and D"},
		{[]string{"A", "B", "C", "D", "E", "F"}, "A, B, C, D and 2 more"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, joinItems(tt.items))
	}
}

func TestGenerateCoverageSuppressesGenericBullets(t *testing.T) {
	g, _ := newTestGenerator(t)

	set := g.Generate(Input{
		Languages:  []string{"Python", "Go"},
		Frameworks: []string{"Django"},
	})

	assert.Equal(t, []string{
		"Built RESTful API endpoints with structured request validation and error handling",
		"Built efficient services in Go using goroutines and channels",
		"Developed software using Python",
		"Built solutions with Django",
	}, set.Bullets)
}

func TestContainsTerm(t *testing.T) {
	assert.True(t, containsTerm("built efficient services in go", "go"))
	assert.False(t, containsTerm("django", "go"))
	assert.False(t, containsTerm("algorithms", "go"))
	assert.True(t, containsTerm("test automation", "automation"))
	assert.True(t, containsTerm("c# and c++", "c++"))
	assert.False(t, containsTerm("anything", ""))
}

func TestGenerateContentBullets(t *testing.T) {
	g, _ := newTestGenerator(t)
	sum := content.Summary{
		TotalDocuments:        3,
		TotalWords:            4500,
		PrimaryType:           content.ResearchPaper,
		PrimaryComplexity:     content.Advanced,
		DocumentTypes:         map[content.DocumentType]int{content.ResearchPaper: 2, content.BlogPost: 1},
		Topics:                []string{"Science", "Health", "History", "Education", "Finance", "Politics"},
		HasCitations:          true,
		HasMath:               true,
		AvgVocabularyRichness: 0.7,
	}

	set := g.Generate(Input{Content: &sum})

	assert.Equal(t, []string{
		"Authored 3 written documents totaling 4500 words, primarily research papers",
		"Created research papers and blog posts",
		"Wrote about Science, Health, History, Education and 2 more",
		"Supported writing with citations and mathematical notation",
		"Demonstrated advanced writing with a rich and varied vocabulary",
	}, set.Bullets)
}

func TestGenerateContentBulletsSingleDocument(t *testing.T) {
	g, _ := newTestGenerator(t)
	sum := content.Summary{
		TotalDocuments:        1,
		TotalWords:            120,
		PrimaryType:           content.GeneralArticle,
		PrimaryComplexity:     content.Advanced,
		DocumentTypes:         map[content.DocumentType]int{content.GeneralArticle: 1},
		AvgVocabularyRichness: 0.5,
	}

	set := g.Generate(Input{Content: &sum})

	assert.Equal(t, []string{"Authored 1 written document totaling 120 words, primarily articles"}, set.Bullets)
}

func TestGenerateEmptyContentSummaryIsIgnored(t *testing.T) {
	g, _ := newTestGenerator(t)
	sum := content.Summarize(nil)
	set := g.Generate(Input{Content: &sum})
	assert.Equal(t, []string{FallbackBullet}, set.Bullets)
}

func TestGenerateCodeAndScaleBullets(t *testing.T) {
	g, _ := newTestGenerator(t)

	set := g.Generate(Input{Features: features.FeatureSet{TotalFiles: 25, CodeCount: 20, TextCount: 5}})
	assert.Equal(t, []string{
		"Wrote and organized 20 source code files",
		"Managed a multi-disciplinary project spanning 25 files across 2 content categories",
	}, set.Bullets)

	set = g.Generate(Input{Features: features.FeatureSet{TotalFiles: 20, CodeCount: 1, ImageCount: 19}})
	assert.Equal(t, []string{"Wrote and organized 1 source code file"}, set.Bullets)

	set = g.Generate(Input{Features: features.FeatureSet{TotalFiles: 30, ImageCount: 30}})
	assert.Equal(t, []string{FallbackBullet}, set.Bullets)
}
