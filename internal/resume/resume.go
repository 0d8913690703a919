// Package resume turns a project's analysis into resume-ready accomplishment
// bullets.
package resume

import (
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/julianshen/projinsight/internal/content"
	"github.com/julianshen/projinsight/internal/features"
)

// FallbackBullet is emitted when no other bullet applies.
const FallbackBullet = "Organized and maintained a structured collection of project files"

const (
	maxListed    = 4
	scaleMinimum = 20
)

// Contributor is one author in the project's version-control history.
type Contributor struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Commits      int    `json:"commits"`
	LinesAdded   int    `json:"lines_added"`
	LinesDeleted int    `json:"lines_deleted"`
}

// Input holds everything the bullets are built from.
type Input struct {
	Languages  []string
	Frameworks []string
	Skills     []string

	// Content is nil when the project has no analyzed documents.
	Content  *content.Summary
	Features features.FeatureSet

	Contributors []Contributor
	UserName     string
	UserEmail    string
}

// BulletSet is the ordered bullet list of one project.
type BulletSet struct {
	Bullets     []string  `json:"bullets"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Generator builds bullet sets, stamping them with its clock.
type Generator struct {
	clock clock.Clock
}

// NewGenerator returns a Generator using c, or the wall clock when c is nil.
func NewGenerator(c clock.Clock) *Generator {
	if c == nil {
		c = clock.New()
	}
	return &Generator{clock: c}
}

// Generate builds the bullets for in. Categories are emitted in a fixed
// order and items already mentioned by a contextual sentence are not
// repeated in the generic lists.
func (g *Generator) Generate(in Input) BulletSet {
	var bullets []string

	contextual := contextualBullets(in)
	bullets = append(bullets, contextual...)

	covered := strings.ToLower(strings.Join(contextual, "\n"))
	if langs := uncovered(in.Languages, covered); len(langs) > 0 {
		bullets = append(bullets, "Developed software using "+joinItems(langs))
	}
	if fws := uncovered(in.Frameworks, covered); len(fws) > 0 {
		bullets = append(bullets, "Built solutions with "+joinItems(fws))
	}
	if skills := uncovered(in.Skills, covered); len(skills) > 0 {
		bullets = append(bullets, "Applied expertise in "+joinItems(skills))
	}

	if in.Content != nil && in.Content.TotalDocuments > 0 {
		bullets = append(bullets, contentBullets(*in.Content)...)
	}

	if n := in.Features.CodeCount; n > 0 {
		bullets = append(bullets, fmt.Sprintf("Wrote and organized %d source code %s", n, plural(n, "file", "files")))
	}

	if b, ok := contributionBullet(in.Contributors, in.UserName, in.UserEmail); ok {
		bullets = append(bullets, b)
	}

	if fs := in.Features; fs.TotalFiles > scaleMinimum && fs.CategoriesPresent() >= 2 {
		bullets = append(bullets, fmt.Sprintf(
			"Managed a multi-disciplinary project spanning %d files across %d content categories",
			fs.TotalFiles, fs.CategoriesPresent()))
	}

	if len(bullets) == 0 {
		bullets = []string{FallbackBullet}
	}
	return BulletSet{Bullets: bullets, GeneratedAt: g.clock.Now()}
}

// contextualBullets returns the sentences of every template whose keywords
// match a detected language, framework or skill.
func contextualBullets(in Input) []string {
	items := make([]string, 0, len(in.Languages)+len(in.Frameworks)+len(in.Skills))
	for _, group := range [][]string{in.Languages, in.Frameworks, in.Skills} {
		for _, it := range group {
			items = append(items, strings.ToLower(it))
		}
	}

	var out []string
	for _, t := range contextualTemplates {
		if matchesAny(t.keywords, items) {
			out = append(out, t.sentences...)
		}
	}
	return out
}

func matchesAny(keywords, items []string) bool {
	for _, kw := range keywords {
		for _, it := range items {
			if containsTerm(it, kw) {
				return true
			}
		}
	}
	return false
}

// containsTerm reports whether term occurs in text delimited by
// non-alphanumeric characters or the text boundaries.
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], term)
		if j < 0 {
			return false
		}
		start := i + j
		if isDelimiter(text, start-1) && isDelimiter(text, start+len(term)) {
			return true
		}
		i = start + 1
	}
	return false
}

// isDelimiter reports whether the byte at i is outside text or is not a
// lowercase letter or digit.
func isDelimiter(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	c := text[i]
	return (c < 'a' || c > 'z') && (c < '0' || c > '9')
}

// uncovered returns the items not mentioned in the covered text.
func uncovered(items []string, covered string) []string {
	var out []string
	for _, it := range items {
		if !containsTerm(covered, strings.ToLower(it)) {
			out = append(out, it)
		}
	}
	return out
}

// joinItems renders a list: "X", "X and Y", "X, Y and Z", and past four
// items "A, B, C, D and N more".
func joinItems(items []string) string {
	switch n := len(items); {
	case n == 0:
		return ""
	case n == 1:
		return items[0]
	case n <= maxListed:
		return strings.Join(items[:n-1], ", ") + " and " + items[n-1]
	default:
		return fmt.Sprintf("%s and %d more", strings.Join(items[:maxListed], ", "), n-maxListed)
	}
}

var typeNames = map[content.DocumentType][2]string{
	content.ResearchPaper:          {"research paper", "research papers"},
	content.TechnicalDocumentation: {"technical document", "technical documents"},
	content.BlogPost:               {"blog post", "blog posts"},
	content.CreativeWriting:        {"creative writing piece", "creative writing pieces"},
	content.GeneralArticle:         {"article", "articles"},
}

// specializedTypes are named in the type bullet, in this order.
var specializedTypes = []content.DocumentType{
	content.ResearchPaper,
	content.TechnicalDocumentation,
	content.BlogPost,
	content.CreativeWriting,
}

func contentBullets(sum content.Summary) []string {
	var out []string

	n := sum.TotalDocuments
	primary := "documents"
	if names, ok := typeNames[sum.PrimaryType]; ok {
		primary = names[1]
	}
	out = append(out, fmt.Sprintf("Authored %d written %s totaling %d words, primarily %s",
		n, plural(n, "document", "documents"), sum.TotalWords, primary))

	var created []string
	for _, t := range specializedTypes {
		if c := sum.DocumentTypes[t]; c > 0 {
			created = append(created, typeNames[t][1])
		}
	}
	if len(created) > 0 {
		out = append(out, "Created "+joinItems(created))
	}

	if len(sum.Topics) > 0 {
		out = append(out, "Wrote about "+joinItems(sum.Topics))
	}

	var extras []string
	if sum.HasCitations {
		extras = append(extras, "citations")
	}
	if sum.HasCodeBlocks {
		extras = append(extras, "code examples")
	}
	if sum.HasMath {
		extras = append(extras, "mathematical notation")
	}
	if len(extras) > 0 {
		out = append(out, "Supported writing with "+joinItems(extras))
	}

	if sum.PrimaryComplexity == content.Advanced && sum.AvgVocabularyRichness > 0.6 {
		out = append(out, "Demonstrated advanced writing with a rich and varied vocabulary")
	}
	return out
}

// contributionBullet reports the user's share of the commit history when
// they can be matched to contributors, and the total commit count
// otherwise.
func contributionBullet(contributors []Contributor, userName, userEmail string) (string, bool) {
	var total, commits, added int
	matched := false
	for _, c := range contributors {
		total += c.Commits
		if matchesUser(c, userName, userEmail) {
			matched = true
			commits += c.Commits
			added += c.LinesAdded
		}
	}
	if total <= 0 {
		return "", false
	}
	if !matched {
		return fmt.Sprintf("Contributed to a codebase with %d %s of version history",
			total, plural(total, "commit", "commits")), true
	}
	pct := float64(commits) / float64(total) * 100
	return fmt.Sprintf("Authored %.1f%% of the project's history (%d %s, %d lines added)",
		pct, commits, plural(commits, "commit", "commits"), added), true
}

// matchesUser matches a contributor by full name, by first name, or by the
// local part of their email against the user name or the user's email.
func matchesUser(c Contributor, userName, userEmail string) bool {
	name := strings.TrimSpace(userName)
	local := emailLocal(c.Email)
	if name != "" {
		if strings.EqualFold(c.Name, name) {
			return true
		}
		if first, _, _ := strings.Cut(strings.TrimSpace(c.Name), " "); first != "" && strings.EqualFold(first, name) {
			return true
		}
		if local != "" && strings.EqualFold(local, name) {
			return true
		}
	}
	if userLocal := emailLocal(userEmail); userLocal != "" && local != "" {
		return strings.EqualFold(local, userLocal)
	}
	return false
}

func emailLocal(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
