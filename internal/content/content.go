// Package content analyzes written documents: document type, writing style,
// complexity, topics and structural features, plus a project-level summary
// that the skill engine consumes.
package content

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DocumentType is the coarse kind of a document.
type DocumentType string

const (
	ResearchPaper          DocumentType = "research_paper"
	TechnicalDocumentation DocumentType = "technical_documentation"
	BlogPost               DocumentType = "blog_post"
	CreativeWriting        DocumentType = "creative_writing"
	GeneralArticle         DocumentType = "general_article"
	UnknownType            DocumentType = "unknown"
)

// WritingStyle is the register a document is written in.
type WritingStyle string

const (
	StyleAcademic  WritingStyle = "academic"
	StyleTechnical WritingStyle = "technical"
	StyleCasual    WritingStyle = "casual"
	StyleCreative  WritingStyle = "creative"
	StyleFormal    WritingStyle = "formal"
	StyleUnknown   WritingStyle = "unknown"
)

// Complexity grades the vocabulary and sentence structure of a document.
type Complexity string

const (
	Basic        Complexity = "basic"
	Intermediate Complexity = "intermediate"
	Advanced     Complexity = "advanced"
)

const wordsPerMinute = 200

// maxTopics bounds the topics reported per document and per summary.
const maxTopics = 5

// Analysis is the result of analyzing one document.
type Analysis struct {
	WordCount      int `json:"word_count"`
	CharacterCount int `json:"character_count"`
	ParagraphCount int `json:"paragraph_count"`
	SentenceCount  int `json:"sentence_count"`

	DocumentType DocumentType `json:"document_type"`
	WritingStyle WritingStyle `json:"writing_style"`
	Complexity   Complexity   `json:"complexity"`
	Topics       []string     `json:"topics"`

	HasCitations  bool `json:"has_citations"`
	HasCodeBlocks bool `json:"has_code_blocks"`
	HasMath       bool `json:"has_math"`
	HasLists      bool `json:"has_lists"`
	HasTables     bool `json:"has_tables"`
	HasHeadings   bool `json:"has_headings"`

	AvgWordLength        float64 `json:"avg_word_length"`
	AvgSentenceLength    float64 `json:"avg_sentence_length"`
	ReadTimeMinutes      int     `json:"read_time_minutes"`
	VocabularyRichness   float64 `json:"vocabulary_richness"`
	SpecializedTermCount int     `json:"specialized_term_count"`

	DomainIndicators map[string]int `json:"domain_indicators"`
}

// IsEmpty reports whether the analysis is the canonical record for
// whitespace-only input.
func (a Analysis) IsEmpty() bool {
	return a.WordCount == 0 && a.DocumentType == UnknownType
}

// empty returns the canonical record for empty input.
func empty() Analysis {
	return Analysis{
		DocumentType:     UnknownType,
		WritingStyle:     StyleUnknown,
		Complexity:       Basic,
		Topics:           []string{},
		DomainIndicators: map[string]int{},
	}
}

// Analyze computes the document analysis of text. It is pure: the same text
// always yields the same record.
func Analyze(text string) Analysis {
	if strings.TrimSpace(text) == "" {
		return empty()
	}

	lower := strings.ToLower(text)
	words := wordRe.FindAllString(lower, -1)
	sentences := nonBlank(sentenceRe.Split(text, -1))
	paragraphs := nonBlank(paragraphRe.Split(text, -1))

	a := Analysis{
		WordCount:      len(words),
		CharacterCount: utf8.RuneCountInString(text),
		ParagraphCount: len(paragraphs),
		SentenceCount:  len(sentences),
		Topics:         detectTopics(lower),

		HasCitations:  citationRe.MatchString(text),
		HasCodeBlocks: codeRe.MatchString(text),
		HasMath:       mathRe.MatchString(text),
		HasLists:      listRe.MatchString(text),
		HasTables:     tableRe.MatchString(text),
		HasHeadings:   headingRe.MatchString(text),

		SpecializedTermCount: specializedTerms(text),
		DomainIndicators:     domainIndicators(words),
	}

	if len(words) > 0 {
		letters := 0
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			letters += utf8.RuneCountInString(w)
			unique[w] = struct{}{}
		}
		a.AvgWordLength = float64(letters) / float64(len(words))
		a.VocabularyRichness = float64(len(unique)) / float64(len(words))
	}
	if len(sentences) > 0 {
		a.AvgSentenceLength = float64(len(words)) / float64(len(sentences))
	}
	a.ReadTimeMinutes = max(1, len(words)/wordsPerMinute)

	a.DocumentType = cascade(documentTypeRules, lower, GeneralArticle)
	a.WritingStyle = cascade(writingStyleRules, lower, StyleFormal)
	a.Complexity = complexity(words, a.AvgWordLength, a.AvgSentenceLength)
	return a
}

// cascade returns the label of the first rule whose hit count reaches its
// minimum, or fallback.
func cascade[T any](rules []rule[T], text string, fallback T) T {
	for _, r := range rules {
		if hits(r.patterns, text) >= r.min {
			return r.label
		}
	}
	return fallback
}

// hits counts the distinct patterns that match text.
func hits(patterns []*regexp.Regexp, text string) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			n++
		}
	}
	return n
}

func complexity(words []string, avgWordLen, avgSentenceLen float64) Complexity {
	advanced := 0
	for _, w := range words {
		if advancedVocabulary[w] {
			advanced++
		}
	}

	if len(words) < 50 {
		if advanced >= 3 {
			return Advanced
		}
		return Basic
	}

	score := 0
	if avgWordLen > 5.5 {
		score++
	}
	if avgSentenceLen > 20 {
		score++
	}
	if advanced >= 3 {
		score++
	}
	switch {
	case score >= 2:
		return Advanced
	case score == 1:
		return Intermediate
	default:
		return Basic
	}
}

func detectTopics(lower string) []string {
	out := []string{}
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, t.name)
				break
			}
		}
		if len(out) == maxTopics {
			break
		}
	}
	return out
}

// specializedTerms counts distinct acronyms and camelCase identifiers.
func specializedTerms(text string) int {
	seen := make(map[string]struct{})
	for _, m := range acronymRe.FindAllString(text, -1) {
		seen[m] = struct{}{}
	}
	for _, m := range camelCaseRe.FindAllString(text, -1) {
		seen[m] = struct{}{}
	}
	return len(seen)
}

func domainIndicators(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	out := map[string]int{}
	for domain, keywords := range domainKeywords {
		n := 0
		for _, kw := range keywords {
			n += counts[kw]
		}
		if n > 0 {
			out[domain] = n
		}
	}
	return out
}

func nonBlank(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
