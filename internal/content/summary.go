package content

import "sort"

// Summary merges the analyses of every document in a project.
type Summary struct {
	TotalDocuments int `json:"total_documents"`
	TotalWords     int `json:"total_words"`
	TotalSentences int `json:"total_sentences"`
	TotalReadTime  int `json:"total_read_time_minutes"`

	PrimaryType       DocumentType         `json:"primary_document_type"`
	PrimaryStyle      WritingStyle         `json:"primary_writing_style"`
	PrimaryComplexity Complexity           `json:"primary_complexity"`
	DocumentTypes     map[DocumentType]int `json:"document_types"`
	WritingStyles     []WritingStyle       `json:"writing_styles"`
	Complexities      []Complexity         `json:"complexities"`
	Topics            []string             `json:"topics"`
	DomainIndicators  map[string]int       `json:"domain_indicators"`

	HasCitations  bool `json:"has_citations"`
	HasCodeBlocks bool `json:"has_code_blocks"`
	HasMath       bool `json:"has_math"`
	HasLists      bool `json:"has_lists"`
	HasTables     bool `json:"has_tables"`
	HasHeadings   bool `json:"has_headings"`

	AvgWordCount          float64 `json:"avg_word_count"`
	AvgVocabularyRichness float64 `json:"avg_vocabulary_richness"`
}

// IsEmpty reports whether no document contributed to the summary.
func (s Summary) IsEmpty() bool { return s.TotalDocuments == 0 }

// Summarize merges per-document analyses in the order given. Empty records
// are left out. "Most common" ties resolve to the value seen first.
func Summarize(docs []Analysis) Summary {
	s := Summary{
		PrimaryType:       UnknownType,
		PrimaryStyle:      StyleUnknown,
		PrimaryComplexity: Basic,
		DocumentTypes:     map[DocumentType]int{},
		WritingStyles:     []WritingStyle{},
		Complexities:      []Complexity{},
		Topics:            []string{},
		DomainIndicators:  map[string]int{},
	}

	var (
		types        = newTally[DocumentType]()
		styles       = newTally[WritingStyle]()
		complexities = newTally[Complexity]()
		topicCounts  = newTally[string]()
		richness     float64
	)
	for _, d := range docs {
		if d.IsEmpty() {
			continue
		}
		s.TotalDocuments++
		s.TotalWords += d.WordCount
		s.TotalSentences += d.SentenceCount
		s.TotalReadTime += d.ReadTimeMinutes
		richness += d.VocabularyRichness

		types.add(d.DocumentType)
		styles.add(d.WritingStyle)
		complexities.add(d.Complexity)
		for _, t := range d.Topics {
			topicCounts.add(t)
		}
		for k, v := range d.DomainIndicators {
			s.DomainIndicators[k] += v
		}

		s.HasCitations = s.HasCitations || d.HasCitations
		s.HasCodeBlocks = s.HasCodeBlocks || d.HasCodeBlocks
		s.HasMath = s.HasMath || d.HasMath
		s.HasLists = s.HasLists || d.HasLists
		s.HasTables = s.HasTables || d.HasTables
		s.HasHeadings = s.HasHeadings || d.HasHeadings
	}
	if s.TotalDocuments == 0 {
		return s
	}

	s.PrimaryType = types.top(1)[0]
	s.PrimaryStyle = styles.top(1)[0]
	s.PrimaryComplexity = complexities.top(1)[0]
	for _, t := range types.order {
		s.DocumentTypes[t] = types.counts[t]
	}
	s.WritingStyles = append(s.WritingStyles, styles.order...)
	s.Complexities = append(s.Complexities, complexities.order...)
	s.Topics = append(s.Topics, topicCounts.top(maxTopics)...)
	s.AvgWordCount = float64(s.TotalWords) / float64(s.TotalDocuments)
	s.AvgVocabularyRichness = richness / float64(s.TotalDocuments)
	return s
}

// tally counts values and remembers the order they first appeared in.
type tally[T comparable] struct {
	counts map[T]int
	order  []T
}

func newTally[T comparable]() *tally[T] {
	return &tally[T]{counts: make(map[T]int)}
}

func (t *tally[T]) add(v T) {
	if _, ok := t.counts[v]; !ok {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

// top returns up to n values by descending count, ties in first-seen order.
func (t *tally[T]) top(n int) []T {
	ranked := append([]T(nil), t.order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.counts[ranked[i]] > t.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
