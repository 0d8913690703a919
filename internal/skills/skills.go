// Package skills infers resume skill labels from the languages, frameworks,
// file types and written content a project demonstrates.
package skills

import (
	"sort"

	"github.com/julianshen/projinsight/internal/content"
	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/scan"
)

// Input holds the signals skills are inferred from. Files and Content are
// optional.
type Input struct {
	// Languages detected in the project.
	Languages []string

	// Frameworks detected in the project.
	Frameworks []string

	// Files of the project, used for file-type skills. Skipped records are
	// not counted.
	Files []scan.FileRecord

	// Content is the project's document summary, or nil when the project
	// has no analyzed documents.
	Content *content.Summary
}

// Infer returns the sorted, deduplicated skills demonstrated by in. Raw
// language and framework names are never returned. Infer is deterministic:
// identical input yields identical output.
func Infer(in Input) []string {
	s := make(skillSet)
	langs := set(in.Languages...)
	fws := set(in.Frameworks...)

	for _, l := range in.Languages {
		s.add(languageSkills[l]...)
	}
	for _, fw := range in.Frameworks {
		s.add(frameworkSkills[fw]...)
	}
	for _, c := range combinations {
		if countIn(fws, c.frameworks) >= 2 {
			s.add(c.skill)
		}
	}

	s.add(fileTypeSkills(in.Files)...)
	s.add(crossSignalSkills(langs, fws)...)
	if in.Content != nil && !in.Content.IsEmpty() {
		s.add(contentSkills(*in.Content)...)
	}

	for _, specific := range specificDocumentation {
		if s[specific] {
			delete(s, "Technical Writing")
			break
		}
	}
	for name := range langs {
		delete(s, name)
	}
	for name := range fws {
		delete(s, name)
	}
	return s.sorted()
}

// fileTypeSkills counts files per extension and applies each rule's volume
// threshold.
func fileTypeSkills(files []scan.FileRecord) []string {
	counts := make(map[string]int)
	for _, f := range files {
		if f.Skipped || filetype.HasIgnoredSegment(f.RelPath) {
			continue
		}
		counts[filetype.Ext(f.RelPath)]++
	}

	var out []string
	for _, r := range fileRules {
		n := 0
		for _, ext := range r.extensions {
			n += counts[ext]
		}
		if n >= r.min {
			out = append(out, r.skills...)
		}
	}
	return out
}

// crossSignalSkills infers broad area skills from combinations of languages
// and frameworks.
func crossSignalSkills(langs, fws map[string]bool) []string {
	scripting := countIn(langs, scriptingLanguages) > 0

	backend := countIn(langs, backendLanguages) > 0 ||
		(scripting && countIn(fws, backendFrameworks) > 0)
	frontend := (scripting && countIn(fws, frontendFrameworks) > 0) ||
		countIn(langs, markupLanguages) > 0

	var out []string
	switch {
	case backend && frontend:
		out = append(out, "Full-Stack Development")
	case backend:
		out = append(out, "Backend Development")
	case frontend:
		out = append(out, "Frontend Development")
	}

	if countIn(langs, mobileLanguages) > 0 || (scripting && countIn(fws, mobileFrameworks) > 0) {
		out = append(out, "Mobile Development")
	}
	if countIn(langs, dataLanguages) > 0 || countIn(fws, dataFrameworks) > 0 {
		out = append(out, "Data Science")
	}
	if countIn(fws, mlFrameworks) > 0 {
		out = append(out, "Machine Learning")
	}
	if countIn(fws, containerFrameworks) > 0 && countIn(langs, shellLanguages) > 0 {
		out = append(out, "DevOps")
	}
	return out
}

// contentSkills derives writing skills from a project's document summary.
func contentSkills(sum content.Summary) []string {
	var out []string
	types := sum.DocumentTypes
	research := types[content.ResearchPaper] > 0
	technicalDocs := types[content.TechnicalDocumentation] > 0

	if research {
		out = append(out, "Academic Research")
	}
	if types[content.CreativeWriting] > 0 {
		out = append(out, "Creative Writing")
	}

	technicalStyle := false
	for _, style := range sum.WritingStyles {
		switch style {
		case content.StyleAcademic:
			out = append(out, "Academic Writing")
		case content.StyleTechnical:
			out = append(out, "Technical Writing")
			technicalStyle = true
		case content.StyleCreative:
			out = append(out, "Creative Writing")
		}
	}
	if sum.PrimaryComplexity == content.Advanced {
		out = append(out, "Advanced Writing")
	}

	technicalTopic := false
	for _, t := range sum.Topics {
		if skill, ok := topicSkills[t]; ok {
			out = append(out, skill)
		}
		if technicalTopics[t] {
			technicalTopic = true
		}
	}

	if sum.HasCitations && research {
		out = append(out, "Research Methodology")
	}
	if sum.HasCodeBlocks && (technicalDocs || technicalStyle) {
		out = append(out, "Code Documentation")
	}
	if sum.HasMath && (research || technicalDocs) {
		out = append(out, "Mathematical Writing")
	}

	if types[content.BlogPost] > 0 {
		out = append(out, "Content Creation")
		if technicalStyle || technicalTopic || sum.HasCodeBlocks {
			out = append(out, "Technical Writing")
		}
	}

	if sum.TotalWords > 10000 {
		out = append(out, "Long-Form Content")
	}
	if sum.PrimaryType == content.ResearchPaper && types[content.ResearchPaper] >= 3 {
		out = append(out, "Research Portfolio")
	}

	for domain, n := range sum.DomainIndicators {
		if skill, ok := domainSkills[domain]; ok && n >= domainIndicatorMin {
			out = append(out, skill)
		}
	}
	return out
}

func countIn(present, table map[string]bool) int {
	n := 0
	for name := range present {
		if table[name] {
			n++
		}
	}
	return n
}

type skillSet map[string]bool

func (s skillSet) add(skills ...string) {
	for _, sk := range skills {
		s[sk] = true
	}
}

func (s skillSet) sorted() []string {
	out := make([]string, 0, len(s))
	for sk := range s {
		out = append(out, sk)
	}
	sort.Strings(out)
	return out
}
