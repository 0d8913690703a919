package content

import "regexp"

// rule is one entry of a first-match cascade: the label wins when at least
// min of its patterns match.
type rule[T any] struct {
	label    T
	min      int
	patterns []*regexp.Regexp
}

func wordSet(words ...string) map[string]bool {
	out := make(map[string]bool, len(words))
	for _, w := range words {
		out[w] = true
	}
	return out
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Document-type pattern groups, matched against lowercased text.
var (
	academicPatterns = compile(
		`\babstract\b`,
		`\bintroduction\b`,
		`\bmethodology\b`,
		`\bresults\b`,
		`\bconclusions?\b`,
		`\bet al\.`,
		`\breferences\b`,
		`\bliterature review\b`,
		`\bdoi:`,
		`\[\d+\]`,
	)
	technicalPatterns = compile(
		`\bapi\b`,
		`\bfunctions?\b`,
		`\bparameters?\b`,
		`\binstall(ation)?\b`,
		`\bconfiguration\b`,
		"```",
		`\breturns?\b`,
		`\bendpoints?\b`,
		`\bsyntax\b`,
		`\bdependenc(y|ies)\b`,
	)
	blogPatterns = compile(
		`\bin this (post|article|tutorial)\b`,
		`\btoday (i|we)\b`,
		`\bstep \d+\b`,
		`\bhow to\b`,
		`\btutorial\b`,
		`\bthanks for reading\b`,
		`\bsubscribe\b`,
		`\bcomment below\b`,
		`\blet's\b`,
		`\btips?\b`,
	)
	creativePatterns = compile(
		`\bonce upon a time\b`,
		`\bchapter \d+\b`,
		`"[^"\n]{1,120}[,.!?]" (he|she|they|i) (said|asked|replied)`,
		`\b(whispered|shouted|murmured|sighed)\b`,
		`\bprotagonist\b`,
		`\b(his|her|their) eyes\b`,
		`\bthe end\b`,
		`\b(poem|stanza|verse)\b`,
	)
)

// documentTypeRules is evaluated top to bottom; the first satisfied rule
// decides the document type.
var documentTypeRules = []rule[DocumentType]{
	{CreativeWriting, 2, creativePatterns},
	{BlogPost, 2, blogPatterns},
	{ResearchPaper, 3, academicPatterns},
	{TechnicalDocumentation, 3, technicalPatterns},
}

// writingStyleRules is evaluated top to bottom; text that satisfies none of
// them is formal.
var writingStyleRules = []rule[WritingStyle]{
	{StyleAcademic, 2, compile(
		`\bfurthermore\b`,
		`\bmoreover\b`,
		`\bhypothes[ie]s\b`,
		`\bet al\.`,
		`\bempirical(ly)?\b`,
		`\bsignificant(ly)?\b`,
	)},
	{StyleTechnical, 2, compile(
		`\bimplementation\b`,
		`\bfunctions?\b`,
		`\bapi\b`,
		`\bconfigur\w*`,
		`\bdeploy\w*`,
		"```",
	)},
	{StyleCasual, 2, compile(
		`\b(i'm|you're|it's|don't|can't|won't|gonna|wanna)\b`,
		`!`,
		`\b(awesome|cool|super|stuff|kinda)\b`,
		`\blol\b`,
	)},
	{StyleCreative, 2, compile(
		`\b(whispered|gazed|shimmering|heart|soul|dream(s|ed)?)\b`,
		`"[^"\n]{1,120}[,.!?]" (he|she|they|i) (said|asked|replied)`,
		`\bonce upon\b`,
	)},
}

// advancedVocabulary feeds the complexity score.
var advancedVocabulary = wordSet(
	"consequently", "nevertheless", "notwithstanding", "paradigm",
	"methodology", "empirical", "heuristic", "juxtaposition",
	"ubiquitous", "dichotomy", "epistemological", "ontology",
	"synthesis", "hypothesis", "phenomenon", "quantitative",
	"qualitative", "optimization", "asynchronous", "polymorphism",
	"abstraction", "comprehensive", "subsequently", "furthermore",
	"nonetheless", "predominantly", "theoretical", "algorithmic",
	"stochastic", "orthogonal", "idempotent", "paradigmatic",
)

type topic struct {
	name     string
	keywords []string
}

// topics is kept in reporting order; keywords are matched as substrings of
// the lowercased text.
var topics = []topic{
	{"Machine Learning", []string{"machine learning", "neural network", "deep learning", "training data", "model accuracy", "classifier"}},
	{"Data Science", []string{"data science", "data analysis", "dataset", "statistics", "visualization", "regression"}},
	{"Web Development", []string{"web development", "html", "css", "javascript", "frontend", "backend", "http"}},
	{"Software Engineering", []string{"software engineering", "design pattern", "refactoring", "code review", "architecture", "unit test"}},
	{"Cybersecurity", []string{"cybersecurity", "encryption", "vulnerability", "malware", "authentication", "firewall"}},
	{"Cloud Computing", []string{"cloud", "aws", "azure", "kubernetes", "serverless", "docker"}},
	{"Mobile Development", []string{"mobile app", "android", "ios app", "flutter", "react native"}},
	{"Databases", []string{"database", "sql", "nosql", "schema", "postgres", "mongodb"}},
	{"DevOps", []string{"devops", "ci/cd", "continuous integration", "deployment pipeline", "infrastructure as code"}},
	{"Blockchain", []string{"blockchain", "cryptocurrency", "smart contract", "ethereum", "bitcoin"}},
	{"Business", []string{"business", "marketing", "revenue", "customer", "startup", "stakeholder"}},
	{"Education", []string{"education", "student", "teacher", "curriculum", "learning outcomes", "classroom"}},
	{"Health", []string{"health", "medical", "patient", "disease", "clinical", "wellness"}},
	{"Science", []string{"scientific", "experiment", "physics", "chemistry", "biology", "laboratory"}},
	{"Politics", []string{"politics", "government", "election", "policy", "legislation", "democracy"}},
	{"Arts & Culture", []string{"painting", "museum", "literature", "music", "culture", "artist"}},
	{"History", []string{"historical", "history", "century", "ancient", "empire", "revolution"}},
	{"Environment", []string{"climate", "sustainability", "environmental", "ecosystem", "pollution", "renewable"}},
	{"Psychology", []string{"psychology", "cognitive", "mental health", "emotion", "therapy", "behavioral"}},
	{"Finance", []string{"finance", "financial", "investment", "stock market", "banking", "budget"}},
}

// Domain indicator keywords, counted per word occurrence.
var domainKeywords = map[string][]string{
	"academic_writing":  {"research", "study", "analysis", "hypothesis", "methodology", "findings", "literature", "theory"},
	"technical_writing": {"implementation", "system", "function", "configuration", "api", "documentation", "algorithm", "install"},
	"creative_writing":  {"story", "character", "narrative", "imagine", "dream", "emotion", "poem", "scene"},
	"business_writing":  {"market", "revenue", "stakeholder", "strategy", "customer", "quarterly", "proposal", "roi"},
}

// Structural feature patterns, matched against the original text.
var (
	citationRe = regexp.MustCompile(`\[\d+(?:\s*[,-]\s*\d+)*\]|\([A-Z][A-Za-z-]+(?: et al\.)?,? \d{4}\)|\bet al\.`)
	codeRe     = regexp.MustCompile("```|`[^`\n]+`")
	mathRe     = regexp.MustCompile(`\$[^$\n]+\$|\\\(|\\\[|\\begin\{(?:equation|align)|(?i:\b(?:theorem|lemma|proof|corollary)\b)`)
	listRe     = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+[.)])\s+\S`)
	tableRe    = regexp.MustCompile(`(?m)^\s*\|.*\|\s*$`)
	headingRe  = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
)

// Tokenizers.
var (
	wordRe      = regexp.MustCompile(`[\p{L}\p{N}]+`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
	acronymRe   = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	camelCaseRe = regexp.MustCompile(`\b[a-z]+[A-Z][A-Za-z0-9]*\b`)
)
