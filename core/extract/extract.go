// ABOUTME: Heuristic keyword/skill and hourly-rate extraction from record text
// ABOUTME: Matches a fixed technology vocabulary, not a full entity extractor

package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// vocabulary is the fixed set of technology names (languages, frameworks,
// platforms) matched against record text. Matching is lower-cased and
// word-boundary based.
var vocabulary = []string{
	"python", "javascript", "typescript", "go", "rust", "java", "kotlin",
	"swift", "ruby", "php", "c++", "c#", "scala", "elixir",
	"react", "vue", "angular", "svelte", "node.js", "django", "flask",
	"rails", "laravel", "spring", "fastapi",
	"docker", "kubernetes", "terraform", "aws", "azure", "gcp",
	"postgresql", "mysql", "mongodb", "redis", "kafka", "elasticsearch",
	"graphql", "grpc", "linux",
}

// ratePatterns match hourly-rate mentions in listing text. The first
// captured number of the first matching pattern wins per record.
var ratePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*(\d+(?:\.\d+)?)\s*(?:/|per\s+)(?:hr|hour)`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s+per\s+hour`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(?:hr|hour)`),
}

var wordSplit = regexp.MustCompile(`[\s,;()\[\]{}"']+`)

// Skills returns the distinct vocabulary hits in text, lower-cased, in
// order of first appearance in the vocabulary scan.
func Skills(text string) []string {
	lowered := strings.ToLower(text)
	tokens := tokenSet(lowered)

	var hits []string
	for _, tech := range vocabulary {
		if strings.ContainsAny(tech, ".+# ") {
			// Multi-character symbols and dotted names don't tokenize
			// cleanly; fall back to substring matching.
			if strings.Contains(lowered, tech) {
				hits = append(hits, tech)
			}
			continue
		}
		if tokens[tech] {
			hits = append(hits, tech)
		}
	}
	return hits
}

// HourlyRate returns the first hourly rate mentioned in text, in
// dollars, and whether one was found.
func HourlyRate(text string) (float64, bool) {
	lowered := strings.ToLower(text)
	for _, pattern := range ratePatterns {
		if m := pattern.FindStringSubmatch(lowered); m != nil {
			rate, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return rate, true
		}
	}
	return 0, false
}

// Occurrences counts how many times keyword appears in text,
// case-insensitively.
func Occurrences(text, keyword string) int {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), keyword)
}

func tokenSet(lowered string) map[string]bool {
	tokens := wordSplit.Split(lowered, -1)
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[strings.Trim(tok, ".,!?:;")] = true
	}
	return set
}
