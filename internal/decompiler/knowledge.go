package decompiler

import (
	"regexp"
	"strings"
)

// vocabulary is the fixed set of domain terms searched for during
// terminology extraction. Matching is case-insensitive and whole-word.
var vocabulary = []string{
	"bs5837",
	"rpa",
	"root protection area",
	"dbh",
	"crown spread",
	"canopy",
	"arboricultural",
	"tpo",
	"tree preservation order",
	"crown reduction",
	"pollarding",
	"deadwood",
	"pest",
	"pathogen",
	"veteran tree",
	"ancient woodland",
	"soil compaction",
	"method statement",
}

// categoryRule classifies a vocabulary term by substring, not exact match,
// so vocabulary additions pick up a category without touching the rules.
type categoryRule struct {
	substrings []string
	category   string
}

var categoryRules = []categoryRule{
	{[]string{"bs5837", "tpo", "preservation", "iso"}, "regulatory"},
	{[]string{"rpa", "root", "soil"}, "protection"},
	{[]string{"dbh", "spread", "height"}, "measurement"},
	{[]string{"crown", "pollard", "deadwood", "canopy"}, "management"},
	{[]string{"pest", "pathogen"}, "health"},
	{[]string{"veteran", "ancient"}, "heritage"},
}

// categoryFor returns the category of a term via substring classification.
func categoryFor(term string) string {
	lower := strings.ToLower(term)
	for _, rule := range categoryRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.category
			}
		}
	}
	return "general"
}

// compliancePattern pairs a named standard with its detection regex.
type compliancePattern struct {
	markerType string
	standard   string
	re         *regexp.Regexp
}

// compliancePatterns is the fixed list of compliance references detected in
// report text. At most one marker is recorded per pattern (first match).
var compliancePatterns = []compliancePattern{
	{"standard", "BS5837:2012", regexp.MustCompile(`(?i)BS\s*5837(?:\s*:\s*2012)?`)},
	{"body", "Arboricultural Association", regexp.MustCompile(`(?i)arboricultural\s+association`)},
	{"requirement", "RPA", regexp.MustCompile(`(?i)root\s+protection\s+area`)},
	{"standard", "ISO14001", regexp.MustCompile(`(?i)ISO\s*14001`)},
	{"statutory", "Tree Preservation Order", regexp.MustCompile(`(?i)tree\s+preservation\s+orders?`)},
}

// stopWords are excluded from keyword extraction. Words of length <= 3 are
// already filtered before this set is consulted.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "this": true,
	"that": true, "from": true, "have": true, "will": true, "are": true,
	"was": true, "were": true, "been": true, "they": true, "their": true,
	"there": true, "which": true, "would": true, "could": true, "should": true,
	"when": true, "where": true, "what": true, "your": true, "than": true,
	"then": true, "these": true, "those": true, "into": true, "about": true,
	"shall": true, "being": true, "also": true, "such": true, "each": true,
	"other": true, "more": true, "some": true, "only": true, "over": true,
	"within": true, "upon": true,
}

// termPatterns caches a compiled whole-word regex per vocabulary term.
var termPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(vocabulary))
	for _, term := range vocabulary {
		m[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return m
}()
