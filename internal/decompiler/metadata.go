package decompiler

import (
	"sort"
	"strings"
)

// metadataLabels maps a lowercase line prefix to the metadata field it
// populates. Site and location are synonyms for the site address.
var metadataLabels = []struct {
	prefix string
	assign func(*ReportMetadata, string)
}{
	{"author:", func(m *ReportMetadata, v string) { m.Author = v }},
	{"date:", func(m *ReportMetadata, v string) { m.Date = v }},
	{"client:", func(m *ReportMetadata, v string) { m.Client = v }},
	{"site:", func(m *ReportMetadata, v string) { m.SiteAddress = v }},
	{"location:", func(m *ReportMetadata, v string) { m.SiteAddress = v }},
	{"report type:", func(m *ReportMetadata, v string) { m.ReportType = v }},
}

// extractMetadata scans the opening lines for colon-delimited labeled
// fields and runs a whole-document word-frequency pass for keywords.
func (d *Decompiler) extractMetadata(text string) ReportMetadata {
	meta := ReportMetadata{
		WordCount: len(strings.Fields(text)),
		Keywords:  d.extractKeywords(text),
	}
	if text == "" {
		return meta
	}

	lines := strings.Split(text, "\n")

	if first := strings.TrimSpace(lines[0]); len(first) >= 10 && len(first) <= 200 {
		meta.Title = first
	}

	limit := d.cfg.MetadataScanLines
	if limit > len(lines) {
		limit = len(lines)
	}
	seen := map[string]bool{}
	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		for _, label := range metadataLabels {
			if seen[label.prefix] || !strings.HasPrefix(lower, label.prefix) {
				continue
			}
			if idx := strings.Index(trimmed, ":"); idx >= 0 {
				label.assign(&meta, strings.TrimSpace(trimmed[idx+1:]))
				seen[label.prefix] = true
			}
		}
	}
	return meta
}

// extractKeywords returns the most frequent significant words, sorted by
// descending frequency with ties broken by first-encounter order.
func (d *Decompiler) extractKeywords(text string) []string {
	counts := map[string]int{}
	order := []string{}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = stripNonAlnum(word)
		if len(word) <= 3 || stopWords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > d.cfg.MaxKeywords {
		order = order[:d.cfg.MaxKeywords]
	}
	return order
}

func stripNonAlnum(word string) string {
	var b strings.Builder
	for _, r := range word {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
