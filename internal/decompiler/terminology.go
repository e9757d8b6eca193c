package decompiler

// extractTerminology searches the text for every vocabulary term. A hit
// records the total match count and a context window around the first
// occurrence, clamped to document bounds.
func (d *Decompiler) extractTerminology(text string) []TerminologyHit {
	hits := []TerminologyHit{}
	for _, term := range vocabulary {
		re := termPatterns[term]
		matches := re.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}

		first := matches[0]
		start := first[0] - d.cfg.ContextWindow
		if start < 0 {
			start = 0
		}
		end := first[1] + d.cfg.ContextWindow
		if end > len(text) {
			end = len(text)
		}

		hits = append(hits, TerminologyHit{
			Term:       term,
			Context:    text[start:end],
			Frequency:  len(matches),
			Category:   categoryFor(term),
			Confidence: termConfidence,
		})
	}
	return hits
}
