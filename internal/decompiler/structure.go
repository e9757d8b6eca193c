package decompiler

import "strings"

// buildStructureMap folds over the section list to produce aggregate
// statistics about the document's structure.
func buildStructureMap(sections []Section) StructureMap {
	sm := StructureMap{SectionCount: len(sections)}
	if len(sections) == 0 {
		return sm
	}

	totalWords := 0
	for _, sec := range sections {
		if sec.Level > sm.Depth {
			sm.Depth = sec.Level
		}
		totalWords += sec.Metadata.WordCount

		title := strings.ToLower(sec.Title)
		if strings.Contains(title, "appendix") {
			sm.HasAppendices = true
		}
		if strings.Contains(title, "methodology") {
			sm.HasMethodology = true
		}
		if strings.Contains(title, "legal") ||
			strings.Contains(title, "compliance") ||
			strings.Contains(title, "regulation") {
			sm.HasLegalSections = true
		}
	}
	sm.AverageSectionLength = float64(totalWords) / float64(len(sections))
	return sm
}
