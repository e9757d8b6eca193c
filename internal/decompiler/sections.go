package decompiler

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	markdownHeading = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	romanHeading    = regexp.MustCompile(`^([IVX]+)\.\s+(.*)$`)
	numericHeading  = regexp.MustCompile(`^(\d+\.\d+)\s+(.*)$`)
	bulletItem      = regexp.MustCompile(`^[-*•]\s+`)
	numberedItem    = regexp.MustCompile(`^\d+[.)]\s+`)
)

// detectSections scans lines top to bottom and classifies each non-blank
// line by fixed precedence: heading, then list item, then paragraph. Short
// non-heading, non-list lines produce no section.
func (d *Decompiler) detectSections(text string) []Section {
	sections := []Section{}
	if text == "" {
		return sections
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var sec *Section
		switch {
		case markdownHeading.MatchString(line):
			m := markdownHeading.FindStringSubmatch(line)
			sec = newSection(SectionHeading, len(m[1]), strings.TrimSpace(m[2]), line)
		case d.isAllCapsHeading(line):
			sec = newSection(SectionHeading, 1, line, line)
		case romanHeading.MatchString(line):
			m := romanHeading.FindStringSubmatch(line)
			sec = newSection(SectionHeading, 2, strings.TrimSpace(m[2]), line)
		case numericHeading.MatchString(line):
			m := numericHeading.FindStringSubmatch(line)
			sec = newSection(SectionHeading, 3, strings.TrimSpace(m[2]), line)
		case bulletItem.MatchString(line) || numberedItem.MatchString(line):
			sec = newSection(SectionList, 0, "", line)
		case len(line) > d.cfg.ParagraphMinLen:
			sec = newSection(SectionParagraph, 0, "", line)
		default:
			continue
		}

		sec.ID = fmt.Sprintf("section-%d", len(sections))
		sections = append(sections, *sec)
	}
	return sections
}

// isAllCapsHeading reports whether line qualifies as an all-caps heading:
// long enough, contains at least one letter, and no lowercase letters.
func (d *Decompiler) isAllCapsHeading(line string) bool {
	if len(line) < d.cfg.AllCapsMinLen {
		return false
	}
	return line == strings.ToUpper(line) && line != strings.ToLower(line)
}

func newSection(typ SectionType, level int, title, content string) *Section {
	confidence := paragraphConfidence
	switch typ {
	case SectionHeading, SectionSubheading:
		confidence = headingConfidence
	case SectionList:
		confidence = listConfidence
	}
	return &Section{
		Type:    typ,
		Level:   level,
		Title:   title,
		Content: content,
		Metadata: SectionMetadata{
			WordCount:  len(strings.Fields(content)),
			LineCount:  1,
			HasNumbers: strings.ContainsAny(content, "0123456789"),
			HasBullets: bulletItem.MatchString(content) || numberedItem.MatchString(content),
			HasTables:  strings.Contains(content, "|"),
			Confidence: confidence,
		},
	}
}
