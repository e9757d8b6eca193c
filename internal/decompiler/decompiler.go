// Package decompiler heuristically reverse-engineers the logical structure
// of an arboricultural report from unstructured text. The whole pipeline is
// a pure function of the input string plus a small fixed knowledge base;
// it performs no I/O and is safe to invoke concurrently.
package decompiler

import (
	"time"

	"github.com/google/uuid"
)

// InputFormat describes the source of the report text. It is accepted but
// does not currently alter processing; reserved for future branching.
type InputFormat string

const (
	FormatText     InputFormat = "text"
	FormatMarkdown InputFormat = "markdown"
	FormatPDFText  InputFormat = "pdf_text"
	FormatPasted   InputFormat = "pasted"
)

// SectionType classifies a detected section.
type SectionType string

const (
	SectionHeading    SectionType = "heading"
	SectionSubheading SectionType = "subheading"
	SectionList       SectionType = "list"
	SectionParagraph  SectionType = "paragraph"
)

// Section is one recognized line of the document, in document order.
type Section struct {
	ID       string          `json:"id"`
	Type     SectionType     `json:"type"`
	Level    int             `json:"level"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Metadata SectionMetadata `json:"metadata"`
}

// SectionMetadata is derived purely from the section's own line text.
type SectionMetadata struct {
	WordCount  int     `json:"wordCount"`
	LineCount  int     `json:"lineCount"`
	HasNumbers bool    `json:"hasNumbers"`
	HasBullets bool    `json:"hasBullets"`
	HasTables  bool    `json:"hasTables"`
	Confidence float64 `json:"confidence"`
}

// ReportMetadata holds document-level metadata extracted from labeled
// fields in the opening lines plus a whole-document word-frequency pass.
type ReportMetadata struct {
	WordCount   int      `json:"wordCount"`
	Keywords    []string `json:"keywords"`
	Title       string   `json:"title,omitempty"`
	Author      string   `json:"author,omitempty"`
	Date        string   `json:"date,omitempty"`
	Client      string   `json:"client,omitempty"`
	SiteAddress string   `json:"siteAddress,omitempty"`
	ReportType  string   `json:"reportType,omitempty"`
}

// TerminologyHit records one known domain term found in the text.
type TerminologyHit struct {
	Term       string  `json:"term"`
	Context    string  `json:"context"`
	Frequency  int     `json:"frequency"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// ComplianceMarker records a detected reference to a named standard.
type ComplianceMarker struct {
	Type       string  `json:"type"`
	Text       string  `json:"text"`
	Standard   string  `json:"standard"`
	Confidence float64 `json:"confidence"`
}

// StructureMap aggregates statistics describing the document's sectioning.
type StructureMap struct {
	SectionCount         int     `json:"sectionCount"`
	Depth                int     `json:"depth"`
	AverageSectionLength float64 `json:"averageSectionLength"`
	HasAppendices        bool    `json:"hasAppendices"`
	HasMethodology       bool    `json:"hasMethodology"`
	HasLegalSections     bool    `json:"hasLegalSections"`
}

// DecompiledReport is the structured breakdown of one report text.
type DecompiledReport struct {
	ID                string             `json:"id"`
	Sections          []Section          `json:"sections"`
	Metadata          ReportMetadata     `json:"metadata"`
	Terminology       []TerminologyHit   `json:"terminology"`
	ComplianceMarkers []ComplianceMarker `json:"complianceMarkers"`
	StructureMap      StructureMap       `json:"structureMap"`
	ConfidenceScore   float64            `json:"confidenceScore"`
	ProcessingTimeMs  int64              `json:"processingTimeMs"`
}

// Per-section-type confidence values.
const (
	headingConfidence   = 0.9
	listConfidence      = 0.8
	paragraphConfidence = 0.6
	termConfidence      = 0.8
	markerConfidence    = 0.8
)

// Confidence score composition.
const (
	baseScore    = 0.5
	sectionBonus = 0.2
	termBonus    = 0.15
	markerBonus  = 0.15
)

// Config holds the decompiler's tunable thresholds. The zero value is
// usable; unset fields fall back to the original heuristic defaults.
type Config struct {
	// AllCapsMinLen is the minimum length for an all-caps line to be
	// treated as a heading.
	AllCapsMinLen int
	// ParagraphMinLen is the strict lower bound on line length for a
	// non-heading, non-list line to become a paragraph section.
	ParagraphMinLen int
	// MetadataScanLines is how many opening lines are scanned for
	// colon-delimited labeled fields.
	MetadataScanLines int
	// ContextWindow is the number of characters captured on each side of
	// a terminology match.
	ContextWindow int
	// MaxKeywords caps the extracted keyword list.
	MaxKeywords int
}

// DefaultConfig returns the original heuristic thresholds.
func DefaultConfig() Config {
	return Config{
		AllCapsMinLen:     10,
		ParagraphMinLen:   20,
		MetadataScanLines: 20,
		ContextWindow:     50,
		MaxKeywords:       10,
	}
}

// Decompiler converts raw report text into a DecompiledReport.
type Decompiler struct {
	cfg Config
}

// New creates a Decompiler. Zero-valued config fields take defaults.
func New(cfg Config) *Decompiler {
	def := DefaultConfig()
	if cfg.AllCapsMinLen <= 0 {
		cfg.AllCapsMinLen = def.AllCapsMinLen
	}
	if cfg.ParagraphMinLen <= 0 {
		cfg.ParagraphMinLen = def.ParagraphMinLen
	}
	if cfg.MetadataScanLines <= 0 {
		cfg.MetadataScanLines = def.MetadataScanLines
	}
	if cfg.ContextWindow <= 0 {
		cfg.ContextWindow = def.ContextWindow
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = def.MaxKeywords
	}
	return &Decompiler{cfg: cfg}
}

// Decompile runs the full pipeline over text. It is total over any string
// input, including empty, in which case most outputs are simply empty.
// The format parameter is accepted for future branching and does not
// currently alter processing.
func (d *Decompiler) Decompile(text string, format InputFormat) *DecompiledReport {
	_ = format
	start := time.Now()

	normalized := normalize(text)
	sections := d.detectSections(normalized)
	metadata := d.extractMetadata(normalized)
	terminology := d.extractTerminology(normalized)
	markers := detectComplianceMarkers(normalized)
	structure := buildStructureMap(sections)

	score := baseScore
	if len(sections) > 0 {
		score += sectionBonus
	}
	if len(terminology) > 0 {
		score += termBonus
	}
	if len(markers) > 0 {
		score += markerBonus
	}
	if score > 1.0 {
		score = 1.0
	}

	return &DecompiledReport{
		ID:                uuid.NewString(),
		Sections:          sections,
		Metadata:          metadata,
		Terminology:       terminology,
		ComplianceMarkers: markers,
		StructureMap:      structure,
		ConfidenceScore:   score,
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
	}
}
