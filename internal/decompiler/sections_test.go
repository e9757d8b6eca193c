package decompiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSections_HeadingKinds(t *testing.T) {
	d := New(Config{})

	tests := []struct {
		name  string
		line  string
		typ   SectionType
		level int
		title string
	}{
		{"markdown level 1", "# Site Overview", SectionHeading, 1, "Site Overview"},
		{"markdown level 4", "#### Constraints", SectionHeading, 4, "Constraints"},
		{"all caps", "TREE SURVEY REPORT", SectionHeading, 1, "TREE SURVEY REPORT"},
		{"roman numeral", "IV. Results of the survey", SectionHeading, 2, "Results of the survey"},
		{"two-level numeric", "2.3 Survey methodology", SectionHeading, 3, "Survey methodology"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := d.detectSections(tt.line)
			require.Len(t, sections, 1)
			assert.Equal(t, tt.typ, sections[0].Type)
			assert.Equal(t, tt.level, sections[0].Level)
			assert.Equal(t, tt.title, sections[0].Title)
			assert.Equal(t, 0.9, sections[0].Metadata.Confidence)
		})
	}
}

func TestDetectSections_ListItems(t *testing.T) {
	d := New(Config{})

	for _, line := range []string{
		"- remove deadwood from T4",
		"* fell T7",
		"• install protective fencing",
		"1. crown lift to 4m",
		"2) repeat inspection in 12 months",
	} {
		sections := d.detectSections(line)
		require.Len(t, sections, 1, "line %q", line)
		assert.Equal(t, SectionList, sections[0].Type, "line %q", line)
		assert.Equal(t, 0.8, sections[0].Metadata.Confidence)
		assert.True(t, sections[0].Metadata.HasBullets)
	}
}

func TestDetectSections_ParagraphLengthBoundary(t *testing.T) {
	d := New(Config{})

	// Exactly 21 non-heading, non-bullet characters: paragraph.
	long := strings.Repeat("x", 21)
	sections := d.detectSections(long)
	require.Len(t, sections, 1)
	assert.Equal(t, SectionParagraph, sections[0].Type)
	assert.Equal(t, 0.6, sections[0].Metadata.Confidence)

	// Exactly 20 characters: dropped.
	assert.Empty(t, d.detectSections(strings.Repeat("x", 20)))
}

func TestDetectSections_BlankLinesProduceNoSection(t *testing.T) {
	d := New(Config{})
	text := "# Heading\n\n\nThis paragraph sits after blank lines in the text."
	sections := d.detectSections(normalize(text))
	assert.Len(t, sections, 2)
}

func TestDetectSections_AllCapsRequiresMinLength(t *testing.T) {
	d := New(Config{})

	// 9 characters of caps: too short for a heading, too short for a paragraph.
	assert.Empty(t, d.detectSections("SHORTCAPS"))

	// 10 characters qualifies.
	sections := d.detectSections("CAPITALISE")
	require.Len(t, sections, 1)
	assert.Equal(t, SectionHeading, sections[0].Type)
	assert.Equal(t, 1, sections[0].Level)
}

func TestDetectSections_NumberedListIsNotNumericHeading(t *testing.T) {
	d := New(Config{})
	sections := d.detectSections("1. single-level numbers are list items")
	require.Len(t, sections, 1)
	assert.Equal(t, SectionList, sections[0].Type)
}

func TestDetectSections_LineMetadata(t *testing.T) {
	d := New(Config{})
	sections := d.detectSections("The survey recorded 42 trees | schedule follows below")
	require.Len(t, sections, 1)
	meta := sections[0].Metadata
	assert.Equal(t, 9, meta.WordCount)
	assert.Equal(t, 1, meta.LineCount)
	assert.True(t, meta.HasNumbers)
	assert.True(t, meta.HasTables)
	assert.False(t, meta.HasBullets)
}

func TestNormalize(t *testing.T) {
	in := "line one\r\nline\ttwo   \n\n\n\nline three\n\n"
	out := normalize(in)
	assert.Equal(t, "line one\nline    two\n\nline three", out)
}

func TestExtractMetadata_LabeledFields(t *testing.T) {
	d := New(Config{})
	text := "Condition Survey 2024\nAuthor: A. Harris\nLocation: 12 Elm Grove, Leeds\nReport Type: Condition report\nAuthor: ignored second value"
	meta := d.extractMetadata(text)

	assert.Equal(t, "Condition Survey 2024", meta.Title)
	assert.Equal(t, "A. Harris", meta.Author)
	assert.Equal(t, "12 Elm Grove, Leeds", meta.SiteAddress)
	assert.Equal(t, "Condition report", meta.ReportType)
}

func TestExtractMetadata_LabelsOutsideScanWindowIgnored(t *testing.T) {
	d := New(Config{MetadataScanLines: 3})
	text := "Title line long enough\nfiller\nfiller\nAuthor: Too Late"
	meta := d.extractMetadata(text)
	assert.Empty(t, meta.Author)
}

func TestExtractMetadata_TitleLengthBounds(t *testing.T) {
	d := New(Config{})

	assert.Empty(t, d.extractMetadata("short").Title)
	assert.Empty(t, d.extractMetadata(strings.Repeat("t", 201)).Title)
	assert.Equal(t, strings.Repeat("t", 200), d.extractMetadata(strings.Repeat("t", 200)).Title)
}

func TestExtractKeywords(t *testing.T) {
	d := New(Config{})
	text := "willow willow willow poplar poplar the the the and birch"
	keywords := d.extractKeywords(text)

	// Stop words and short words excluded; descending frequency; ties keep
	// encounter order.
	assert.Equal(t, []string{"willow", "poplar", "birch"}, keywords)
}

func TestExtractKeywords_CapAndStripping(t *testing.T) {
	d := New(Config{MaxKeywords: 2})
	keywords := d.extractKeywords("Sycamore, sycamore! hawthorn... hawthorn hazel")
	assert.Equal(t, []string{"sycamore", "hawthorn"}, keywords)
}
