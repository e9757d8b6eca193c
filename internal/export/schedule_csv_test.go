package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arbos/internal/domain"
)

func sampleTrees() []domain.Tree {
	return []domain.Tree{
		{
			TreeNumber:   "T1",
			Species:      "Quercus robur",
			CommonName:   "English oak",
			HeightM:      18.5,
			DBHMm:        950,
			CrownSpreadM: 12,
			AgeClass:     domain.AgeClassMature,
			Condition:    domain.ConditionGood,
			Category:     domain.CategoryA,
			RPARadiusM:   11.4,
			Observations: "Minor deadwood in upper crown",
		},
		{
			TreeNumber: "T2",
			Species:    "Fraxinus excelsior",
			CommonName: "Ash",
			Condition:  domain.ConditionPoor,
			Category:   domain.CategoryU,
		},
	}
}

func TestScheduleWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewScheduleWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteTrees(sampleTrees()))
	require.NoError(t, w.Flush())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, scheduleColumns, records[0])
	assert.Equal(t, "T1", records[1][0])
	assert.Equal(t, "Quercus robur", records[1][1])
	assert.Equal(t, "18.5", records[1][3])
	assert.Equal(t, "950", records[1][4])
	assert.Equal(t, "A", records[1][8])

	// Zero measurements render as empty cells, not "0.0".
	assert.Equal(t, "", records[2][3])
	assert.Equal(t, "U", records[2][8])
}

func TestWriteScheduleXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteScheduleXLSX(&buf, "Elm Grove Development", sampleTrees())
	require.NoError(t, err)
	// XLSX files are zip archives.
	assert.True(t, strings.HasPrefix(buf.String(), "PK"))
}

func TestPDFStub(t *testing.T) {
	renderer := NewPDFStub()
	_, err := renderer.RenderReport(t.Context(), &domain.Report{})
	assert.ErrorIs(t, err, domain.ErrPDFExportUnavailable)
}
