// Package export produces downloadable renditions of survey data: CSV and
// XLSX tree schedules, and the (stubbed) PDF report renderer.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"arbos/internal/domain"
)

// BOM is the UTF-8 byte order mark, written ahead of CSV output for Excel
// compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// scheduleColumns defines the tree schedule header row.
var scheduleColumns = []string{
	"Tree No",
	"Species",
	"Common Name",
	"Height (m)",
	"DBH (mm)",
	"Crown Spread (m)",
	"Age Class",
	"Condition",
	"Category",
	"RPA Radius (m)",
	"Observations",
}

// ScheduleWriter writes a tree schedule as CSV.
type ScheduleWriter struct {
	csv *csv.Writer
}

// NewScheduleWriter creates a ScheduleWriter that writes CSV to w.
func NewScheduleWriter(w io.Writer) *ScheduleWriter {
	return &ScheduleWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the schedule header row.
func (w *ScheduleWriter) WriteHeader() error {
	return w.csv.Write(scheduleColumns)
}

// WriteTrees converts trees to CSV rows and writes them.
func (w *ScheduleWriter) WriteTrees(trees []domain.Tree) error {
	for i := range trees {
		if err := w.csv.Write(treeToRow(&trees[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *ScheduleWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func treeToRow(t *domain.Tree) []string {
	return []string{
		t.TreeNumber,
		t.Species,
		t.CommonName,
		formatFloat(t.HeightM),
		fmt.Sprintf("%d", t.DBHMm),
		formatFloat(t.CrownSpreadM),
		string(t.AgeClass),
		string(t.Condition),
		string(t.Category),
		formatFloat(t.RPARadiusM),
		t.Observations,
	}
}

func formatFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", f)
}
