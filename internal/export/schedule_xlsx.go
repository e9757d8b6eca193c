package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"arbos/internal/domain"
)

const scheduleSheet = "Tree Schedule"

// WriteScheduleXLSX writes a tree schedule workbook to w.
func WriteScheduleXLSX(w io.Writer, projectName string, trees []domain.Tree) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(scheduleSheet)
	if err != nil {
		return fmt.Errorf("creating schedule sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := f.SetCellValue(scheduleSheet, "A1", projectName); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}

	headerRow := 3
	for col, name := range scheduleColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(scheduleSheet, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i := range trees {
		row := headerRow + 1 + i
		values := []interface{}{
			trees[i].TreeNumber,
			trees[i].Species,
			trees[i].CommonName,
			trees[i].HeightM,
			trees[i].DBHMm,
			trees[i].CrownSpreadM,
			string(trees[i].AgeClass),
			string(trees[i].Condition),
			string(trees[i].Category),
			trees[i].RPARadiusM,
			trees[i].Observations,
		}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(scheduleSheet, cell, val); err != nil {
				return fmt.Errorf("writing row %d: %w", i, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
