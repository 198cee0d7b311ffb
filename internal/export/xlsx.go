// Package export turns report tables into downloadable spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/campushub/events-api/internal/service"
)

const sheetName = "Data"

// WriteXLSX renders the table as a single-sheet workbook and writes it
// to w. The header row comes first, then the rows in table order.
func WriteXLSX(w io.Writer, table service.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("f.NewSheet -> %w", err)
	}
	f.SetActiveSheet(index)

	if err = f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("f.DeleteSheet -> %w", err)
	}

	if err = writeRow(f, 1, table.Headers); err != nil {
		return err
	}

	for i, row := range table.Rows {
		if err = writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("f.Write -> %w", err)
	}

	return nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	if err = f.SetSheetRow(sheetName, cell, &row); err != nil {
		return fmt.Errorf("f.SetSheetRow -> %w", err)
	}

	return nil
}
