package workbook

import (
	"fmt"

	excelize "github.com/xuri/excelize/v2"

	"github.com/orayew2002/rast-columns/domain"
	"github.com/orayew2002/rast-columns/excel"
)

// DefaultSheet is the sheet a new workbook starts with.
const DefaultSheet = "Sheet1"

// Options places the header run on the sheet.
type Options struct {
	Grid  excel.Grid
	Sheet string // DefaultSheet when empty
}

func (o Options) sheet() string {
	if o.Sheet == "" {
		return DefaultSheet
	}
	return o.Sheet
}

const columnWidth = 12

// WriteToFile creates a new Excel file with a header for cols and saves it to path.
func WriteToFile(cols []domain.Column, opts Options, path string) error {
	f, err := build(cols, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteToBytes creates a new Excel file with a header for cols and returns it as bytes.
func WriteToBytes(cols []domain.Column, opts Options) ([]byte, error) {
	f, err := build(cols, opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func build(cols []domain.Column, opts Options) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := opts.sheet()
	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	}

	if err := writeHeaders(f, sheet, cols, opts.Grid); err != nil {
		f.Close()
		return nil, fmt.Errorf("write headers: %w", err)
	}

	if err := writeTitles(f, sheet, cols, opts.Grid); err != nil {
		f.Close()
		return nil, fmt.Errorf("write titles: %w", err)
	}

	return f, nil
}

// writeHeaders writes the label of every column into row 1.
func writeHeaders(f *excelize.File, sheet string, cols []domain.Column, grid excel.Grid) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for _, c := range cols {
		col, err := grid.SheetColumn(c.Index)
		if err != nil {
			return err
		}
		cell := excel.CellName(0, col)
		if err := f.SetCellStr(sheet, cell, c.Label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
		name := excel.IndexToColumn(col)
		if err := f.SetColWidth(sheet, name, name, columnWidth); err != nil {
			return err
		}
	}

	return nil
}

// writeTitles writes column titles into row 2; untitled columns are left blank.
func writeTitles(f *excelize.File, sheet string, cols []domain.Column, grid excel.Grid) error {
	for _, c := range cols {
		if c.Title == "" {
			continue
		}
		col, err := grid.SheetColumn(c.Index)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, excel.CellName(1, col), c.Title); err != nil {
			return fmt.Errorf("column %s: %w", c.Label, err)
		}
	}

	return nil
}
