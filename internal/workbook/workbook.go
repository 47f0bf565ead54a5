package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is an in-memory view of a spreadsheet file: an ordered collection
// of named sheets, each a plain 2D grid of cell text.
type Workbook struct {
	Sheets []Sheet
}

// Sheet is a named grid of cell values as read from the file. Rows are
// ragged: trailing empty cells are not padded.
type Sheet struct {
	Name string
	Rows [][]string
}

// Open reads an XLSX file into a Workbook. Hidden sheets are included; the
// caller decides which sheets to process.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}

// Sheet returns the sheet with the given name, or nil if absent.
func (wb *Workbook) Sheet(name string) *Sheet {
	for i := range wb.Sheets {
		if wb.Sheets[i].Name == name {
			return &wb.Sheets[i]
		}
	}
	return nil
}

// RowEmpty reports whether every cell in the row is blank.
func RowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
