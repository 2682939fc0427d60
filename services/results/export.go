package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Excel refuses to decode Czech party names without the BOM, the
// original export always carried it.
var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV serializes the table as BOM-prefixed UTF-8 CSV.
func WriteCSV(w io.Writer, t Table) error {
	if _, err := w.Write(utf8Bom); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	for _, rec := range t.Records {
		if err := cw.Write(t.Row(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX serializes the table as a single-sheet workbook.
func WriteXLSX(path string, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := writeSheetRow(f, sheet, 1, t.Columns()); err != nil {
		return err
	}
	for i, rec := range t.Records {
		if err := writeSheetRow(f, sheet, i+2, t.Row(rec)); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

// ExportFile writes the table to path in the given format ("csv" or
// "xlsx").
func ExportFile(path, format string, t Table) error {
	switch strings.ToLower(format) {
	case "", "csv":
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := WriteCSV(file, t); err != nil {
			return err
		}
		return file.Close()
	case "xlsx":
		return WriteXLSX(path, t)
	default:
		return fmt.Errorf("unsupported export format: %q", format)
	}
}
