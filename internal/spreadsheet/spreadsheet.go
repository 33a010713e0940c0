// Package spreadsheet reads source workbooks into rows and writes tabular artifacts.
package spreadsheet

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"catalog-sync/internal/domain"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("spreadsheet: missing required column")

// Sheet is a parsed worksheet. Rows excludes the header row and blank rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []domain.SourceRow
}

// ReadFile opens an xlsx workbook and parses sheet (the first sheet when empty).
// Row 1 is the header row. Every column in required must be present.
func ReadFile(path, sheet string, required ...string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "spreadsheet: open %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Errorf("spreadsheet: %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "spreadsheet: read sheet %q", sheet)
	}
	return parse(sheet, rows, required)
}

func parse(sheet string, rows [][]string, required []string) (*Sheet, error) {
	s := &Sheet{Name: sheet}
	if len(rows) > 0 {
		s.Headers = rows[0]
	}
	for _, col := range required {
		if !domain.HasColumn(s.Headers, col) {
			return nil, errors.Wrapf(ErrMissingColumn, "%q in sheet %q", col, sheet)
		}
	}

	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		s.Rows = append(s.Rows, domain.NewSourceRow(i+1, s.Headers, rows[i]))
	}
	return s, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteTable saves a single-sheet workbook with a header row followed by rows.
func WriteTable(path, sheet string, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return errors.Wrap(err, "spreadsheet: rename sheet")
		}
	} else {
		sheet = "Sheet1"
	}

	head := make([]any, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return errors.Wrap(err, "spreadsheet: write header")
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "spreadsheet: cell name")
		}
		row := r
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "spreadsheet: write row %d", i+2)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "spreadsheet: save %s", path)
	}
	return nil
}
