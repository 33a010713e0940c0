package domain

import (
	"sort"
	"strings"
)

// Spreadsheet column headers recognized by the importers.
const (
	ColUniversity     = "University"
	ColWebsite        = "Website URL"
	ColCountry        = "Country"
	ColCampus         = "Campus"
	ColRanking        = "University Ranking"
	ColQSRanking      = "QS  Ranking"
	ColTHERanking     = "The World Ranking"
	ColProgramName    = "Program Name"
	ColRequirements   = "Entry Requirements"
	ColStudyLevel     = "Study Level"
	ColTuitionFees    = "Yearly Tuition Fees"
	ColDuration       = "Duration"
	ColOpenIntakes    = "Open Intakes"
	ColIELTS          = "IELTS Score"
	ColTOEFL          = "TOEFL Score"
	ColPTE            = "PTE Score"
	ColScholarship    = "Scholarship Detail"
	ColWorkVisaPermit = "Work Visa Permit"
	ColLogo           = "logo"
)

// SourceRow is one spreadsheet record keyed by header name.
type SourceRow struct {
	// Number is the sheet row number (header is row 1).
	Number int
	Cells  map[string]string

	// Headers keeps the sheet column order for lookups that ignore case and spacing.
	Headers []string
}

// NewSourceRow pairs headers with cell values. Missing trailing cells are left out and
// the first occurrence of a duplicated header wins.
func NewSourceRow(number int, headers, values []string) SourceRow {
	cells := make(map[string]string, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if _, dup := cells[h]; dup {
			continue
		}
		if i < len(values) {
			cells[h] = values[i]
		} else {
			cells[h] = ""
		}
	}
	return SourceRow{Number: number, Cells: cells, Headers: headers}
}

// Raw returns the untrimmed cell text and whether the column exists.
func (r SourceRow) Raw(col string) (string, bool) {
	if v, ok := r.Cells[col]; ok {
		return v, true
	}
	want := normHeader(col)
	for _, h := range r.headerOrder() {
		if normHeader(h) != want {
			continue
		}
		if v, ok := r.Cells[h]; ok {
			return v, true
		}
	}
	return "", false
}

// headerOrder is Headers, or the sorted cell keys for rows built without them.
func (r SourceRow) headerOrder() []string {
	if len(r.Headers) > 0 {
		return r.Headers
	}
	keys := make([]string, 0, len(r.Cells))
	for k := range r.Cells {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the trimmed cell text; ok is false when the column is missing or blank.
func (r SourceRow) Get(col string) (string, bool) {
	v, ok := r.Raw(col)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Text is Get without the presence flag.
func (r SourceRow) Text(col string) string {
	v, _ := r.Get(col)
	return v
}

// Optional returns nil for a missing or blank cell.
func (r SourceRow) Optional(col string) *string {
	v, ok := r.Get(col)
	if !ok {
		return nil
	}
	return &v
}

// OrDash substitutes "-" for a missing or blank cell.
func (r SourceRow) OrDash(col string) string {
	if v, ok := r.Get(col); ok {
		return v
	}
	return "-"
}

func normHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// HasColumn reports whether headers contain col (same matching rules as Raw).
func HasColumn(headers []string, col string) bool {
	want := normHeader(col)
	for _, h := range headers {
		if h == col || normHeader(h) == want {
			return true
		}
	}
	return false
}
