package export

import (
	"path/filepath"
	"strings"

	"catalog-sync/internal/domain"
	"catalog-sync/internal/spreadsheet"
)

var mappingLogHeader = []string{"Row No", "University Name", "Commission ID", "Status"}

// MappingLogPath derives the log location from the input workbook:
// "<dir>/<base>_mapping_log_<Company_Name>_.xlsx".
func MappingLogPath(inputPath, company string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + "_mapping_log_" + strings.ReplaceAll(company, " ", "_") + "_.xlsx"
}

// WriteMappingLog saves the commission mapping log workbook.
func WriteMappingLog(path string, rows []domain.MappingLogRow) error {
	data := make([][]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, []any{r.RowNo, r.UniversityName, r.CommissionID, r.Status})
	}
	return spreadsheet.WriteTable(path, "Mapping Log", mappingLogHeader, data)
}
