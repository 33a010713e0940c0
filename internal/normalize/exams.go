package normalize

import (
	"strconv"
	"strings"

	"catalog-sync/internal/domain"
)

// ExamColumns lists the score columns in the order they are emitted.
var ExamColumns = []string{domain.ColIELTS, domain.ColTOEFL, domain.ColPTE}

// ExtractExamScores reads every exam column through get. Blank or non-numeric
// cells are skipped.
func ExtractExamScores(get func(col string) (string, bool)) []domain.ExamScore {
	out := []domain.ExamScore{}
	for _, col := range ExamColumns {
		v, ok := get(col)
		if !ok {
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			continue
		}
		name, _, _ := strings.Cut(col, " ")
		out = append(out, domain.ExamScore{Name: name, Score: score})
	}
	return out
}
