package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"catalog-sync/internal/domain"
)

// Keep header order EXACT; downstream sheets key on position.
var outcomeHeader = []string{
	"ROW",
	"UNIVERSITY",
	"COURSE",
	"RESULT",
	"STATUS",
	"ERROR",
}

// WriteOutcomesCSV writes every outcome of a run, passed rows included.
func WriteOutcomesCSV(w io.Writer, outcomes []domain.RowOutcome) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(outcomeHeader); err != nil {
		return err
	}
	for _, o := range outcomes {
		if err := cw.Write(toOutcomeRow(o)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toOutcomeRow(o domain.RowOutcome) []string {
	return []string{
		strconv.Itoa(o.Row),
		o.University,
		o.Course,
		result(o),
		strings.Join(o.Status, "|"),
		sanitizeText(o.ErrorMessage),
	}
}

func result(o domain.RowOutcome) string {
	switch {
	case o.Failed():
		return "failed"
	case o.Skipped():
		return "skipped"
	default:
		return "passed"
	}
}

// sanitizeText flattens multi-line response bodies into one cell line.
func sanitizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
