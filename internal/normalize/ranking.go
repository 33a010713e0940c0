package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"catalog-sync/internal/domain"
)

var firstNumberRe = regexp.MustCompile(`\d+`)

// ParseRankingLines reads one ranking per line, e.g.
//
//	QS Ranking - 45
//	THE Ranking - 120
//
// A rank that is not a plain number is kept as nil.
func ParseRankingLines(raw string) []domain.RankingEntry {
	out := []domain.RankingEntry{}
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		label, value, hasValue := strings.Cut(line, " - ")

		name := strings.TrimSpace(label)
		if i := strings.Index(name, " Ranking"); i >= 0 {
			name = name[:i]
		}

		var rank *int
		if hasValue {
			// only the text up to a further separator counts
			value, _, _ = strings.Cut(value, " - ")
			rank = plainInt(strings.TrimSpace(value))
		}
		out = append(out, domain.RankingEntry{Name: name, Rank: rank})
	}
	return out
}

// ParseRankingColumn reads a single ranking cell such as "#45" or "45 (2024)".
// It returns nil when the cell is blank or holds no number.
func ParseRankingColumn(name, raw string) *domain.RankingEntry {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	m := firstNumberRe.FindString(raw)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &domain.RankingEntry{Name: name, Rank: &n}
}

func plainInt(s string) *int {
	if s == "" {
		return nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
