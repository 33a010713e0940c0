package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const weeksPerMonth = 4.345

var workVisaUnits = []struct {
	re      *regexp.Regexp
	toMonth func(float64) float64
}{
	{regexp.MustCompile(`^([\d.]+)\s*year`), func(v float64) float64 { return v * 12 }},
	{regexp.MustCompile(`^([\d.]+)\s*month`), func(v float64) float64 { return v }},
	{regexp.MustCompile(`^([\d.]+)\s*week`), func(v float64) float64 { return v / weeksPerMonth }},
}

// ParseWorkVisa converts a work visa cell ("2 years", "18 months", "8 weeks") into
// whole months and a "<n> Months" label. Text it cannot read is returned lower-cased
// as the label with no months.
func ParseWorkVisa(raw string) (*int, string) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil, ""
	}

	for _, u := range workVisaUnits {
		m := u.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			break
		}
		f := math.Floor(u.toMonth(v))
		if math.IsNaN(f) || f < 0 || f >= math.MaxInt32 {
			break
		}
		months := int(f)
		return &months, fmt.Sprintf("%d Months", months)
	}
	return nil, s
}
