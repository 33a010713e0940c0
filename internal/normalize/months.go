package normalize

import (
	"regexp"
	"strings"
	"time"
)

var monthAbbrRe = regexp.MustCompile(`(?i)jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`)

// NormalizeMonths finds three-letter month codes anywhere in s and returns the
// distinct full month names in calendar order.
func NormalizeMonths(s string) []string {
	seen := [13]bool{}
	for _, m := range monthAbbrRe.FindAllString(s, -1) {
		seen[monthIndex(strings.ToLower(m))] = true
	}

	out := []string{}
	for mo := time.January; mo <= time.December; mo++ {
		if seen[mo] {
			out = append(out, mo.String())
		}
	}
	return out
}

func monthIndex(abbr string) time.Month {
	for mo := time.January; mo <= time.December; mo++ {
		if strings.ToLower(mo.String()[:3]) == abbr {
			return mo
		}
	}
	return 0
}
