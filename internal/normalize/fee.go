// Package normalize turns raw spreadsheet cell text into typed catalog values.
// Every parser is best effort: text it cannot read degrades to nil or a default,
// never to an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"catalog-sync/internal/domain"
)

var feeAmountRe = regexp.MustCompile(`^[0-9,.]+`)

// ParseFee splits a fee cell such as "£12,500 per year" into amount and currency.
// The currency is whatever precedes the first digit.
func ParseFee(raw string) (*float64, string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, domain.DefaultCurrency
	}

	i := strings.IndexAny(s, "0123456789")
	if i < 0 {
		// no amount at all; the text itself is the best guess we have
		return nil, s
	}

	currency := strings.TrimSpace(s[:i])
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	tok := feeAmountRe.FindString(s[i:])
	if tok == "" {
		return nil, currency
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
	if err != nil && !isRangeErr(err) {
		return nil, currency
	}
	return &v, currency
}

// isRangeErr lets overflowing amounts through as ±Inf; the sanitizer drops them.
func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
