package normalize

import "strconv"

// ParseDuration returns the leading run of digits of s ("12 Months" -> 12).
func ParseDuration(s string) *int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
