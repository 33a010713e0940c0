package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a catalog identifier. The API hands out string ids for some resources and
// numeric ids for others, so the raw JSON token is kept and echoed back unchanged.
type ID struct {
	raw string
}

// StringID builds a string-typed ID.
func StringID(s string) ID {
	if s == "" {
		return ID{}
	}
	return ID{raw: strconv.Quote(s)}
}

// NumericID builds a number-typed ID.
func NumericID(n int64) ID {
	return ID{raw: strconv.FormatInt(n, 10)}
}

func (id ID) IsZero() bool {
	return id.raw == ""
}

// String returns the id as it appears in URL paths and query strings.
func (id ID) String() string {
	if id.raw == "" {
		return ""
	}
	if id.raw[0] == '"' {
		s, err := strconv.Unquote(id.raw)
		if err == nil {
			return s
		}
	}
	return id.raw
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.raw == "" {
		return []byte("null"), nil
	}
	return []byte(id.raw), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ID{}
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("domain: invalid id %s: %w", string(b), err)
		}
		id.raw = n.String()
		return nil
	}
}
