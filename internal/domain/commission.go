package domain

// CommissionLink is the commission endpoint response. Existing is set when the
// link was already present.
type CommissionLink struct {
	ID       ID `json:"id"`
	Existing *struct {
		ID ID `json:"id"`
	} `json:"existing,omitempty"`
}

// LinkID returns the id of the existing link, else the new one.
func (l CommissionLink) LinkID() ID {
	if l.Existing != nil && !l.Existing.ID.IsZero() {
		return l.Existing.ID
	}
	return l.ID
}

// MappingLogRow is one line of the commission mapping log.
type MappingLogRow struct {
	RowNo          int
	UniversityName string
	CommissionID   string
	Status         string
}
