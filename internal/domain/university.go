package domain

// RankingEntry is one ranking line of a university ("QS", 45).
type RankingEntry struct {
	Name string `json:"name"`
	Rank *int   `json:"rank"`
}

// UniversityPayload is the body of university create/update calls.
type UniversityPayload struct {
	Name        string
	Website     *string
	CountryName string
	StateName   string
	CityName    string
	Ranking     []RankingEntry

	// Logo is only sent when WithLogo is set; some sheets carry no logo column
	// and must not blank the remote value.
	WithLogo bool
	Logo     *string
}

// Wire converts the payload into its JSON object form.
func (p UniversityPayload) Wire() map[string]any {
	ranking := make([]map[string]any, 0, len(p.Ranking))
	for _, r := range p.Ranking {
		ranking = append(ranking, map[string]any{
			"name": r.Name,
			"rank": intOrNil(r.Rank),
		})
	}

	m := map[string]any{
		"name":        p.Name,
		"website":     stringOrNil(p.Website),
		"countryName": p.CountryName,
		"stateName":   p.StateName,
		"cityName":    p.CityName,
		"ranking":     ranking,
	}
	if p.WithLogo {
		m["logo"] = stringOrNil(p.Logo)
	}
	return m
}

// UniversityRecord is the subset of the remote university we rely on.
type UniversityRecord struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intOrNil(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func floatOrNil(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
