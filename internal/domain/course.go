package domain

// DefaultCurrency is used when a fee cell carries no currency prefix.
const DefaultCurrency = "GBP"

// ExamScore is an accepted language test and its minimum score.
type ExamScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// WorkVisaPermit is the post-study work visa length.
type WorkVisaPermit struct {
	Label  string
	Months *int
}

// CoursePayload is the body of course create/update calls.
type CoursePayload struct {
	Name          *string
	Requirements  *string
	Fees          *float64
	FeesCurrency  string
	FeesRange     *string
	IntakeMonths  []string
	UniversityID  ID
	LevelName     *string
	DurationLabel string
	DurationValue *int
	ExamAccepted  []ExamScore
	Scholarship   *string

	// WorkVisa is omitted from the wire form when nil.
	WorkVisa *WorkVisaPermit
}

// Wire converts the payload into its JSON object form. Floats are left as float64 so
// that the sanitizer can catch non-finite values before encoding.
func (p CoursePayload) Wire() map[string]any {
	exams := make([]map[string]any, 0, len(p.ExamAccepted))
	for _, e := range p.ExamAccepted {
		exams = append(exams, map[string]any{
			"name":  e.Name,
			"score": e.Score,
		})
	}

	currency := p.FeesCurrency
	if currency == "" {
		currency = DefaultCurrency
	}

	months := p.IntakeMonths
	if months == nil {
		months = []string{}
	}

	m := map[string]any{
		"name":          stringOrNil(p.Name),
		"requirements":  stringOrNil(p.Requirements),
		"description":   nil,
		"fees":          floatOrNil(p.Fees),
		"feesCurrency":  currency,
		"intakeMonths":  months,
		"feesRange":     stringOrNil(p.FeesRange),
		"universityId":  p.UniversityID,
		"levelName":     stringOrNil(p.LevelName),
		"durationLabel": p.DurationLabel,
		"durationValue": intOrNil(p.DurationValue),
		"examAccepted":  exams,
		"scholarship":   stringOrNil(p.Scholarship),
	}
	if p.WorkVisa != nil {
		m["workVisaPermitLabel"] = p.WorkVisa.Label
		m["workVisaPermitValue"] = intOrNil(p.WorkVisa.Months)
	}
	return m
}

// CourseRecord is the subset of the remote course we rely on.
type CourseRecord struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	UniversityID ID     `json:"universityId"`
}
