package mappers

import (
	"catalog-sync/internal/domain"
	"catalog-sync/internal/normalize"
)

// UniversityFromRow builds the university payload for a row. The university name is
// taken as is; callers skip rows where it is blank.
func UniversityFromRow(row domain.SourceRow, p Profile) domain.UniversityPayload {
	u := domain.UniversityPayload{
		Name:        row.OrDash(domain.ColUniversity),
		CountryName: row.OrDash(domain.ColCountry),
		StateName:   "-",
		CityName:    row.OrDash(domain.ColCampus),
		Ranking:     rankings(row, p.Ranking),
		WithLogo:    p.Logo,
	}
	if p.Website {
		u.Website = row.Optional(domain.ColWebsite)
	}
	if p.Logo {
		u.Logo = row.Optional(domain.ColLogo)
	}
	return u
}

func rankings(row domain.SourceRow, s RankingStrategy) []domain.RankingEntry {
	if s == RankingColumns {
		out := []domain.RankingEntry{}
		if e := normalize.ParseRankingColumn("QS", row.Text(domain.ColQSRanking)); e != nil {
			out = append(out, *e)
		}
		if e := normalize.ParseRankingColumn("THE", row.Text(domain.ColTHERanking)); e != nil {
			out = append(out, *e)
		}
		return out
	}
	raw, _ := row.Raw(domain.ColRanking)
	return normalize.ParseRankingLines(raw)
}

// CourseFromRow builds the course payload for a row under the resolved university.
func CourseFromRow(row domain.SourceRow, p Profile, universityID domain.ID) domain.CoursePayload {
	feeText, _ := row.Raw(domain.ColTuitionFees)
	fee, currency := normalize.ParseFee(feeText)

	duration, _ := row.Raw(domain.ColDuration)
	intakes, _ := row.Raw(domain.ColOpenIntakes)

	c := domain.CoursePayload{
		Name:          row.Optional(domain.ColProgramName),
		Requirements:  row.Optional(domain.ColRequirements),
		Fees:          fee,
		FeesCurrency:  currency,
		FeesRange:     row.Optional(domain.ColTuitionFees),
		IntakeMonths:  normalize.NormalizeMonths(intakes),
		UniversityID:  universityID,
		LevelName:     row.Optional(domain.ColStudyLevel),
		DurationLabel: duration,
		DurationValue: normalize.ParseDuration(duration),
		ExamAccepted:  normalize.ExtractExamScores(row.Get),
		Scholarship:   row.Optional(domain.ColScholarship),
	}

	if p.WorkVisa {
		visa, _ := row.Raw(domain.ColWorkVisaPermit)
		months, label := normalize.ParseWorkVisa(visa)
		c.WorkVisa = &domain.WorkVisaPermit{Label: label, Months: months}
	}
	return c
}
