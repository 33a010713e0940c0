// Package commission links every university of a sheet to a partner company.
package commission

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"catalog-sync/internal/domain"
	"catalog-sync/internal/httpx"
)

// Mapping log statuses.
const (
	StatusNotFound      = "University Not Found"
	StatusAlreadyExists = "Success (Already Exists)"
	StatusNewLink       = "Success (New Link)"
)

// Companies maps partner names to their marketplace company ids.
var Companies = map[string]string{
	"KC Overseas": "vC4W-hCnhK",
	"Apply Board": "4w9GPsVyxk",
	"GEEBEE":      "3v8ZPWeK51",
	"AECC Global": "wXAI5-XGCR",
	"Gateway":     "zLg4bAzm5i",
}

// CompanyID resolves a partner name from Companies.
func CompanyID(name string) (string, error) {
	if id, ok := Companies[name]; ok {
		return id, nil
	}
	names := make([]string, 0, len(Companies))
	for n := range Companies {
		names = append(names, n)
	}
	sort.Strings(names)
	return "", fmt.Errorf("commission: company %q not found in mapping (have %v)", name, names)
}

type Catalog interface {
	FindUniversityByName(ctx context.Context, name string) (*domain.UniversityRecord, error)
	JoinCommission(ctx context.Context, universityID domain.ID, companyID string) (*domain.CommissionLink, error)
}

type Linker struct {
	catalog   Catalog
	companyID string
	log       logrus.FieldLogger
}

func NewLinker(c Catalog, companyID string, log logrus.FieldLogger) *Linker {
	return &Linker{
		catalog:   c,
		companyID: companyID,
		log:       log.WithField("company_id", companyID),
	}
}

// Run links each row in order and returns the mapping log. Rows with a blank
// university name produce no log entry.
func (l *Linker) Run(ctx context.Context, rows []domain.SourceRow) ([]domain.MappingLogRow, error) {
	out := make([]domain.MappingLogRow, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		entry, ok := l.LinkRow(ctx, row)
		if !ok {
			l.log.WithField("row", row.Number).Warn("empty university name, skipping")
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (l *Linker) LinkRow(ctx context.Context, row domain.SourceRow) (domain.MappingLogRow, bool) {
	name := row.Text(domain.ColUniversity)
	if name == "" {
		return domain.MappingLogRow{}, false
	}
	entry := domain.MappingLogRow{RowNo: row.Number, UniversityName: name}
	log := l.log.WithFields(logrus.Fields{"row": row.Number, "university": name})

	uni, err := l.catalog.FindUniversityByName(ctx, name)
	if err != nil {
		log.WithError(err).Warn("university lookup failed")
	}
	if uni == nil {
		entry.Status = StatusNotFound
		log.Warn(StatusNotFound)
		return entry, true
	}

	link, err := l.catalog.JoinCommission(ctx, uni.ID, l.companyID)
	if err != nil {
		var herr *httpx.HTTPError
		if errors.As(err, &herr) {
			entry.Status = fmt.Sprintf("Link Failed: %d → %s", herr.StatusCode, herr.BodyText())
		} else {
			entry.Status = "Exception: " + err.Error()
		}
		log.Warn(entry.Status)
		return entry, true
	}

	entry.CommissionID = "N/A"
	if id := link.LinkID(); !id.IsZero() {
		entry.CommissionID = id.String()
	}
	entry.Status = StatusNewLink
	if link.Existing != nil {
		entry.Status = StatusAlreadyExists
	}
	log.WithField("commission_id", entry.CommissionID).Info(entry.Status)
	return entry, true
}
