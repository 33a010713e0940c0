// Package sync pushes spreadsheet rows into the catalog: one university upsert and one
// course upsert per row, strictly in order.
package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"catalog-sync/internal/domain"
	"catalog-sync/internal/export"
	"catalog-sync/internal/httpx"
	"catalog-sync/internal/mappers"
)

// Catalog is the part of the catalog client the syncer drives.
type Catalog interface {
	FindUniversityByName(ctx context.Context, name string) (*domain.UniversityRecord, error)
	CreateUniversity(ctx context.Context, p domain.UniversityPayload) (*domain.UniversityRecord, error)
	UpdateUniversity(ctx context.Context, id domain.ID, p domain.UniversityPayload) error
	FindCourse(ctx context.Context, name string, universityID domain.ID) (*domain.CourseRecord, error)
	CreateCourse(ctx context.Context, p domain.CoursePayload) error
	UpdateCourse(ctx context.Context, id domain.ID, p domain.CoursePayload) error
}

// Syncer holds the state of a single run. Build a new one per run.
type Syncer struct {
	RunID string

	catalog  Catalog
	profile  mappers.Profile
	reporter *export.Reporter
	log      logrus.FieldLogger

	// university display name -> id, filled as rows resolve
	universities map[string]domain.ID
}

func New(c Catalog, p mappers.Profile, r *export.Reporter, log logrus.FieldLogger) *Syncer {
	runID := uuid.NewString()
	return &Syncer{
		RunID:        runID,
		catalog:      c,
		profile:      p,
		reporter:     r,
		log:          log.WithFields(logrus.Fields{"run_id": runID, "profile": p.Name}),
		universities: map[string]domain.ID{},
	}
}

// Run syncs rows[start:] in order. Outcomes are indexed by data-row position, so the
// first row of a run resumed with start=1 is index 2. Row failures are recorded and
// never stop the run; only a canceled context does.
func (s *Syncer) Run(ctx context.Context, rows []domain.SourceRow, start int) (export.Summary, error) {
	if start < 0 {
		start = 0
	}
	if start > len(rows) {
		start = len(rows)
	}
	todo := rows[start:]

	s.log.WithField("rows", len(todo)).Info("sync started")
	for i, row := range todo {
		if err := ctx.Err(); err != nil {
			s.log.WithField("done", i).Warn("sync interrupted")
			return s.reporter.Summary(), err
		}
		o := s.SyncRow(ctx, row)
		o.Index = start + i + 1
		s.report(o)
	}

	sum := s.reporter.Summary()
	s.log.Infof("sync summary: passed=%d failed=%d skipped=%d", sum.Passed, sum.Failed, sum.Skipped)
	return sum, nil
}

func (s *Syncer) report(o domain.RowOutcome) {
	line := s.reporter.Record(o)
	entry := s.log.WithFields(logrus.Fields{"row": o.Row, "index": o.Index})
	switch {
	case line != "":
		entry.WithField("error", o.ErrorMessage).Warn(line)
	case o.Skipped():
		entry.Infof("[%d] skipped: no university", o.Index)
	default:
		entry.Infof("[%d] passed", o.Index)
	}
}

// SyncRow resolves the row's university and upserts its course.
func (s *Syncer) SyncRow(ctx context.Context, row domain.SourceRow) domain.RowOutcome {
	o := domain.RowOutcome{
		Row:        row.Number,
		Course:     row.Text(domain.ColProgramName),
		University: row.Text(domain.ColUniversity),
	}
	if o.University == "" {
		o.Add(domain.StatusSkippedNoUniversity)
		return o
	}

	uid, ok := s.resolveUniversity(ctx, row, &o)
	if !ok {
		return o
	}
	s.syncCourse(ctx, row, uid, &o)
	return o
}

func (s *Syncer) resolveUniversity(ctx context.Context, row domain.SourceRow, o *domain.RowOutcome) (domain.ID, bool) {
	name := o.University
	if id, ok := s.universities[name]; ok {
		return id, true
	}

	payload := mappers.UniversityFromRow(row, s.profile)

	found, err := s.catalog.FindUniversityByName(ctx, name)
	if err != nil {
		s.log.WithError(err).WithField("university", name).Warn("university lookup failed, treating as not found")
	}

	var id domain.ID
	if found != nil {
		if err := s.catalog.UpdateUniversity(ctx, found.ID, payload); err != nil {
			o.Fail(failureTag(err, domain.UniversityUpdateFailed, domain.StatusUniversityUpdateError), errorText(err))
			return domain.ID{}, false
		}
		o.Add(domain.StatusUniversityUpdated)
		id = found.ID
	} else {
		created, err := s.catalog.CreateUniversity(ctx, payload)
		if err != nil {
			o.Fail(domain.StatusUniversityCreateFailed, fmt.Sprintf("could not create university %q: %s", name, errorText(err)))
			return domain.ID{}, false
		}
		o.Add(domain.StatusUniversityCreated)
		if created != nil {
			id = created.ID
		}
	}

	if id.IsZero() {
		o.Fail(domain.StatusUnknownUniversityError, fmt.Sprintf("no id for university %q", name))
		return domain.ID{}, false
	}
	s.universities[name] = id
	return id, true
}

func (s *Syncer) syncCourse(ctx context.Context, row domain.SourceRow, uid domain.ID, o *domain.RowOutcome) {
	payload := mappers.CourseFromRow(row, s.profile, uid)

	existing, err := s.catalog.FindCourse(ctx, o.Course, uid)
	if err != nil {
		s.log.WithError(err).WithField("course", o.Course).Warn("course check failed, treating as not found")
	}

	if existing != nil {
		o.Add(domain.StatusExisting)
		if err := s.catalog.UpdateCourse(ctx, existing.ID, payload); err != nil {
			o.Fail(failureTag(err, domain.UpdateFailed, domain.StatusErrorUpdating), errorText(err))
			return
		}
		o.Add(domain.StatusUpdated)
		return
	}

	if err := s.catalog.CreateCourse(ctx, payload); err != nil {
		o.Fail(failureTag(err, domain.CreateFailed, domain.StatusErrorCreating), errorText(err))
		return
	}
	o.Add(domain.StatusCreated)
}

// failureTag picks the status-coded tag for a rejection and the fallback tag for a
// transport failure.
func failureTag(err error, rejected func(int) string, transport string) string {
	var herr *httpx.HTTPError
	if errors.As(err, &herr) {
		return rejected(herr.StatusCode)
	}
	return transport
}

func errorText(err error) string {
	var herr *httpx.HTTPError
	if errors.As(err, &herr) {
		return herr.BodyText()
	}
	return err.Error()
}
