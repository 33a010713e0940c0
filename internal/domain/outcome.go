package domain

import (
	"fmt"
	"strings"
)

// Status tags recorded on a RowOutcome.
const (
	StatusSkippedNoUniversity    = "skipped_no_university"
	StatusUniversityUpdated      = "university_updated"
	StatusUniversityUpdateError  = "university_update_error"
	StatusUniversityCreated      = "university_created"
	StatusUniversityCreateFailed = "university_creation_failed"
	StatusUnknownUniversityError = "unknown_university_error"
	StatusExisting               = "existing"
	StatusUpdated                = "updated"
	StatusErrorUpdating          = "error_updating"
	StatusCreated                = "created"
	StatusErrorCreating          = "error_creating"
)

// UniversityUpdateFailed, UpdateFailed and CreateFailed build the status tags for a
// rejected call.
func UniversityUpdateFailed(status int) string {
	return fmt.Sprintf("university_update_failed_%d", status)
}

func UpdateFailed(status int) string {
	return fmt.Sprintf("update_failed_%d", status)
}

func CreateFailed(status int) string {
	return fmt.Sprintf("create_failed_%d", status)
}

// RowOutcome is the result of syncing one spreadsheet row. Row is the sheet row
// number; Index is the 1-based position among the data rows of the run input, counted
// from the start of the sheet even when a run resumes past the first rows.
type RowOutcome struct {
	Index        int      `json:"index"`
	Row          int      `json:"row"`
	Course       string   `json:"course"`
	University   string   `json:"university"`
	Status       []string `json:"status"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
}

func (o *RowOutcome) Add(tag string) {
	o.Status = append(o.Status, tag)
}

// Fail appends tag and records msg as the error message.
func (o *RowOutcome) Fail(tag, msg string) {
	o.Status = append(o.Status, tag)
	o.ErrorMessage = msg
}

// Failed reports whether any tag marks a failure.
func (o RowOutcome) Failed() bool {
	for _, s := range o.Status {
		if strings.Contains(s, "failed") || strings.Contains(s, "error") {
			return true
		}
	}
	return false
}

func (o RowOutcome) Skipped() bool {
	for _, s := range o.Status {
		if s == StatusSkippedNoUniversity {
			return true
		}
	}
	return false
}

func (o RowOutcome) Has(tag string) bool {
	for _, s := range o.Status {
		if s == tag {
			return true
		}
	}
	return false
}
