package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"catalog-sync/internal/domain"
)

// Summary counts the recorded rows by result.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
}

// Reporter accumulates row outcomes for one run.
type Reporter struct {
	// Verbose appends the full outcome as JSON to each failure line.
	Verbose bool

	outcomes []domain.RowOutcome
	failures []string
	summary  Summary
}

func NewReporter(verbose bool) *Reporter {
	return &Reporter{Verbose: verbose}
}

// Record stores o and returns its failure line, or "" when the row did not fail.
func (r *Reporter) Record(o domain.RowOutcome) string {
	r.outcomes = append(r.outcomes, o)
	switch {
	case o.Failed():
		r.summary.Failed++
		line := FormatFailure(o, r.Verbose)
		r.failures = append(r.failures, line)
		return line
	case o.Skipped():
		r.summary.Skipped++
	default:
		r.summary.Passed++
	}
	return ""
}

// FormatFailure renders "[index] tag, tag", plus the outcome JSON when verbose.
func FormatFailure(o domain.RowOutcome, verbose bool) string {
	line := fmt.Sprintf("[%d] %s", o.Index, strings.Join(o.Status, ", "))
	if !verbose {
		return line
	}
	b, err := json.Marshal(o)
	if err != nil {
		return line
	}
	return line + " " + string(b)
}

func (r *Reporter) Summary() Summary { return r.summary }

func (r *Reporter) Failures() []string {
	return append([]string(nil), r.failures...)
}

func (r *Reporter) Outcomes() []domain.RowOutcome {
	return append([]domain.RowOutcome(nil), r.outcomes...)
}

// WriteFailures writes one failure line per line.
func (r *Reporter) WriteFailures(w io.Writer) error {
	for _, line := range r.failures {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteFailureLog replaces the file at path with the failure lines. The file is
// written even when nothing failed so a stale log never survives a clean run.
func (r *Reporter) WriteFailureLog(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "export: create failure log")
	}
	if err := r.WriteFailures(f); err != nil {
		f.Close()
		return errors.Wrap(err, "export: write failure log")
	}
	return errors.Wrap(f.Close(), "export: close failure log")
}
