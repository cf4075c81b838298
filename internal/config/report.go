package config

import (
	"fmt"
	"strings"
)

// Severity classifies a validation issue. Errors block loading; warnings are
// reported but do not.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Issue is a single validation finding, tied to the file and entity that
// produced it.
type Issue struct {
	Severity Severity
	Source   string // file or employer the issue belongs to
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Source, i.Message)
}

// Report collects validation issues across a roster.
type Report struct {
	Issues       []Issue
	FilesChecked int
}

func (r *Report) add(severity Severity, source, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: severity,
		Source:   source,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errors returns only the error-severity issues.
func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns only the warning-severity issues.
func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(severity Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// HasErrors reports whether any error-severity issue was found.
func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

// Err folds the error-severity issues into a single error, or nil when the
// report is clean of errors.
func (r *Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	lines := make([]string, 0, len(errs))
	for _, issue := range errs {
		lines = append(lines, issue.String())
	}
	return fmt.Errorf("roster validation failed:\n%s", strings.Join(lines, "\n"))
}
