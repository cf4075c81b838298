package tui

import (
	"github.com/techridge/demand/internal/domain"
)

// RosterLoadedMsg carries the roster after the initial load command.
type RosterLoadedMsg struct {
	Employers []domain.Employer
}

// DemandComputedMsg carries a freshly computed aggregate demand summary.
type DemandComputedMsg struct {
	Summary *domain.DemandSummary
	Err     error
}

// ErrorMsg signals a fatal error (e.g. roster load failure).
type ErrorMsg struct {
	Err error
}
