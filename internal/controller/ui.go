// Package controller provides the user-facing reporters for block runs.
package controller

import (
	m "github.com/mouse-blink/blocks/internal/model"
)

// UI reports block progress and displays run results.
// Implementations can use different output methods (simple text, TUI, etc).
// Progress methods may be called from several sessions at once.
type UI interface {
	Start() error
	Close()

	EnterBlock(scope m.Scope)
	LeaveBlock(scope m.Scope)
	ReportResult(result m.Result)
	ReportFailure(result m.Result)

	DisplaySuites(names []string) error
	DisplaySummary(run m.Run) error
}
