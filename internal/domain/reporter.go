package domain

import m "github.com/mouse-blink/blocks/internal/model"

// Reporter observes a session. Implementations shared between sessions must be
// safe for concurrent use.
type Reporter interface {
	// EnterBlock is called once per executed block with the full scope.
	EnterBlock(scope m.Scope)
	// LeaveBlock is called after the block's scope has been released.
	LeaveBlock(scope m.Scope)
	// ReportResult is called for every test unit result.
	ReportResult(result m.Result)
	// ReportFailure is called for every block-level failure.
	ReportFailure(result m.Result)
}

type nopReporter struct{}

func (nopReporter) EnterBlock(m.Scope)     {}
func (nopReporter) LeaveBlock(m.Scope)     {}
func (nopReporter) ReportResult(m.Result)  {}
func (nopReporter) ReportFailure(m.Result) {}
