// Package domain implements the block execution engine: filtering, scoped
// resource lifecycle, body execution and result recording.
package domain

import (
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"

	"github.com/mouse-blink/blocks/internal/adapter"
	m "github.com/mouse-blink/blocks/internal/model"
)

var log = commonlog.GetLogger("blocks.domain")

// SessionConfig configures a new Session.
type SessionConfig struct {
	// Name identifies the session in logs, usually the suite name.
	Name string
	// Root is the directory test drives are created under.
	Root        m.Path
	Filter      m.Filter
	Reporter    Reporter
	Provisioner adapter.DriveProvisioner
}

// Session is the state shared by every block of one run. It is not safe for
// concurrent use; independent runs each get their own Session.
type Session struct {
	name        string
	filter      m.Filter
	scopes      m.Scope
	results     []m.Result
	drive       m.Path
	hooks       *HookRegistry
	mocks       *MockRegistry
	reporter    Reporter
	provisioner adapter.DriveProvisioner
}

// NewSession creates a session with an empty scope stack and result log.
func NewSession(cfg SessionConfig) *Session {
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	provisioner := cfg.Provisioner
	if provisioner == nil {
		provisioner = adapter.NewLocalDriveProvisioner(cfg.Root)
	}

	return &Session{
		name:        cfg.Name,
		filter:      cfg.Filter,
		hooks:       NewHookRegistry(),
		mocks:       NewMockRegistry(),
		reporter:    reporter,
		provisioner: provisioner,
	}
}

// Name returns the session name.
func (s *Session) Name() string {
	return s.name
}

// Filter returns the active filter.
func (s *Session) Filter() m.Filter {
	return s.filter
}

// Depth returns the current nesting depth.
func (s *Session) Depth() int {
	return len(s.scopes)
}

// Scope returns a copy of the active scope stack.
func (s *Session) Scope() m.Scope {
	return append(m.Scope(nil), s.scopes...)
}

// Results returns a copy of the result log.
func (s *Session) Results() []m.Result {
	return append([]m.Result(nil), s.results...)
}

// Summary counts the session's results by status.
func (s *Session) Summary() m.Summary {
	var summary m.Summary
	summary.Add(s.results...)

	return summary
}

// DrivePath returns the root of the innermost test drive, or "" outside a block.
func (s *Session) DrivePath() m.Path {
	return s.drive
}

// TestDrive returns a filesystem rooted at the innermost test drive, or nil
// outside a block.
func (s *Session) TestDrive() afero.Fs {
	if s.drive == "" {
		return nil
	}

	return afero.NewBasePathFs(s.provisioner.Fs(), string(s.drive))
}

// Mock declares fn as the stand-in for command until the current block exits.
func (s *Session) Mock(command string, fn MockFunc) error {
	return s.mocks.Register(command, fn)
}

// Call invokes the active mock for command.
func (s *Session) Call(command string, args ...any) (any, error) {
	return s.mocks.Call(command, args...)
}

// CallCount returns how often the active mock for command was called.
func (s *Session) CallCount(command string) int {
	return s.mocks.CallCount(command)
}

// RunSuite runs fn as the top level of the session. A failure escaping fn is
// recorded as a single suite-level failure.
func (s *Session) RunSuite(fn func(*Session) error) {
	outcome := execute(func() error { return fn(s) })
	if outcome.Failed() {
		s.recordFailure(suiteFailureLabel, "", outcome)
	}
}

const suiteFailureLabel = "Error occurred in suite"

func (s *Session) push(name string) m.Scope {
	s.scopes = append(s.scopes, name)

	return s.Scope()
}

func (s *Session) pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
}

func (s *Session) record(result m.Result) {
	s.results = append(s.results, result)
}

func (s *Session) recordFailure(label, describe string, outcome Outcome) {
	result := m.Result{
		Name:     label,
		Describe: describe,
		Status:   m.StatusFailed,
		Message:  outcome.Message,
		Location: outcome.Location,
	}

	s.record(result)
	s.reporter.ReportFailure(result)
}
