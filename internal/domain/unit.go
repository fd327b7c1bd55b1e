package domain

import (
	"errors"
	"fmt"
	"time"

	m "github.com/mouse-blink/blocks/internal/model"
)

// ErrOutsideBlock is returned when a test unit is declared outside any block.
var ErrOutsideBlock = errors.New("test units must be declared inside a block")

// UnitOption configures a test unit.
type UnitOption func(*unit)

type unit struct {
	name    string
	body    m.Body
	skip    bool
	pending bool
}

// SkipUnit records the unit as skipped without running it.
func SkipUnit() UnitOption {
	return func(u *unit) {
		u.skip = true
	}
}

// PendingUnit records the unit as pending without running it.
func PendingUnit() UnitOption {
	return func(u *unit) {
		u.pending = true
	}
}

// It runs body as a single test unit of the enclosing block and records its
// result. Failures are caught here; they never reach the enclosing block.
func (s *Session) It(name string, body m.Body, opts ...UnitOption) error {
	if name == "" {
		return fmt.Errorf("It: %w", ErrEmptyName)
	}

	if body == nil {
		return fmt.Errorf("It %q: %w", name, ErrNilBody)
	}

	if s.Depth() == 0 {
		return fmt.Errorf("It %q: %w", name, ErrOutsideBlock)
	}

	u := unit{name: name, body: body}
	for _, opt := range opts {
		opt(&u)
	}

	result := s.runUnit(u)
	s.record(result)
	s.reporter.ReportResult(result)

	return nil
}

func (s *Session) runUnit(u unit) m.Result {
	result := m.Result{
		Name:     s.scopes.Qualify(u.name),
		Describe: s.scopes.String(),
		Status:   m.StatusPassed,
	}

	switch {
	case u.skip:
		result.Status = m.StatusSkipped
		return result
	case u.pending:
		result.Status = m.StatusPending
		return result
	}

	depth := s.Depth()
	start := time.Now()

	outcome := s.runEach(depth, u.body)
	result.Duration = time.Since(start)

	if outcome.Failed() {
		result.Status = unitStatus(outcome.Err)
		result.Message = outcome.Message
		result.Location = outcome.Location
	}

	return result
}

// runEach wraps body in the BeforeEach and AfterEach hooks that apply at
// depth. AfterEach hooks run even when setup or the body fail; the first
// failure wins.
func (s *Session) runEach(depth int, body m.Body) Outcome {
	outcome := Outcome{Status: Completed}

	for _, hook := range s.hooks.EachSetup(depth) {
		if outcome = execute(hook); outcome.Failed() {
			break
		}
	}

	if !outcome.Failed() {
		outcome = execute(body)
	}

	if err := invokeAll(s.hooks.EachTeardown(depth)); err != nil && !outcome.Failed() {
		outcome = outcomeFromError(err)
	}

	return outcome
}

func unitStatus(err error) m.Status {
	switch {
	case errors.Is(err, ErrSkipped):
		return m.StatusSkipped
	case errors.Is(err, ErrPending):
		return m.StatusPending
	default:
		return m.StatusFailed
	}
}
