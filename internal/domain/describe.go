package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/blocks/internal/model"
)

var (
	// ErrEmptyName is returned when a block or test unit has no name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrNilBody is returned when a block or test unit has no body.
	ErrNilBody = errors.New("body must not be nil")
)

// BlockOption declares tags or hooks on a block.
type BlockOption func(*m.Block)

// WithTags tags the block for filtering.
func WithTags(tags ...string) BlockOption {
	return func(b *m.Block) {
		b.Tags = append(b.Tags, tags...)
	}
}

// BeforeAll runs hook once before the block body.
func BeforeAll(hook m.Hook) BlockOption {
	return func(b *m.Block) {
		b.Hooks.BeforeAll = append(b.Hooks.BeforeAll, hook)
	}
}

// AfterAll runs hook once after the block body, whatever its outcome.
func AfterAll(hook m.Hook) BlockOption {
	return func(b *m.Block) {
		b.Hooks.AfterAll = append(b.Hooks.AfterAll, hook)
	}
}

// BeforeEach runs hook before every test unit inside the block.
func BeforeEach(hook m.Hook) BlockOption {
	return func(b *m.Block) {
		b.Hooks.BeforeEach = append(b.Hooks.BeforeEach, hook)
	}
}

// AfterEach runs hook after every test unit inside the block.
func AfterEach(hook m.Hook) BlockOption {
	return func(b *m.Block) {
		b.Hooks.AfterEach = append(b.Hooks.AfterEach, hook)
	}
}

// Describe runs body as a named block. It returns an error only when the
// block is malformed; failures inside the body are recorded in the session.
func (s *Session) Describe(name string, body m.Body, opts ...BlockOption) error {
	return s.runBlock(m.KindDescribe, name, body, opts)
}

// Context is Describe for a nested grouping. It shares the lifecycle but not
// the filtering: a Context runs whenever its enclosing block runs.
func (s *Session) Context(name string, body m.Body, opts ...BlockOption) error {
	return s.runBlock(m.KindContext, name, body, opts)
}

func (s *Session) runBlock(kind m.BlockKind, name string, body m.Body, opts []BlockOption) error {
	block, err := newBlock(kind, name, body, opts)
	if err != nil {
		return err
	}

	// Context groups inside a selected Describe and is never filtered itself.
	if kind == m.KindDescribe && !ShouldRun(block.Name, block.Tags, s.filter) {
		log.Debugf("%s %q filtered out", kind, name)
		return nil
	}

	s.run(block)

	return nil
}

func newBlock(kind m.BlockKind, name string, body m.Body, opts []BlockOption) (m.Block, error) {
	if name == "" {
		return m.Block{}, fmt.Errorf("%s: %w", kind, ErrEmptyName)
	}

	if body == nil {
		return m.Block{}, fmt.Errorf("%s %q: %w", kind, name, ErrNilBody)
	}

	block := m.Block{Kind: kind, Name: name, Body: body}
	for _, opt := range opts {
		opt(&block)
	}

	return block, nil
}

// run enters the block's scope, executes it and always releases the scope
// before leaving.
func (s *Session) run(block m.Block) {
	scope := s.push(block.Name)
	depth := scope.Depth()
	qualified := scope.String()

	defer func() {
		s.pop()
		log.Debugf("left %s %q", block.Kind, qualified)
		s.reporter.LeaveBlock(scope)
	}()

	log.Debugf("entering %s %q at depth %d", block.Kind, qualified, depth)
	s.reporter.EnterBlock(scope)

	enclosing := s.drive

	var drive m.Path

	s.mocks.Enter()

	defer func() {
		if err := s.release(depth, drive, enclosing); err != nil {
			s.recordFailure(block.Kind.TeardownLabel(), qualified, outcomeFromError(err))
		}
	}()

	if outcome := s.setup(depth, block, &drive); outcome.Failed() {
		s.recordFailure(block.Kind.FailureLabel(), qualified, outcome)
		return
	}

	if outcome := execute(block.Body); outcome.Failed() {
		s.recordFailure(block.Kind.FailureLabel(), qualified, outcome)
	}
}

// setup provisions the block's test drive, registers its hooks and runs the
// setup hooks pending at depth.
func (s *Session) setup(depth int, block m.Block, drive *m.Path) Outcome {
	root, err := s.provisioner.Provision("")
	if err != nil {
		return outcomeFromError(err)
	}

	*drive = root
	s.drive = root

	s.hooks.Register(depth, block.Hooks)

	if err := s.hooks.InvokeSetup(depth); err != nil {
		return outcomeFromError(err)
	}

	return Outcome{Status: Completed}
}

// release runs teardown hooks, clears hooks and mocks registered at depth,
// removes the block's drive and restores the enclosing one. Every step runs
// even when an earlier one fails.
func (s *Session) release(depth int, drive, enclosing m.Path) error {
	var errs []error

	if err := s.hooks.InvokeTeardown(depth); err != nil {
		errs = append(errs, err)
	}

	s.hooks.Clear(depth)
	s.mocks.Exit()

	if err := s.provisioner.Release(drive); err != nil {
		errs = append(errs, err)
	}

	s.drive = ""

	if enclosing != "" {
		restored, err := s.provisioner.Provision(enclosing)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.drive = restored
		}
	}

	return errors.Join(errs...)
}
