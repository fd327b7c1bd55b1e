package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMockScope is returned when a mock is declared outside any block.
	ErrNoMockScope = errors.New("mocks can only be declared inside a block")
	// ErrMockNotFound is returned when no active scope mocks a command.
	ErrMockNotFound = errors.New("command is not mocked")
)

// MockFunc is a stand-in behavior for a command.
type MockFunc func(args ...any) (any, error)

type mockEntry struct {
	fn    MockFunc
	calls int
}

// MockRegistry keeps one mock table per active block. Lookups resolve to the
// innermost declaration; a table is discarded when its block exits.
type MockRegistry struct {
	scopes []map[string]*mockEntry
}

// NewMockRegistry creates a registry with no active scope.
func NewMockRegistry() *MockRegistry {
	return &MockRegistry{}
}

// Enter opens a mock scope for a block.
func (r *MockRegistry) Enter() {
	r.scopes = append(r.scopes, make(map[string]*mockEntry))
}

// Exit discards the innermost mock scope. Exiting with no scope is a no-op.
func (r *MockRegistry) Exit() {
	if len(r.scopes) == 0 {
		return
	}

	r.scopes[len(r.scopes)-1] = nil
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// Depth returns the number of open mock scopes.
func (r *MockRegistry) Depth() int {
	return len(r.scopes)
}

// Register declares fn as the mock for command in the innermost scope.
func (r *MockRegistry) Register(command string, fn MockFunc) error {
	if len(r.scopes) == 0 {
		return ErrNoMockScope
	}

	if fn == nil {
		return fmt.Errorf("mock for %q: %w", command, ErrNilBody)
	}

	r.scopes[len(r.scopes)-1][command] = &mockEntry{fn: fn}

	return nil
}

// Call invokes the innermost mock for command.
func (r *MockRegistry) Call(command string, args ...any) (any, error) {
	entry := r.lookup(command)
	if entry == nil {
		return nil, fmt.Errorf("%q: %w", command, ErrMockNotFound)
	}

	entry.calls++

	return entry.fn(args...)
}

// CallCount returns how often the innermost mock for command was called.
func (r *MockRegistry) CallCount(command string) int {
	entry := r.lookup(command)
	if entry == nil {
		return 0
	}

	return entry.calls
}

func (r *MockRegistry) lookup(command string) *mockEntry {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if entry, ok := r.scopes[i][command]; ok {
			return entry
		}
	}

	return nil
}
