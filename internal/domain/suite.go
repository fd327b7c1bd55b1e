package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrDuplicateSuite is returned when a suite name is registered twice.
	ErrDuplicateSuite = errors.New("suite already registered")
	// ErrNoSuites is returned when a run selects no suite.
	ErrNoSuites = errors.New("no suites selected")
)

// SuiteFunc declares the blocks of a suite against a fresh session.
type SuiteFunc func(s *Session) error

// Suite is a named, registered entry point of a test program.
type Suite struct {
	Name string
	Run  SuiteFunc
}

// SuiteRegistry collects the suites of a test program.
type SuiteRegistry struct {
	mu     sync.Mutex
	suites map[string]Suite
}

// NewSuiteRegistry creates an empty registry.
func NewSuiteRegistry() *SuiteRegistry {
	return &SuiteRegistry{suites: make(map[string]Suite)}
}

// Register adds a suite.
func (r *SuiteRegistry) Register(name string, fn SuiteFunc) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("suite: %w", ErrEmptyName)
	}

	if fn == nil {
		return fmt.Errorf("suite %q: %w", name, ErrNilBody)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.suites[name]; ok {
		return fmt.Errorf("suite %q: %w", name, ErrDuplicateSuite)
	}

	r.suites[name] = Suite{Name: name, Run: fn}

	return nil
}

// Suites returns all registered suites sorted by name.
func (r *SuiteRegistry) Suites() []Suite {
	r.mu.Lock()
	defer r.mu.Unlock()

	suites := make([]Suite, 0, len(r.suites))
	for _, suite := range r.suites {
		suites = append(suites, suite)
	}

	sort.Slice(suites, func(i, j int) bool {
		return suites[i].Name < suites[j].Name
	})

	return suites
}

// Select returns the suites whose names match any of patterns, using the same
// glob rules as block name filters. No patterns selects every suite.
func (r *SuiteRegistry) Select(patterns []string) []Suite {
	all := r.Suites()
	if len(patterns) == 0 {
		return all
	}

	selected := make([]Suite, 0, len(all))
	for _, suite := range all {
		if matchesAnyName(suite.Name, patterns) {
			selected = append(selected, suite)
		}
	}

	return selected
}
