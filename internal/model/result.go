// Package model defines the data structures shared by the block engine.
package model

import "time"

// Status is the outcome of a single result record.
type Status string

const (
	// StatusPassed marks a test unit that completed without failure.
	StatusPassed Status = "passed"
	// StatusFailed marks a failing test unit or a block-level failure.
	StatusFailed Status = "failed"
	// StatusSkipped marks a test unit that was skipped on request.
	StatusSkipped Status = "skipped"
	// StatusPending marks a test unit that is declared but not yet implemented.
	StatusPending Status = "pending"
)

// Result is a single entry in a session's result log.
type Result struct {
	Name     string        `yaml:"name"`
	Describe string        `yaml:"describe,omitempty"` // qualified enclosing block
	Status   Status        `yaml:"status"`
	Message  string        `yaml:"message,omitempty"`
	Location string        `yaml:"location,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
}

// Failed reports whether the result counts as a failure.
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}

// SuiteResult holds the results produced by one suite's session.
type SuiteResult struct {
	Suite   string   `yaml:"suite"`
	Results []Result `yaml:"results"`
}

// Run is a complete, persisted test run.
type Run struct {
	Started  time.Time     `yaml:"started"`
	Duration time.Duration `yaml:"duration"`
	Suites   []SuiteResult `yaml:"suites"`
}

// Summary counts results by status.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
	Pending int
}

// Total returns the number of counted results.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped + s.Pending
}

// Add accumulates the statuses of results into the summary.
func (s *Summary) Add(results ...Result) {
	for _, r := range results {
		switch r.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		case StatusPending:
			s.Pending++
		}
	}
}

// Summary counts the results of every suite in the run.
func (r Run) Summary() Summary {
	var s Summary
	for _, suite := range r.Suites {
		s.Add(suite.Results...)
	}

	return s
}
