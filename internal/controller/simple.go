package controller

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/blocks/internal/model"
)

// SimpleUI implements UI by writing lines to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// EnterBlock prints the block name indented by its depth.
func (s *SimpleUI) EnterBlock(scope m.Scope) {
	s.println(formatBlock(scope))
}

// LeaveBlock prints nothing; the next block or result line closes the block.
func (s *SimpleUI) LeaveBlock(m.Scope) {}

// ReportResult prints a test unit result.
func (s *SimpleUI) ReportResult(result m.Result) {
	s.println(formatResult(result))
}

// ReportFailure prints a block-level failure.
func (s *SimpleUI) ReportFailure(result m.Result) {
	s.println(formatResult(result))
}

// DisplaySuites prints the registered suites.
func (s *SimpleUI) DisplaySuites(names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	renderSuites(s.cmd.OutOrStdout(), names)

	return nil
}

// DisplaySummary prints the per-suite table and failures of a run.
func (s *SimpleUI) DisplaySummary(run m.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	renderSummary(s.cmd.OutOrStdout(), run)

	return nil
}

func (s *SimpleUI) println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintln(s.cmd.OutOrStdout(), line)
}
