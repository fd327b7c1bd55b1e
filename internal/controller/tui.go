package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/blocks/internal/model"
)

// TUI implements UI with a live Bubble Tea progress view. The summary is
// printed after the program exits.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view.
func (t *TUI) Start() error {
	return t.startWithModel(newProgressModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			log.Errorf("progress view stopped: %s", err)
		}
	}()

	return nil
}

// Wait blocks until the progress view exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the progress view and waits for it to exit.
func (t *TUI) Close() {
	t.send(doneMsg{})
	t.Wait()

	t.mu.Lock()
	t.started = false
	t.program = nil
	t.mu.Unlock()
}

// EnterBlock updates the running block.
func (t *TUI) EnterBlock(scope m.Scope) {
	t.send(enterBlockMsg{scope: scope})
}

// LeaveBlock updates the running block.
func (t *TUI) LeaveBlock(scope m.Scope) {
	t.send(leaveBlockMsg{scope: scope})
}

// ReportResult counts a test unit result.
func (t *TUI) ReportResult(result m.Result) {
	t.send(resultMsg{result: result})
}

// ReportFailure counts and lists a block-level failure.
func (t *TUI) ReportFailure(result m.Result) {
	t.send(failureMsg{result: result})
}

// DisplaySuites prints the registered suites.
func (t *TUI) DisplaySuites(names []string) error {
	renderSuites(t.output, names)

	return nil
}

// DisplaySummary prints the per-suite table and failures of a run.
func (t *TUI) DisplaySummary(run m.Run) error {
	renderSummary(t.output, run)

	return nil
}

// send forwards msg to the running program; it is a no-op before Start.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}
