package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/blocks/internal/model"
)

const maxRecentFailures = 5

// progressModel shows the running blocks, live counts and recent failures.
type progressModel struct {
	spinner  spinner.Model
	active   map[string]m.Scope // innermost scope per top-level block
	summary  m.Summary
	failures []m.Result
	finished bool
}

func newProgressModel() progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(blockStyle)),
		active:  make(map[string]m.Scope),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case enterBlockMsg:
		pm.active[activeKey(msg.scope)] = msg.scope
	case leaveBlockMsg:
		key := activeKey(msg.scope)
		if msg.scope.Depth() <= 1 {
			delete(pm.active, key)
		} else {
			pm.active[key] = msg.scope[:msg.scope.Depth()-1]
		}
	case resultMsg:
		pm.summary.Add(msg.result)
		pm.recordFailure(msg.result)
	case failureMsg:
		pm.summary.Add(msg.result)
		pm.recordFailure(msg.result)
	case doneMsg:
		pm.finished = true
		return pm, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return pm, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm *progressModel) recordFailure(result m.Result) {
	if !result.Failed() {
		return
	}

	pm.failures = append(pm.failures, result)
	if len(pm.failures) > maxRecentFailures {
		pm.failures = pm.failures[len(pm.failures)-maxRecentFailures:]
	}
}

func (pm progressModel) View() string {
	var b strings.Builder

	if pm.finished {
		b.WriteString("Done. ")
	} else {
		b.WriteString(pm.spinner.View())
		b.WriteString(" Running ")
	}

	fmt.Fprintf(&b, "%s %s %s %s\n",
		passStyle.Render(fmt.Sprintf("%d passed", pm.summary.Passed)),
		failStyle.Render(fmt.Sprintf("%d failed", pm.summary.Failed)),
		skipStyle.Render(fmt.Sprintf("%d skipped", pm.summary.Skipped)),
		pendingStyle.Render(fmt.Sprintf("%d pending", pm.summary.Pending)),
	)

	for _, key := range sortedKeys(pm.active) {
		b.WriteString(indentUnit)
		b.WriteString(blockStyle.Render(pm.active[key].String()))
		b.WriteString("\n")
	}

	for _, result := range pm.failures {
		name := result.Name
		if !strings.HasPrefix(name, result.Describe) {
			name = result.Describe + m.ScopeSeparator + name
		}

		b.WriteString(indentUnit)
		b.WriteString(failStyle.Render(statusMarker(result.Status) + " " + name))
		b.WriteString("\n")
	}

	return b.String()
}

func activeKey(scope m.Scope) string {
	if scope.Depth() == 0 {
		return ""
	}

	return scope[0]
}

func sortedKeys(active map[string]m.Scope) []string {
	keys := make([]string, 0, len(active))
	for key := range active {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
