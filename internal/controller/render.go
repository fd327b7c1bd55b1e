package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/blocks/internal/model"
)

const indentUnit = "  "

// resultDepth derives the nesting depth of a result from its qualified block.
func resultDepth(result m.Result) int {
	if result.Describe == "" {
		return 0
	}

	return strings.Count(result.Describe, m.ScopeSeparator) + 1
}

func formatBlock(scope m.Scope) string {
	indent := strings.Repeat(indentUnit, max(scope.Depth()-1, 0))

	return indent + blockStyle.Render(scope.Name())
}

func formatResult(result m.Result) string {
	indent := strings.Repeat(indentUnit, resultDepth(result))
	style := statusStyle(result.Status)

	name := result.Name
	if prefix := result.Describe + m.ScopeSeparator; result.Describe != "" && strings.HasPrefix(name, prefix) {
		name = strings.TrimPrefix(name, prefix)
	}

	var b strings.Builder

	b.WriteString(indent)
	b.WriteString(style.Render(statusMarker(result.Status) + " " + name))

	if result.Duration > 0 {
		b.WriteString(" ")
		b.WriteString(detailStyle.Render(formatDuration(result.Duration)))
	}

	if result.Message != "" {
		fmt.Fprintf(&b, "\n%s%s%s", indent, indentUnit, style.Render(result.Message))
	}

	if result.Location != "" && result.Failed() {
		fmt.Fprintf(&b, "\n%s%s%s", indent, indentUnit, detailStyle.Render("at "+result.Location))
	}

	return b.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}

	return fmt.Sprintf("%dms", d.Milliseconds())
}

// renderSummary writes a per-suite table followed by the list of failures.
func renderSummary(w io.Writer, run m.Run) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Passed", "Failed", "Skipped", "Pending"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var failures []m.Result

	for _, suite := range run.Suites {
		var s m.Summary
		s.Add(suite.Results...)

		table.Append([]string{
			suite.Suite,
			fmt.Sprintf("%d", s.Passed),
			fmt.Sprintf("%d", s.Failed),
			fmt.Sprintf("%d", s.Skipped),
			fmt.Sprintf("%d", s.Pending),
		})

		for _, result := range suite.Results {
			if result.Failed() {
				failures = append(failures, result)
			}
		}
	}

	total := run.Summary()
	table.SetFooter([]string{
		fmt.Sprintf("Total %d", total.Total()),
		fmt.Sprintf("%d", total.Passed),
		fmt.Sprintf("%d", total.Failed),
		fmt.Sprintf("%d", total.Skipped),
		fmt.Sprintf("%d", total.Pending),
	})

	table.Render()
	_, _ = fmt.Fprintf(w, "\n%s", tableBuffer.String())

	if len(failures) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w, failStyle.Render("Failures:"))

	for _, result := range failures {
		name := result.Name
		if result.Describe != "" && !strings.HasPrefix(name, result.Describe) {
			name = result.Describe + m.ScopeSeparator + name
		}

		_, _ = fmt.Fprintf(w, "%s%s\n", indentUnit, failStyle.Render(name))
		if result.Message != "" {
			_, _ = fmt.Fprintf(w, "%s%s%s\n", indentUnit, indentUnit, result.Message)
		}

		if result.Location != "" {
			_, _ = fmt.Fprintf(w, "%s%s%s\n", indentUnit, indentUnit, detailStyle.Render("at "+result.Location))
		}
	}
}

func renderSuites(w io.Writer, names []string) {
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No suites registered")
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, name := range names {
		table.Append([]string{name})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Suites %d", len(names))})
	table.Render()
	_, _ = fmt.Fprint(w, tableBuffer.String())
}
