package domain

import (
	"strings"

	m "github.com/mouse-blink/blocks/internal/model"
)

// suiteReporter qualifies every reported scope and result with the suite
// name, so progress from concurrently running suites stays attributable.
// The session's own result log is not affected.
type suiteReporter struct {
	suite string
	next  Reporter
}

func (r suiteReporter) EnterBlock(scope m.Scope) {
	r.next.EnterBlock(r.qualifyScope(scope))
}

func (r suiteReporter) LeaveBlock(scope m.Scope) {
	r.next.LeaveBlock(r.qualifyScope(scope))
}

func (r suiteReporter) ReportResult(result m.Result) {
	r.next.ReportResult(r.qualifyResult(result))
}

func (r suiteReporter) ReportFailure(result m.Result) {
	r.next.ReportFailure(r.qualifyResult(result))
}

func (r suiteReporter) qualifyScope(scope m.Scope) m.Scope {
	return append(m.Scope{r.suite}, scope...)
}

func (r suiteReporter) qualifyResult(result m.Result) m.Result {
	if result.Describe != "" && strings.HasPrefix(result.Name, result.Describe+m.ScopeSeparator) {
		result.Name = r.suite + m.ScopeSeparator + result.Name
	}

	if result.Describe == "" {
		result.Describe = r.suite
	} else {
		result.Describe = r.suite + m.ScopeSeparator + result.Describe
	}

	return result
}
