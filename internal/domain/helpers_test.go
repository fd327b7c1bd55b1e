package domain

import (
	"sync"

	"github.com/mouse-blink/blocks/internal/adapter"
	m "github.com/mouse-blink/blocks/internal/model"
)

// recorder is a Reporter that records every event in order.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

func (r *recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.events...)
}

func (r *recorder) EnterBlock(scope m.Scope)   { r.add("enter " + scope.String()) }
func (r *recorder) LeaveBlock(scope m.Scope)   { r.add("leave " + scope.String()) }
func (r *recorder) ReportResult(res m.Result)  { r.add("result " + res.Name) }
func (r *recorder) ReportFailure(res m.Result) { r.add("failure " + res.Name) }

func newTestSession(rep Reporter, filter m.Filter) (*Session, *adapter.AferoDriveProvisioner) {
	provisioner := adapter.NewMemDriveProvisioner()

	return NewSession(SessionConfig{
		Name:        "test",
		Filter:      filter,
		Reporter:    rep,
		Provisioner: provisioner,
	}), provisioner
}

func ok() error { return nil }
