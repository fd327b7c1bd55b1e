// Package blocks is the public entry point for writing Describe-block test
// programs. A program registers suites and hands control to Main:
//
//	func main() {
//		blocks.Register("calculator", func(s *blocks.Session) error {
//			return s.Describe("Add numbers", func() error {
//				return s.It("adds", func() error {
//					if add(2, 3) != 5 {
//						return blocks.Fail("2 + 3 should be 5")
//					}
//					return nil
//				})
//			}, blocks.WithTags("fast"))
//		})
//		blocks.Main()
//	}
package blocks

import (
	"github.com/mouse-blink/blocks/cmd"
	"github.com/mouse-blink/blocks/internal/adapter"
	"github.com/mouse-blink/blocks/internal/domain"
	m "github.com/mouse-blink/blocks/internal/model"
)

// Session is the handle through which blocks, test units and mocks are declared.
type Session = domain.Session

// SessionConfig configures a standalone Session.
type SessionConfig = domain.SessionConfig

// SuiteFunc declares the blocks of a suite.
type SuiteFunc = domain.SuiteFunc

// Body is the logic of a block or test unit.
type Body = m.Body

// Hook is a setup or teardown callback.
type Hook = m.Hook

// Result is one entry of a session's result log.
type Result = m.Result

// Filter selects blocks by name and tag.
type Filter = m.Filter

// DriveProvisioner creates and removes the test drives of a session.
type DriveProvisioner = adapter.DriveProvisioner

// MockFunc is a stand-in behavior for a command.
type MockFunc = domain.MockFunc

// Block and test unit options.
var (
	WithTags    = domain.WithTags
	BeforeAll   = domain.BeforeAll
	AfterAll    = domain.AfterAll
	BeforeEach  = domain.BeforeEach
	AfterEach   = domain.AfterEach
	SkipUnit    = domain.SkipUnit
	PendingUnit = domain.PendingUnit
)

// Failure helpers.
var (
	Fail    = domain.Fail
	Failf   = domain.Failf
	Skip    = domain.Skip
	Pending = domain.Pending
)

// NewSession creates a standalone session, for running blocks outside Main.
func NewSession(cfg SessionConfig) *Session {
	return domain.NewSession(cfg)
}

// NewMemDrives returns a provisioner keeping test drives in memory.
func NewMemDrives() DriveProvisioner {
	return adapter.NewMemDriveProvisioner()
}

// NewLocalDrives returns a provisioner creating test drives below root on disk.
// An empty root uses the system temp directory.
func NewLocalDrives(root string) DriveProvisioner {
	return adapter.NewLocalDriveProvisioner(m.Path(root))
}

// Register adds a suite to the program. It panics on an invalid or duplicate
// suite, since registration happens at program start.
func Register(name string, fn SuiteFunc) {
	if err := cmd.Register(name, fn); err != nil {
		panic(err)
	}
}

// Main runs the command line interface over the registered suites.
func Main() {
	cmd.Execute()
}
