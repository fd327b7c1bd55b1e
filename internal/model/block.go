package model

import "strings"

// Body is the caller-supplied unit of logic run by a block or test unit.
type Body func() error

// Hook is a setup or teardown callback.
type Hook func() error

// HookSet holds the hooks a block declares.
type HookSet struct {
	BeforeAll  []Hook
	AfterAll   []Hook
	BeforeEach []Hook
	AfterEach  []Hook
}

// Empty reports whether no hooks are declared.
func (h HookSet) Empty() bool {
	return len(h.BeforeAll) == 0 && len(h.AfterAll) == 0 &&
		len(h.BeforeEach) == 0 && len(h.AfterEach) == 0
}

// BlockKind distinguishes the grouping constructs.
type BlockKind string

const (
	// KindDescribe is the top-level grouping construct.
	KindDescribe BlockKind = "Describe"
	// KindContext is a nested grouping construct with identical lifecycle.
	KindContext BlockKind = "Context"
)

// FailureLabel is the result name used for a failure raised by the block body.
// It never collides with a test unit name recorded by It.
func (k BlockKind) FailureLabel() string {
	return "Error occurred in " + string(k) + " block"
}

// TeardownLabel is the result name used for a failure raised while releasing
// the block's scope.
func (k BlockKind) TeardownLabel() string {
	return "Error occurred in " + string(k) + " block teardown"
}

// Block is one invocation of a grouping construct.
type Block struct {
	Kind  BlockKind
	Name  string
	Tags  []string
	Body  Body
	Hooks HookSet
}

// ScopeSeparator joins block names in a qualified scope.
const ScopeSeparator = " > "

// Scope is the stack of active block names, innermost last.
type Scope []string

// Depth returns the nesting depth of the scope.
func (s Scope) Depth() int {
	return len(s)
}

// Name returns the innermost block name.
func (s Scope) Name() string {
	if len(s) == 0 {
		return ""
	}

	return s[len(s)-1]
}

func (s Scope) String() string {
	return strings.Join(s, ScopeSeparator)
}

// Qualify returns name prefixed with the scope.
func (s Scope) Qualify(name string) string {
	if len(s) == 0 {
		return name
	}

	return s.String() + ScopeSeparator + name
}
