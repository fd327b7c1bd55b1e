package domain

import (
	"errors"

	m "github.com/mouse-blink/blocks/internal/model"
)

// HookRegistry stores declared hooks keyed by nesting depth. Hooks are
// registered from a block's declaration before its body runs and cleared once
// the block's teardown has run, so they are never visible outside the block.
type HookRegistry struct {
	levels map[int]m.HookSet
}

// NewHookRegistry creates an empty registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{levels: make(map[int]m.HookSet)}
}

// Register appends hooks to the set pending at depth.
func (r *HookRegistry) Register(depth int, hooks m.HookSet) {
	set := r.levels[depth]
	set.BeforeAll = append(set.BeforeAll, hooks.BeforeAll...)
	set.AfterAll = append(set.AfterAll, hooks.AfterAll...)
	set.BeforeEach = append(set.BeforeEach, hooks.BeforeEach...)
	set.AfterEach = append(set.AfterEach, hooks.AfterEach...)
	r.levels[depth] = set
}

// Pending returns the hooks currently registered at depth.
func (r *HookRegistry) Pending(depth int) m.HookSet {
	return r.levels[depth]
}

// Clear drops every hook registered at depth.
func (r *HookRegistry) Clear(depth int) {
	delete(r.levels, depth)
}

// InvokeSetup runs the BeforeAll hooks pending at depth in declaration order,
// stopping at the first failure.
func (r *HookRegistry) InvokeSetup(depth int) error {
	hooks := r.levels[depth].BeforeAll
	if len(hooks) > 0 {
		log.Debugf("running %d setup hook(s) at depth %d", len(hooks), depth)
	}

	for _, hook := range hooks {
		if outcome := execute(hook); outcome.Failed() {
			return outcome.Error()
		}
	}

	return nil
}

// InvokeTeardown runs every AfterAll hook pending at depth. A failing hook
// does not stop the remaining ones; all failures are joined.
func (r *HookRegistry) InvokeTeardown(depth int) error {
	hooks := r.levels[depth].AfterAll
	if len(hooks) > 0 {
		log.Debugf("running %d teardown hook(s) at depth %d", len(hooks), depth)
	}

	return invokeAll(hooks)
}

// EachSetup returns the BeforeEach hooks that apply to a test unit at depth,
// outermost first.
func (r *HookRegistry) EachSetup(depth int) []m.Hook {
	var hooks []m.Hook
	for level := 1; level <= depth; level++ {
		hooks = append(hooks, r.levels[level].BeforeEach...)
	}

	return hooks
}

// EachTeardown returns the AfterEach hooks that apply to a test unit at depth,
// innermost first.
func (r *HookRegistry) EachTeardown(depth int) []m.Hook {
	var hooks []m.Hook
	for level := depth; level >= 1; level-- {
		hooks = append(hooks, r.levels[level].AfterEach...)
	}

	return hooks
}

func invokeAll(hooks []m.Hook) error {
	var errs []error

	for _, hook := range hooks {
		if outcome := execute(hook); outcome.Failed() {
			errs = append(errs, outcome.Error())
		}
	}

	return errors.Join(errs...)
}
