package controller

import m "github.com/mouse-blink/blocks/internal/model"

// Message types.
type enterBlockMsg struct {
	scope m.Scope
}

type leaveBlockMsg struct {
	scope m.Scope
}

type resultMsg struct {
	result m.Result
}

type failureMsg struct {
	result m.Result
}

type doneMsg struct{}
