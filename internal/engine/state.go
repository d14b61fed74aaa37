package engine

import "fmt"

// State of a single invocation. Succeeded and Failed are terminal.
type State int

const (
	StateConfiguring State = iota
	StateDispatching
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StateDispatching:
		return "dispatching"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

func (s State) canAdvance(next State) bool {
	switch s {
	case StateConfiguring:
		return next == StateDispatching || next == StateFailed
	case StateDispatching:
		return next == StateSucceeded || next == StateFailed
	}
	return false
}
