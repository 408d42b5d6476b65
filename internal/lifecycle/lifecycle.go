package lifecycle

// Status constants used by the job request state machine.
const (
	StatusActive    = "active"
	StatusInProcess = "in_process"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Transitions are one-directional except for the explicit reopen edge
// returning a terminal request to active.
var transitions = map[string]map[string]struct{}{
	StatusActive: {
		StatusInProcess: {},
		StatusCancelled: {},
	},
	StatusInProcess: {
		StatusCompleted: {},
	},
	StatusCompleted: {
		StatusActive: {},
	},
	StatusCancelled: {
		StatusActive: {},
	},
}

// CanTransition reports whether moving a request from one status to
// another is allowed.
func CanTransition(from, to string) bool {
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// IsReopen reports whether the transition is the explicit reopen edge.
func IsReopen(from, to string) bool {
	return (from == StatusCompleted || from == StatusCancelled) && to == StatusActive
}

// IsTerminal reports whether the status ends the normal flow. Terminal
// requests only leave this state through a reopen.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// Known reports whether the status is one the machine understands.
func Known(status string) bool {
	switch status {
	case StatusActive, StatusInProcess, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
