package domain

import "strings"

// Status represents the lifecycle state of a lead in the builder's pipeline.
type Status string

const (
	StatusUnknown    Status = ""
	StatusNew        Status = "new"
	StatusQuoted     Status = "quoted"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusWithdrawn  Status = "withdrawn"
)

var validStatuses = map[Status]struct{}{
	StatusNew:        {},
	StatusQuoted:     {},
	StatusAccepted:   {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusWithdrawn:  {},
}

var allowedTransitions = map[Status]map[Status]struct{}{
	StatusNew: {
		StatusQuoted:    {},
		StatusWithdrawn: {},
	},
	StatusQuoted: {
		StatusAccepted:  {},
		StatusWithdrawn: {},
	},
	StatusAccepted: {
		StatusInProgress: {},
		StatusWithdrawn:  {},
	},
	StatusInProgress: {
		StatusCompleted: {},
		StatusWithdrawn: {},
	},
	// Completed and withdrawn are terminal; a withdrawn lead may be
	// re-opened by the homeowner, which arrives as a fresh lead.
	StatusCompleted: {},
	StatusWithdrawn: {},
}

// ParseStatus normalises and validates an incoming status string.
func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	if status == StatusUnknown {
		return StatusUnknown, invalidStatusError("blank")
	}
	if _, ok := validStatuses[status]; !ok {
		return StatusUnknown, invalidStatusError(raw)
	}
	return status, nil
}

// Validate ensures the status is part of the supported workflow.
func (s Status) Validate() error {
	if _, ok := validStatuses[s]; !ok {
		return invalidStatusError(string(s))
	}
	return nil
}

// IsTerminal reports whether the status represents a finished lead.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusWithdrawn
}

// Label returns the human-readable form shown in the dashboard.
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusQuoted:
		return "Quoted"
	case StatusAccepted:
		return "Accepted"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusWithdrawn:
		return "Withdrawn"
	default:
		return "Unknown"
	}
}

// CanTransitionTo verifies whether a transition to the target status is allowed.
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if s == target {
		return nil
	}
	if transitions, ok := allowedTransitions[s]; ok {
		if _, allowed := transitions[target]; allowed {
			return nil
		}
	}
	return invalidTransitionError(s, target)
}
