// Package lifecycle defines the visit state machine: which events are legal
// from which statuses, and who may trigger them. It owns policy only; the
// atomic capacity-gated writes happen in the stores that apply a transition.
package lifecycle

import (
	"github.com/maternacare/homevisit/pkg/core/model"
)

// Event is a named lifecycle action on a visit
type Event string

const (
	EventSuggest    Event = "suggest"
	EventApprove    Event = "approve"
	EventAssign     Event = "assign"
	EventComplete   Event = "complete"
	EventCancel     Event = "cancel"
	EventReschedule Event = "reschedule"
)

// allowedFrom lists the statuses each event may fire from. Assign, cancel
// and reschedule are legal from any pre-terminal status, so they are handled
// by preTerminal rather than listed here.
var allowedFrom = map[Event][]model.VisitStatus{
	EventSuggest:  {model.StatusPending},
	EventApprove:  {model.StatusAwaitingApproval},
	EventComplete: {model.StatusScheduled},
}

// preTerminal events are legal from every non-terminal status
var preTerminal = map[Event]bool{
	EventAssign:     true,
	EventCancel:     true,
	EventReschedule: true,
}

// AllowedFrom returns the statuses event may legally fire from
func AllowedFrom(event Event) []model.VisitStatus {
	if preTerminal[event] {
		return []model.VisitStatus{model.StatusPending, model.StatusAwaitingApproval, model.StatusScheduled}
	}
	return allowedFrom[event]
}

// CanFire reports whether event is legal from the given status
func CanFire(event Event, from model.VisitStatus) bool {
	for _, s := range AllowedFrom(event) {
		if s == from {
			return true
		}
	}
	return false
}

// Check returns ErrInvalidTransition if event is not legal from the visit's
// current status, nil otherwise.
func Check(event Event, visit *model.Visit) error {
	if !CanFire(event, visit.Status) {
		return ErrInvalidTransition
	}
	return nil
}
