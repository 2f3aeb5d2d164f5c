package lifecycle

import "errors"

// Domain errors surfaced by lifecycle transitions and the services built on
// top of them. Callers distinguish them with errors.Is; anything else that
// comes out of a service is an infrastructure failure from a store or client.
var (
	// ErrInvalidTransition means the requested event is not legal from the
	// visit's current status. Nothing was mutated and no notification fired.
	ErrInvalidTransition = errors.New("invalid visit transition")

	// ErrCapacityExceeded means the target volunteer is already at their
	// service limit at the moment the assignment was attempted.
	ErrCapacityExceeded = errors.New("volunteer service limit reached")

	// ErrPermissionDenied means the acting user is not authorized for the
	// action (wrong role, or not the owning recipient / assigned volunteer).
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNoSuggestion means an approval was attempted on a visit that has
	// no suggested volunteer.
	ErrNoSuggestion = errors.New("no suggested volunteer exists")
)
