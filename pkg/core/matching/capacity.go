package matching

import (
	"context"
	"fmt"

	"github.com/maternacare/homevisit/pkg/core/model"
)

// LoadCounter counts a volunteer's visits in capacity-consuming statuses
type LoadCounter interface {
	CountActiveVisits(ctx context.Context, volunteerID int64) (int, error)
}

// ActiveLoad recomputes the volunteer's current active load. It must be read
// immediately before it gates a decision, never cached: capacity can change
// between a suggestion and its approval.
func ActiveLoad(ctx context.Context, counter LoadCounter, volunteerID int64) (int, error) {
	load, err := counter.CountActiveVisits(ctx, volunteerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count active visits: %w", err)
	}
	return load, nil
}

// HasCapacity reports whether the volunteer can take one more active visit
func HasCapacity(volunteer *model.Volunteer, activeLoad int) bool {
	return activeLoad < volunteer.ServiceLimit
}
