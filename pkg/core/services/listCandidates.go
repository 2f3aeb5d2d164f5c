package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/matching"
	"github.com/maternacare/homevisit/pkg/core/model"
)

// ListCandidatesStore defines the database operations needed for the manual
// assignment roster
type ListCandidatesStore interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListVolunteers(ctx context.Context) ([]model.Volunteer, error)
	CountActiveVisits(ctx context.Context, volunteerID int64) (int, error)
}

// Candidate is a volunteer with their current workload, as shown to an
// administrator choosing a manual assignment
type Candidate struct {
	Volunteer  model.Volunteer
	ActiveLoad int
	Remaining  int
}

// ListCandidates returns every volunteer with a freshly computed active load.
// Administrators use it to pick a manual assignment when no suggestion fits.
func ListCandidates(
	ctx context.Context,
	store ListCandidatesStore,
	logger *zap.Logger,
	actorID int64,
) ([]Candidate, error) {
	if err := requireAdmin(ctx, store, actorID); err != nil {
		return nil, err
	}

	volunteers, err := store.ListVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}

	candidates := make([]Candidate, 0, len(volunteers))
	for _, v := range volunteers {
		load, err := matching.ActiveLoad(ctx, store, v.ID)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Volunteer:  v,
			ActiveLoad: load,
			Remaining:  v.ServiceLimit - load,
		})
	}

	logger.Debug("Candidate roster computed", zap.Int("count", len(candidates)))
	return candidates, nil
}
