package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
	"github.com/maternacare/homevisit/pkg/notify"
)

// ApproveSuggestionStore defines the database operations needed for approving
// a suggested volunteer
type ApproveSuggestionStore interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetVisit(ctx context.Context, id int64) (*model.Visit, error)
	GetVolunteer(ctx context.Context, id int64) (*model.Volunteer, error)
	ScheduleVisit(ctx context.Context, visitID, volunteerID int64, from []model.VisitStatus, limit int) (*model.Visit, error)
}

// ApproveSuggestion confirms the engine's suggested volunteer for a visit.
// Only administrators may approve, and only from Awaiting Approval. Capacity
// is re-validated atomically at this point: the suggestion snapshot may have
// gone stale since it was computed.
func ApproveSuggestion(
	ctx context.Context,
	store ApproveSuggestionStore,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
	visitID int64,
	actorID int64,
) (*model.Visit, error) {
	if err := requireAdmin(ctx, store, actorID); err != nil {
		return nil, err
	}

	visit, err := store.GetVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit %d: %w", visitID, err)
	}

	if err := lifecycle.Check(lifecycle.EventApprove, visit); err != nil {
		return nil, err
	}

	if visit.SuggestedVolunteerID == 0 {
		return nil, lifecycle.ErrNoSuggestion
	}

	volunteer, err := store.GetVolunteer(ctx, visit.SuggestedVolunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer %d: %w", visit.SuggestedVolunteerID, err)
	}

	updated, err := store.ScheduleVisit(ctx, visitID, volunteer.ID,
		lifecycle.AllowedFrom(lifecycle.EventApprove), volunteer.ServiceLimit)
	if err != nil {
		return nil, err
	}

	logger.Info("Suggestion approved",
		zap.Int64("visit_id", visitID),
		zap.Int64("volunteer_id", volunteer.ID),
		zap.Int64("approved_by", actorID))

	send(ctx, dispatcher, logger, updated.MotherID, msgVolunteerAssigned(volunteer.Name, visitID))
	send(ctx, dispatcher, logger, volunteer.ID, msgYouAreAssigned(visitID))

	return updated, nil
}

// requireAdmin resolves the actor and rejects non-administrators
func requireAdmin(ctx context.Context, store interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
}, actorID int64) error {
	actor, err := store.GetUser(ctx, actorID)
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("unknown account %d: %w", actorID, lifecycle.ErrPermissionDenied)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch account %d: %w", actorID, err)
	}
	if actor.Role != model.RoleAdmin {
		return fmt.Errorf("account %d is not an administrator: %w", actorID, lifecycle.ErrPermissionDenied)
	}
	return nil
}
