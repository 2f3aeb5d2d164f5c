package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/notify"
)

// AssignVolunteerStore defines the database operations needed for manual
// assignment. It is the same surface approval needs.
type AssignVolunteerStore = ApproveSuggestionStore

// AssignVolunteer assigns a volunteer chosen by an administrator, overriding
// any suggestion. Legal from any pre-terminal status, gated by the same
// atomic capacity check as approval.
func AssignVolunteer(
	ctx context.Context,
	store AssignVolunteerStore,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
	visitID int64,
	volunteerID int64,
	actorID int64,
) (*model.Visit, error) {
	if err := requireAdmin(ctx, store, actorID); err != nil {
		return nil, err
	}

	visit, err := store.GetVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit %d: %w", visitID, err)
	}

	if err := lifecycle.Check(lifecycle.EventAssign, visit); err != nil {
		return nil, err
	}

	volunteer, err := store.GetVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer %d: %w", volunteerID, err)
	}

	updated, err := store.ScheduleVisit(ctx, visitID, volunteer.ID,
		lifecycle.AllowedFrom(lifecycle.EventAssign), volunteer.ServiceLimit)
	if err != nil {
		return nil, err
	}

	logger.Info("Volunteer assigned manually",
		zap.Int64("visit_id", visitID),
		zap.Int64("volunteer_id", volunteer.ID),
		zap.Int64("assigned_by", actorID))

	send(ctx, dispatcher, logger, updated.MotherID, msgVolunteerAssigned(volunteer.Name, visitID))
	send(ctx, dispatcher, logger, volunteer.ID, msgYouAreAssigned(visitID))

	return updated, nil
}
