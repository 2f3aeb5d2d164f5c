package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/notify"
)

// CompleteVisitStore defines the database operations needed for completing a visit
type CompleteVisitStore interface {
	GetVisit(ctx context.Context, id int64) (*model.Visit, error)
	UpdateVisit(ctx context.Context, visit *model.Visit) error
}

// CompleteVisit marks a Scheduled visit as Completed. Only the assigned
// volunteer may complete their own visit.
func CompleteVisit(
	ctx context.Context,
	store CompleteVisitStore,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
	visitID int64,
	actorID int64,
) (*model.Visit, error) {
	visit, err := store.GetVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit %d: %w", visitID, err)
	}

	if visit.VolunteerID == 0 || visit.VolunteerID != actorID {
		return nil, fmt.Errorf("account %d is not the assigned volunteer: %w", actorID, lifecycle.ErrPermissionDenied)
	}

	if err := lifecycle.Check(lifecycle.EventComplete, visit); err != nil {
		return nil, err
	}

	visit.Status = model.StatusCompleted
	if err := store.UpdateVisit(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to update visit %d: %w", visitID, err)
	}

	logger.Info("Visit completed",
		zap.Int64("visit_id", visitID),
		zap.Int64("volunteer_id", actorID))

	send(ctx, dispatcher, logger, visit.MotherID, msgCompleted(visitID))

	return visit, nil
}
