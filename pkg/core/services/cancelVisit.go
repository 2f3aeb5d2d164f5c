package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/notify"
)

// CancelVisitStore defines the database operations needed for cancelling a visit
type CancelVisitStore interface {
	GetVisit(ctx context.Context, id int64) (*model.Visit, error)
	UpdateVisit(ctx context.Context, visit *model.Visit) error
}

// CancelVisit moves a visit to the terminal Cancelled status. Only the owning
// mother may cancel, and only while the visit is pre-terminal: cancelling an
// already-Cancelled visit is an invalid transition, not a silent repeat. The
// visit record is kept, never deleted.
func CancelVisit(
	ctx context.Context,
	store CancelVisitStore,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
	visitID int64,
	actorID int64,
) (*model.Visit, error) {
	visit, err := store.GetVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit %d: %w", visitID, err)
	}

	if visit.MotherID != actorID {
		return nil, fmt.Errorf("account %d does not own visit %d: %w", actorID, visitID, lifecycle.ErrPermissionDenied)
	}

	if err := lifecycle.Check(lifecycle.EventCancel, visit); err != nil {
		return nil, err
	}

	visit.Status = model.StatusCancelled
	if err := store.UpdateVisit(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to update visit %d: %w", visitID, err)
	}

	logger.Info("Visit cancelled", zap.Int64("visit_id", visitID))

	if visit.VolunteerID != 0 {
		send(ctx, dispatcher, logger, visit.VolunteerID, msgCancelled(visitID))
	}

	return visit, nil
}
