package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/notify"
)

// RescheduleVisitStore defines the database operations needed for rescheduling
type RescheduleVisitStore interface {
	GetVisit(ctx context.Context, id int64) (*model.Visit, error)
	UpdateVisit(ctx context.Context, visit *model.Visit) error
}

// RescheduleVisit changes a visit's date, time and notes without touching its
// status. Only the owning mother may reschedule, and only while the visit is
// pre-terminal. The assigned volunteer, if any, is told the new date.
func RescheduleVisit(
	ctx context.Context,
	store RescheduleVisitStore,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
	visitID int64,
	actorID int64,
	newDate time.Time,
	newTime string,
	newNotes string,
) (*model.Visit, error) {
	visit, err := store.GetVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit %d: %w", visitID, err)
	}

	if visit.MotherID != actorID {
		return nil, fmt.Errorf("account %d does not own visit %d: %w", actorID, visitID, lifecycle.ErrPermissionDenied)
	}

	if err := lifecycle.Check(lifecycle.EventReschedule, visit); err != nil {
		return nil, err
	}

	visit.Date = newDate
	visit.Time = newTime
	visit.Notes = newNotes
	if err := store.UpdateVisit(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to update visit %d: %w", visitID, err)
	}

	logger.Info("Visit rescheduled",
		zap.Int64("visit_id", visitID),
		zap.String("new_date", newDate.Format("2006-01-02")),
		zap.String("new_time", newTime))

	if visit.VolunteerID != 0 {
		send(ctx, dispatcher, logger, visit.VolunteerID, msgRescheduled(visitID, newDate))
	}

	return visit, nil
}
