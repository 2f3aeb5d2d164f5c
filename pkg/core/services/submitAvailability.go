package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
)

// SubmitAvailabilityStore defines the database operations needed for
// recording volunteer availability
type SubmitAvailabilityStore interface {
	GetVolunteer(ctx context.Context, id int64) (*model.Volunteer, error)
	CreateAvailability(ctx context.Context, entry *model.AvailabilityEntry) error
}

// SubmitAvailability records that a volunteer is available on a weekday.
// A blank time slot means available the whole day.
func SubmitAvailability(
	ctx context.Context,
	store SubmitAvailabilityStore,
	logger *zap.Logger,
	volunteerID int64,
	day string,
	timeSlot string,
) (*model.AvailabilityEntry, error) {
	_, err := store.GetVolunteer(ctx, volunteerID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("account %d has no volunteer profile: %w", volunteerID, lifecycle.ErrPermissionDenied)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer %d: %w", volunteerID, err)
	}

	if day == "" {
		return nil, fmt.Errorf("availability day must not be empty")
	}

	entry := &model.AvailabilityEntry{
		ID:          uuid.NewString(),
		VolunteerID: volunteerID,
		Day:         day,
		TimeSlot:    timeSlot,
	}
	if err := store.CreateAvailability(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create availability entry: %w", err)
	}

	logger.Info("Availability submitted",
		zap.Int64("volunteer_id", volunteerID),
		zap.String("day", day),
		zap.String("time_slot", timeSlot))

	return entry, nil
}
