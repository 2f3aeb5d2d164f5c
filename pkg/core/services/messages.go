package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/notify"
)

// Notification message texts. Recipient-affecting notices always go out
// before administrator-affecting ones.
func msgSuggested(volunteerName string, visitID int64) string {
	return fmt.Sprintf("Suggested: %s for Visit #%d.", volunteerName, visitID)
}

func msgManualNeeded(visitID int64) string {
	return fmt.Sprintf("No volunteer found for Visit #%d. Manual assignment needed.", visitID)
}

func msgVolunteerAssigned(volunteerName string, visitID int64) string {
	return fmt.Sprintf("Volunteer %s assigned to Visit #%d.", volunteerName, visitID)
}

func msgYouAreAssigned(visitID int64) string {
	return fmt.Sprintf("You have been assigned to Visit #%d.", visitID)
}

func msgCompleted(visitID int64) string {
	return fmt.Sprintf("Visit #%d completed.", visitID)
}

func msgCancelled(visitID int64) string {
	return fmt.Sprintf("Visit #%d was cancelled.", visitID)
}

func msgRescheduled(visitID int64, newDate time.Time) string {
	return fmt.Sprintf("Visit #%d rescheduled to %s.", visitID, newDate.Format("2006-01-02"))
}

// send fires a notification without letting delivery problems fail the
// transition that produced it
func send(ctx context.Context, dispatcher notify.Dispatcher, logger *zap.Logger, userID int64, message string) {
	if err := dispatcher.Send(ctx, userID, message); err != nil {
		logger.Warn("Failed to dispatch notification",
			zap.Int64("user_id", userID),
			zap.Error(err))
	}
}

// broadcast fans a notification out to a role, same fire-and-forget contract
func broadcast(ctx context.Context, dispatcher notify.Dispatcher, logger *zap.Logger, role model.Role, message string) {
	if err := dispatcher.BroadcastRole(ctx, role, message); err != nil {
		logger.Warn("Failed to broadcast notification",
			zap.String("role", string(role)),
			zap.Error(err))
	}
}
