package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/model"
)

// InboxStore defines the database operations needed for reading notifications
type InboxStore interface {
	ListNotifications(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// Inbox returns the user's notifications, newest first
func Inbox(ctx context.Context, store InboxStore, logger *zap.Logger, userID int64) ([]model.Notification, error) {
	notifications, err := store.ListNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	logger.Debug("Inbox fetched", zap.Int64("user_id", userID), zap.Int("count", len(notifications)))
	return notifications, nil
}

// MarkNotificationRead flags a notification as read
func MarkNotificationRead(ctx context.Context, store InboxStore, logger *zap.Logger, id string) error {
	if err := store.MarkNotificationRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	logger.Debug("Notification marked read", zap.String("notification_id", id))
	return nil
}
