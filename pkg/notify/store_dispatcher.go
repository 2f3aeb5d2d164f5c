package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
)

// DispatcherStore defines the database operations the store dispatcher needs
type DispatcherStore interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error)
}

// StoreDispatcher persists notifications as unread records. The inbox
// surface reads them later; the engine never does.
type StoreDispatcher struct {
	store  DispatcherStore
	logger *zap.Logger
}

// NewStoreDispatcher creates a dispatcher writing to the given store
func NewStoreDispatcher(store DispatcherStore, logger *zap.Logger) *StoreDispatcher {
	return &StoreDispatcher{store: store, logger: logger}
}

// Send writes one unread notification record for the user
func (d *StoreDispatcher) Send(ctx context.Context, userID int64, message string) error {
	n := &model.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := d.store.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	d.logger.Debug("Notification queued",
		zap.Int64("user_id", userID),
		zap.String("notification_id", n.ID))
	return nil
}

// BroadcastRole writes one record per account holding the role
func (d *StoreDispatcher) BroadcastRole(ctx context.Context, role model.Role, message string) error {
	users, err := d.store.ListUsersByRole(ctx, role)
	if err != nil {
		return fmt.Errorf("failed to list %s accounts: %w", role, err)
	}

	for _, user := range users {
		if err := d.Send(ctx, user.ID, message); err != nil {
			return err
		}
	}
	return nil
}

var _ Dispatcher = (*StoreDispatcher)(nil)

// sanity: the full database satisfies DispatcherStore
var _ DispatcherStore = (db.Database)(nil)
