// Package notify carries lifecycle side-effect messages to users. The engine
// decides which notifications a transition produces and in what order;
// delivery is fire-and-forget and never gates a transition.
package notify

import (
	"context"

	"github.com/maternacare/homevisit/pkg/core/model"
)

// Dispatcher receives (recipient, message) requests emitted by lifecycle
// transitions. Implementations must not block the caller on delivery.
type Dispatcher interface {
	// Send queues a message for one user
	Send(ctx context.Context, userID int64, message string) error

	// BroadcastRole queues a message for every account holding the role,
	// e.g. all administrators when a visit needs manual assignment.
	BroadcastRole(ctx context.Context, role model.Role, message string) error
}
