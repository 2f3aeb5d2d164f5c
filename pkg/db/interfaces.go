package db

import (
	"context"

	"github.com/maternacare/homevisit/pkg/core/model"
)

// VisitStore defines the interface for visit database operations
type VisitStore interface {
	// CreateVisit inserts a new visit and assigns its ID
	CreateVisit(ctx context.Context, visit *model.Visit) error

	GetVisit(ctx context.Context, id int64) (*model.Visit, error)

	UpdateVisit(ctx context.Context, visit *model.Visit) error

	// ListVisits returns visits matching the filter, ordered by date
	ListVisits(ctx context.Context, filter VisitFilter) ([]model.Visit, error)

	// CountActiveVisits returns the volunteer's current active load: the
	// number of visits referencing them in a capacity-consuming status.
	CountActiveVisits(ctx context.Context, volunteerID int64) (int, error)

	// ScheduleVisit moves a visit to Scheduled and assigns volunteerID,
	// provided the visit's current status is in from and the volunteer's
	// recounted active load is below limit. The recount, the capacity
	// check and the status write are a single atomic unit per volunteer:
	// of two concurrent calls targeting a volunteer's last unit of
	// capacity, exactly one succeeds and the other gets
	// lifecycle.ErrCapacityExceeded. A status outside from returns
	// lifecycle.ErrInvalidTransition.
	ScheduleVisit(ctx context.Context, visitID, volunteerID int64, from []model.VisitStatus, limit int) (*model.Visit, error)
}

// AvailabilityStore defines the interface for availability operations
type AvailabilityStore interface {
	// ListAvailabilityByDay returns entries whose weekday matches day
	// case-insensitively
	ListAvailabilityByDay(ctx context.Context, day string) ([]model.AvailabilityEntry, error)

	ListAvailabilityByVolunteer(ctx context.Context, volunteerID int64) ([]model.AvailabilityEntry, error)

	CreateAvailability(ctx context.Context, entry *model.AvailabilityEntry) error
}

// DirectoryStore exposes volunteers, mothers and user accounts. Profile CRUD
// lives elsewhere; the engine only reads.
type DirectoryStore interface {
	GetVolunteer(ctx context.Context, id int64) (*model.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]model.Volunteer, error)
	GetMother(ctx context.Context, id int64) (*model.Mother, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error)
}

// NotificationStore persists notification records written by the dispatcher
type NotificationStore interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	ListNotifications(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// Database defines the interface for all database operations. Both the
// in-memory store and the Postgres store implement this interface.
type Database interface {
	VisitStore
	AvailabilityStore
	DirectoryStore
	NotificationStore
}
