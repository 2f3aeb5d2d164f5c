package model

import "time"

// Role identifies what a user account can do in the system
type Role string

const (
	RoleMother    Role = "mother"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleMother || r == RoleVolunteer || r == RoleAdmin
}

// RiskLevel classifies a recipient's pregnancy risk. It drives both visit
// priority and match scoring.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Priority is the urgency of a visit, fixed at creation from the
// recipient's risk level.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// PriorityForRisk maps a recipient risk level to the visit priority set at
// creation time. Priority is never recomputed afterwards.
func PriorityForRisk(risk RiskLevel) Priority {
	switch risk {
	case RiskHigh:
		return PriorityHigh
	case RiskMedium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// VisitStatus is the lifecycle state of a visit request
type VisitStatus string

const (
	StatusPending          VisitStatus = "Pending"
	StatusAwaitingApproval VisitStatus = "Awaiting Approval"
	StatusScheduled        VisitStatus = "Scheduled"
	StatusCompleted        VisitStatus = "Completed"
	StatusCancelled        VisitStatus = "Cancelled"
)

// IsTerminal reports whether no further transitions are allowed from s
func (s VisitStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ActiveStatuses are the statuses that consume a volunteer's capacity.
// Completed and Cancelled visits do not count towards active load.
var ActiveStatuses = []VisitStatus{StatusPending, StatusAwaitingApproval, StatusScheduled}

// Visit represents a home-visit request from a recipient
type Visit struct {
	ID       int64
	MotherID int64

	// VolunteerID is the final assigned volunteer, set when the visit
	// becomes Scheduled. Zero means unassigned.
	VolunteerID int64

	// SuggestedVolunteerID is the matching engine's proposal, pending
	// administrator approval. Zero means no suggestion.
	SuggestedVolunteerID int64

	Date     time.Time
	Time     string // "HH:MM"
	Priority Priority
	Status   VisitStatus
	Notes    string
}

// Weekday returns the visit's weekday name, e.g. "Monday"
func (v *Visit) Weekday() string {
	return v.Date.Weekday().String()
}

// Volunteer represents a caregiver who can be matched to visits
type Volunteer struct {
	ID             int64
	Name           string
	Email          string
	Skills         string // free text, e.g. "Nurse, first aid"
	Certifications string

	// ServiceLimit is the maximum number of simultaneously active visits
	ServiceLimit int
}

// Mother represents a care recipient
type Mother struct {
	ID        int64
	Name      string
	Email     string
	DueDate   time.Time
	RiskLevel RiskLevel
}

// User is a directory account with a role. The engine consults it only for
// ownership and permission checks; authentication is out of scope.
type User struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}

// AvailabilityEntry declares that a volunteer is available on a weekday.
// An empty TimeSlot means available all day.
type AvailabilityEntry struct {
	ID          string // uuid
	VolunteerID int64
	Day         string // weekday name, matched case-insensitively
	TimeSlot    string // free text, e.g. "09:00-11:00"
}

// Notification is a message produced as a side effect of a lifecycle
// transition. The engine writes them and never reads them back.
type Notification struct {
	ID        string // uuid
	UserID    int64
	Message   string
	CreatedAt time.Time
	Read      bool
}
