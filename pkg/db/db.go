// Package db defines the store contracts the engine runs against. The
// decision logic never touches a storage engine directly; it consumes these
// interfaces, implemented by pkg/db/memory and pkg/postgres.
package db

import (
	"errors"

	"github.com/maternacare/homevisit/pkg/core/model"
)

// ErrNotFound is returned when a visit, volunteer, mother or user does not
// exist. Anything else a store returns is an infrastructure failure.
var ErrNotFound = errors.New("record not found")

// VisitFilter selects visits. Zero fields are ignored. Results are always
// ordered by visit date ascending.
type VisitFilter struct {
	Statuses    []model.VisitStatus
	VolunteerID int64
	MotherID    int64
}

// MatchesStatus is shared by the store implementations
func (f VisitFilter) MatchesStatus(s model.VisitStatus) bool {
	if len(f.Statuses) == 0 {
		return true
	}
	for _, want := range f.Statuses {
		if s == want {
			return true
		}
	}
	return false
}
