// Package memory implements db.Database in process memory. It backs the unit
// tests and the demo CLI. A single mutex serializes writes, which makes the
// recount-check-write unit in ScheduleVisit atomic per volunteer.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
)

// Store is an in-memory database
type Store struct {
	mu            sync.RWMutex
	nextVisitID   int64
	visits        map[int64]*model.Visit
	volunteers    map[int64]*model.Volunteer
	mothers       map[int64]*model.Mother
	users         map[int64]*model.User
	availability  []model.AvailabilityEntry
	notifications []model.Notification
}

// NewStore creates an empty in-memory database
func NewStore() *Store {
	return &Store{
		visits:     make(map[int64]*model.Visit),
		volunteers: make(map[int64]*model.Volunteer),
		mothers:    make(map[int64]*model.Mother),
		users:      make(map[int64]*model.User),
	}
}

var _ db.Database = (*Store)(nil)

// CreateVisit inserts a visit and assigns the next sequential id
func (s *Store) CreateVisit(ctx context.Context, visit *model.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextVisitID++
	visit.ID = s.nextVisitID
	copied := *visit
	s.visits[visit.ID] = &copied
	return nil
}

func (s *Store) GetVisit(ctx context.Context, id int64) (*model.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visit, ok := s.visits[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *visit
	return &copied, nil
}

func (s *Store) UpdateVisit(ctx context.Context, visit *model.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.visits[visit.ID]; !ok {
		return db.ErrNotFound
	}
	copied := *visit
	s.visits[visit.ID] = &copied
	return nil
}

// ListVisits returns visits matching the filter, ordered by date ascending
func (s *Store) ListVisits(ctx context.Context, filter db.VisitFilter) ([]model.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var visits []model.Visit
	for _, visit := range s.visits {
		if !filter.MatchesStatus(visit.Status) {
			continue
		}
		if filter.VolunteerID != 0 && visit.VolunteerID != filter.VolunteerID {
			continue
		}
		if filter.MotherID != 0 && visit.MotherID != filter.MotherID {
			continue
		}
		visits = append(visits, *visit)
	}
	sort.Slice(visits, func(i, j int) bool {
		if !visits[i].Date.Equal(visits[j].Date) {
			return visits[i].Date.Before(visits[j].Date)
		}
		return visits[i].ID < visits[j].ID
	})
	return visits, nil
}

func (s *Store) CountActiveVisits(ctx context.Context, volunteerID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countActiveLocked(volunteerID), nil
}

func (s *Store) countActiveLocked(volunteerID int64) int {
	count := 0
	for _, visit := range s.visits {
		if visit.VolunteerID != volunteerID {
			continue
		}
		for _, status := range model.ActiveStatuses {
			if visit.Status == status {
				count++
				break
			}
		}
	}
	return count
}

// ScheduleVisit atomically re-counts the volunteer's active load, re-checks
// the visit status against from, and writes the Scheduled assignment. Under
// the store mutex, two concurrent calls targeting the same volunteer's last
// unit of capacity cannot both succeed.
func (s *Store) ScheduleVisit(ctx context.Context, visitID, volunteerID int64, from []model.VisitStatus, limit int) (*model.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	visit, ok := s.visits[visitID]
	if !ok {
		return nil, db.ErrNotFound
	}

	allowed := false
	for _, status := range from {
		if visit.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, lifecycle.ErrInvalidTransition
	}

	if s.countActiveLocked(volunteerID) >= limit {
		return nil, lifecycle.ErrCapacityExceeded
	}

	visit.VolunteerID = volunteerID
	visit.Status = model.StatusScheduled
	copied := *visit
	return &copied, nil
}
