package memory

import (
	"context"
	"strings"

	"github.com/maternacare/homevisit/pkg/core/model"
)

func (s *Store) ListAvailabilityByDay(ctx context.Context, day string) ([]model.AvailabilityEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []model.AvailabilityEntry
	for _, entry := range s.availability {
		if strings.EqualFold(entry.Day, day) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *Store) ListAvailabilityByVolunteer(ctx context.Context, volunteerID int64) ([]model.AvailabilityEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []model.AvailabilityEntry
	for _, entry := range s.availability {
		if entry.VolunteerID == volunteerID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *Store) CreateAvailability(ctx context.Context, entry *model.AvailabilityEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability = append(s.availability, *entry)
	return nil
}
