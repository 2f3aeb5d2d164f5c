package memory

import (
	"context"
	"sort"

	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
)

// Directory reads. Profile ids double as account ids: a volunteer, a mother
// and their user record share one id.

func (s *Store) GetVolunteer(ctx context.Context, id int64) (*model.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	volunteer, ok := s.volunteers[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *volunteer
	return &copied, nil
}

func (s *Store) ListVolunteers(ctx context.Context) ([]model.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	volunteers := make([]model.Volunteer, 0, len(s.volunteers))
	for _, v := range s.volunteers {
		volunteers = append(volunteers, *v)
	}
	sort.Slice(volunteers, func(i, j int) bool { return volunteers[i].ID < volunteers[j].ID })
	return volunteers, nil
}

func (s *Store) GetMother(ctx context.Context, id int64) (*model.Mother, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mother, ok := s.mothers[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *mother
	return &copied, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *Store) ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []model.User
	for _, u := range s.users {
		if u.Role == role {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Seed helpers. Registration and profile CRUD live outside the engine, so
// the memory store takes directory records directly.

func (s *Store) PutVolunteer(v model.Volunteer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volunteers[v.ID] = &v
	s.users[v.ID] = &model.User{ID: v.ID, Name: v.Name, Email: v.Email, Role: model.RoleVolunteer}
}

func (s *Store) PutMother(m model.Mother) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mothers[m.ID] = &m
	s.users[m.ID] = &model.User{ID: m.ID, Name: m.Name, Email: m.Email, Role: model.RoleMother}
}

func (s *Store) PutAdmin(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Role = model.RoleAdmin
	s.users[u.ID] = &u
}
