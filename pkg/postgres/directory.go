package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
)

func (d *DB) GetVolunteer(ctx context.Context, id int64) (*model.Volunteer, error) {
	var v model.Volunteer
	err := d.pool.QueryRow(ctx, `
		SELECT v.id, u.name, u.email, v.skills, v.certifications, v.service_limit
		FROM volunteers v JOIN users u ON u.id = v.id
		WHERE v.id = $1
	`, id).Scan(&v.ID, &v.Name, &v.Email, &v.Skills, &v.Certifications, &v.ServiceLimit)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer %d: %w", id, err)
	}
	return &v, nil
}

func (d *DB) ListVolunteers(ctx context.Context) ([]model.Volunteer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT v.id, u.name, u.email, v.skills, v.certifications, v.service_limit
		FROM volunteers v JOIN users u ON u.id = v.id
		ORDER BY v.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []model.Volunteer
	for rows.Next() {
		var v model.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Skills, &v.Certifications, &v.ServiceLimit); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteers: %w", err)
	}
	return volunteers, nil
}

func (d *DB) GetMother(ctx context.Context, id int64) (*model.Mother, error) {
	var m model.Mother
	var risk string
	err := d.pool.QueryRow(ctx, `
		SELECT m.id, u.name, u.email, COALESCE(m.due_date, 'epoch'::date), m.risk_level
		FROM mothers m JOIN users u ON u.id = m.id
		WHERE m.id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Email, &m.DueDate, &risk)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mother %d: %w", id, err)
	}
	m.RiskLevel = model.RiskLevel(risk)
	return &m, nil
}

func (d *DB) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	var role string
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, email, role FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Email, &role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}
	u.Role = model.Role(role)
	return &u, nil
}

func (d *DB) ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, email, role FROM users WHERE role = $1 ORDER BY id
	`, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s accounts: %w", role, err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var r string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &r); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Role = model.Role(r)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
