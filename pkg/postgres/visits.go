package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
)

const visitColumns = `id, mother_id, COALESCE(volunteer_id, 0), COALESCE(suggested_volunteer_id, 0),
	visit_date, visit_time, priority, status, notes`

func scanVisit(row pgx.Row) (*model.Visit, error) {
	var visit model.Visit
	var priority, status string
	err := row.Scan(&visit.ID, &visit.MotherID, &visit.VolunteerID, &visit.SuggestedVolunteerID,
		&visit.Date, &visit.Time, &priority, &status, &visit.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan visit: %w", err)
	}
	visit.Priority = model.Priority(priority)
	visit.Status = model.VisitStatus(status)
	return &visit, nil
}

// CreateVisit inserts a visit and fills in its generated id
func (d *DB) CreateVisit(ctx context.Context, visit *model.Visit) error {
	err := d.pool.QueryRow(ctx, `
		INSERT INTO visits (mother_id, volunteer_id, suggested_volunteer_id, visit_date, visit_time, priority, status, notes)
		VALUES ($1, NULLIF($2, 0), NULLIF($3, 0), $4, $5, $6, $7, $8)
		RETURNING id
	`, visit.MotherID, visit.VolunteerID, visit.SuggestedVolunteerID,
		visit.Date, visit.Time, string(visit.Priority), string(visit.Status), visit.Notes,
	).Scan(&visit.ID)
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

func (d *DB) GetVisit(ctx context.Context, id int64) (*model.Visit, error) {
	row := d.pool.QueryRow(ctx, `SELECT `+visitColumns+` FROM visits WHERE id = $1`, id)
	return scanVisit(row)
}

func (d *DB) UpdateVisit(ctx context.Context, visit *model.Visit) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE visits
		SET mother_id = $2, volunteer_id = NULLIF($3, 0), suggested_volunteer_id = NULLIF($4, 0),
		    visit_date = $5, visit_time = $6, priority = $7, status = $8, notes = $9
		WHERE id = $1
	`, visit.ID, visit.MotherID, visit.VolunteerID, visit.SuggestedVolunteerID,
		visit.Date, visit.Time, string(visit.Priority), string(visit.Status), visit.Notes)
	if err != nil {
		return fmt.Errorf("failed to update visit %d: %w", visit.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ListVisits returns visits matching the filter, ordered by date
func (d *DB) ListVisits(ctx context.Context, filter db.VisitFilter) ([]model.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE TRUE`
	var args []any

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, statuses)
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}
	if filter.VolunteerID != 0 {
		args = append(args, filter.VolunteerID)
		query += fmt.Sprintf(" AND volunteer_id = $%d", len(args))
	}
	if filter.MotherID != 0 {
		args = append(args, filter.MotherID)
		query += fmt.Sprintf(" AND mother_id = $%d", len(args))
	}
	query += " ORDER BY visit_date, id"

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var visits []model.Visit
	for rows.Next() {
		visit, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, *visit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating visits: %w", err)
	}
	return visits, nil
}

func (d *DB) CountActiveVisits(ctx context.Context, volunteerID int64) (int, error) {
	return d.countActive(ctx, d.pool, volunteerID)
}

// querier is satisfied by both the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (d *DB) countActive(ctx context.Context, q querier, volunteerID int64) (int, error) {
	statuses := make([]string, len(model.ActiveStatuses))
	for i, s := range model.ActiveStatuses {
		statuses[i] = string(s)
	}

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM visits WHERE volunteer_id = $1 AND status = ANY($2)
	`, volunteerID, statuses).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active visits: %w", err)
	}
	return count, nil
}

// ScheduleVisit moves the visit to Scheduled with the volunteer assigned,
// inside a transaction that locks the volunteer row. The lock serializes
// concurrent assignments per volunteer, so the load recount, the capacity
// check and the status write act as one atomic unit.
func (d *DB) ScheduleVisit(ctx context.Context, visitID, volunteerID int64, from []model.VisitStatus, limit int) (*model.Visit, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var locked int64
	err = tx.QueryRow(ctx, `SELECT id FROM volunteers WHERE id = $1 FOR UPDATE`, volunteerID).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock volunteer %d: %w", volunteerID, err)
	}

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM visits WHERE id = $1 FOR UPDATE`, visitID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock visit %d: %w", visitID, err)
	}

	allowed := false
	for _, s := range from {
		if model.VisitStatus(status) == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, lifecycle.ErrInvalidTransition
	}

	load, err := d.countActive(ctx, tx, volunteerID)
	if err != nil {
		return nil, err
	}
	if load >= limit {
		return nil, lifecycle.ErrCapacityExceeded
	}

	row := tx.QueryRow(ctx, `
		UPDATE visits SET volunteer_id = $2, status = $3 WHERE id = $1
		RETURNING `+visitColumns,
		visitID, volunteerID, string(model.StatusScheduled))
	visit, err := scanVisit(row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit scheduling of visit %d: %w", visitID, err)
	}
	return visit, nil
}
