package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maternacare/homevisit/pkg/core/model"
)

func (d *DB) ListAvailabilityByDay(ctx context.Context, day string) ([]model.AvailabilityEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, volunteer_id, day, time_slot FROM availability WHERE LOWER(day) = LOWER($1)
	`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability for %s: %w", day, err)
	}
	return collectAvailability(rows)
}

func (d *DB) ListAvailabilityByVolunteer(ctx context.Context, volunteerID int64) ([]model.AvailabilityEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, volunteer_id, day, time_slot FROM availability WHERE volunteer_id = $1
	`, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability for volunteer %d: %w", volunteerID, err)
	}
	return collectAvailability(rows)
}

func (d *DB) CreateAvailability(ctx context.Context, entry *model.AvailabilityEntry) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO availability (id, volunteer_id, day, time_slot) VALUES ($1, $2, $3, $4)
	`, entry.ID, entry.VolunteerID, entry.Day, entry.TimeSlot)
	if err != nil {
		return fmt.Errorf("failed to insert availability entry: %w", err)
	}
	return nil
}

func collectAvailability(rows pgx.Rows) ([]model.AvailabilityEntry, error) {
	defer rows.Close()

	var entries []model.AvailabilityEntry
	for rows.Next() {
		var entry model.AvailabilityEntry
		if err := rows.Scan(&entry.ID, &entry.VolunteerID, &entry.Day, &entry.TimeSlot); err != nil {
			return nil, fmt.Errorf("failed to scan availability entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability entries: %w", err)
	}
	return entries, nil
}
