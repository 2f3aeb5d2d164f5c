// Package matching selects the best volunteer candidate for a visit under
// availability and capacity constraints. Suggestion is a read-only decision
// over a point-in-time snapshot; capacity is re-validated at approval time.
package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
)

// Store defines the read operations the suggestion engine needs
type Store interface {
	ListAvailabilityByDay(ctx context.Context, day string) ([]model.AvailabilityEntry, error)
	CountActiveVisits(ctx context.Context, volunteerID int64) (int, error)
	GetVolunteer(ctx context.Context, id int64) (*model.Volunteer, error)
	GetMother(ctx context.Context, id int64) (*model.Mother, error)
}

// Engine orchestrates the availability index, capacity recomputation and the
// scorer to pick one best candidate for a visit, or none.
type Engine struct {
	store  Store
	logger *zap.Logger
}

// NewEngine creates a suggestion engine over the given store
func NewEngine(store Store, logger *zap.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

type scoredCandidate struct {
	volunteer  *model.Volunteer
	score      int
	activeLoad int
}

// Suggest returns the best candidate volunteer for the visit, or (nil, nil)
// when no candidate qualifies. Finding nobody is a valid outcome, not a
// failure; a non-nil error always means a store failed. Suggest never
// mutates state.
func (e *Engine) Suggest(ctx context.Context, visit *model.Visit) (*model.Volunteer, error) {
	weekday := visit.Weekday()

	e.logger.Debug("Computing suggestion",
		zap.Int64("visit_id", visit.ID),
		zap.String("weekday", weekday),
		zap.String("time", visit.Time))

	entries, err := e.store.ListAvailabilityByDay(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability for %s: %w", weekday, err)
	}

	index := NewIndex(entries)
	candidateIDs := index.AvailableVolunteerIDs(weekday)
	if len(candidateIDs) == 0 {
		e.logger.Debug("No volunteers available on weekday", zap.String("weekday", weekday))
		return nil, nil
	}

	mother, err := e.store.GetMother(ctx, visit.MotherID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mother %d: %w", visit.MotherID, err)
	}

	var scored []scoredCandidate
	for _, id := range candidateIDs {
		volunteer, err := e.store.GetVolunteer(ctx, id)
		if errors.Is(err, db.ErrNotFound) {
			// orphaned availability entry
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch volunteer %d: %w", id, err)
		}

		load, err := ActiveLoad(ctx, e.store, id)
		if err != nil {
			return nil, err
		}

		// Exclude volunteers at or above their service limit
		if load >= volunteer.ServiceLimit {
			continue
		}

		score := Score(visit, volunteer, load, mother.RiskLevel, index.SlotsFor(id, weekday))
		scored = append(scored, scoredCandidate{volunteer: volunteer, score: score, activeLoad: load})
	}

	if len(scored) == 0 {
		e.logger.Debug("All available volunteers excluded by capacity", zap.String("weekday", weekday))
		return nil, nil
	}

	// Highest score first, ties broken by lower active load. Candidate ids
	// are iterated in ascending order, so remaining ties resolve stably.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].activeLoad < scored[j].activeLoad
	})

	best := scored[0]
	e.logger.Debug("Suggestion computed",
		zap.Int64("visit_id", visit.ID),
		zap.Int64("volunteer_id", best.volunteer.ID),
		zap.Int("score", best.score),
		zap.Int("active_load", best.activeLoad),
		zap.Int("candidates_scored", len(scored)))

	return best.volunteer, nil
}
