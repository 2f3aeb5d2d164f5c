package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/matching"
	"github.com/maternacare/homevisit/pkg/core/model"
)

// SuggestStore defines the database operations needed for a standalone
// suggestion run
type SuggestStore interface {
	GetVisit(ctx context.Context, id int64) (*model.Visit, error)
}

// Suggest recomputes the best candidate for an existing visit without
// mutating anything. A nil volunteer with a nil error means no candidate
// qualifies right now.
func Suggest(
	ctx context.Context,
	store SuggestStore,
	engine *matching.Engine,
	logger *zap.Logger,
	visitID int64,
) (*model.Volunteer, error) {
	visit, err := store.GetVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit %d: %w", visitID, err)
	}

	volunteer, err := engine.Suggest(ctx, visit)
	if err != nil {
		return nil, err
	}

	if volunteer == nil {
		logger.Debug("No candidate for visit", zap.Int64("visit_id", visitID))
	}
	return volunteer, nil
}
