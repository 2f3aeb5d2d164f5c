package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/matching"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
	"github.com/maternacare/homevisit/pkg/notify"
)

// RequestVisitStore defines the database operations needed for creating a visit
type RequestVisitStore interface {
	GetMother(ctx context.Context, id int64) (*model.Mother, error)
	CreateVisit(ctx context.Context, visit *model.Visit) error
	UpdateVisit(ctx context.Context, visit *model.Visit) error
}

// RequestVisitResult contains the created visit and the suggestion outcome
type RequestVisitResult struct {
	Visit *model.Visit

	// SuggestedVolunteer is nil when no candidate was found and the visit
	// stayed Pending for manual assignment
	SuggestedVolunteer *model.Volunteer
}

// RequestVisit creates a Pending visit for the mother, runs the suggestion
// engine, and applies the outcome: a found candidate moves the visit to
// Awaiting Approval with the suggestion recorded, otherwise it stays Pending.
// Administrators are notified either way. Priority is fixed here from the
// mother's risk level and never recomputed.
func RequestVisit(
	ctx context.Context,
	store RequestVisitStore,
	engine *matching.Engine,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
	motherID int64,
	date time.Time,
	timeOfDay string,
	notes string,
) (*RequestVisitResult, error) {
	mother, err := store.GetMother(ctx, motherID)
	if errors.Is(err, db.ErrNotFound) {
		// only mothers can request visits
		return nil, fmt.Errorf("account %d has no mother profile: %w", motherID, lifecycle.ErrPermissionDenied)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mother %d: %w", motherID, err)
	}

	visit := &model.Visit{
		MotherID: motherID,
		Date:     date,
		Time:     timeOfDay,
		Priority: model.PriorityForRisk(mother.RiskLevel),
		Status:   model.StatusPending,
		Notes:    notes,
	}
	if err := store.CreateVisit(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}

	logger.Info("Visit requested",
		zap.Int64("visit_id", visit.ID),
		zap.Int64("mother_id", motherID),
		zap.String("priority", string(visit.Priority)))

	// Finding nobody is a valid outcome; only store failures are errors.
	// The visit has been created either way.
	suggested, err := engine.Suggest(ctx, visit)
	if err != nil {
		return nil, err
	}

	if suggested == nil {
		broadcast(ctx, dispatcher, logger, model.RoleAdmin, msgManualNeeded(visit.ID))
		return &RequestVisitResult{Visit: visit}, nil
	}

	visit.SuggestedVolunteerID = suggested.ID
	visit.Status = model.StatusAwaitingApproval
	if err := store.UpdateVisit(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to record suggestion: %w", err)
	}

	logger.Info("Volunteer suggested",
		zap.Int64("visit_id", visit.ID),
		zap.Int64("volunteer_id", suggested.ID))

	broadcast(ctx, dispatcher, logger, model.RoleAdmin, msgSuggested(suggested.Name, visit.ID))

	return &RequestVisitResult{Visit: visit, SuggestedVolunteer: suggested}, nil
}
