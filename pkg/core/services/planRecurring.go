package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/matching"
	"github.com/maternacare/homevisit/pkg/notify"
)

// MaxRecurringVisits caps how many visits one recurrence rule may create
const MaxRecurringVisits = 26

// PlanRecurringResult contains the visits created from a recurrence rule
type PlanRecurringResult struct {
	Dates   []time.Time
	Results []*RequestVisitResult
}

// PlanRecurringVisits expands an RRULE (e.g. "FREQ=WEEKLY;BYDAY=MO;COUNT=4")
// into a series of dated visit requests for the mother. Each occurrence runs
// the full request flow, so every visit gets its own suggestion and admin
// notification.
func PlanRecurringVisits(
	ctx context.Context,
	store RequestVisitStore,
	engine *matching.Engine,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
	motherID int64,
	ruleText string,
	startDate time.Time,
	timeOfDay string,
	notes string,
) (*PlanRecurringResult, error) {
	rule, err := rrule.StrToRRule(ruleText)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule %q: %w", ruleText, err)
	}
	rule.DTStart(startDate)

	dates := rule.Between(startDate, startDate.AddDate(1, 0, 0), true)
	if len(dates) == 0 {
		return nil, fmt.Errorf("recurrence rule %q yields no dates within a year of %s",
			ruleText, startDate.Format("2006-01-02"))
	}
	if len(dates) > MaxRecurringVisits {
		dates = dates[:MaxRecurringVisits]
	}

	logger.Info("Planning recurring visits",
		zap.Int64("mother_id", motherID),
		zap.String("rule", ruleText),
		zap.Int("occurrences", len(dates)))

	result := &PlanRecurringResult{Dates: dates}
	for _, date := range dates {
		r, err := RequestVisit(ctx, store, engine, dispatcher, logger, motherID, date, timeOfDay, notes)
		if err != nil {
			return nil, fmt.Errorf("failed to create visit for %s: %w", date.Format("2006-01-02"), err)
		}
		result.Results = append(result.Results, r)
	}

	return result, nil
}
