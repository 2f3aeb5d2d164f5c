package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maternacare/homevisit/pkg/core/model"
)

func TestPlanRecurringVisits_WeeklySeries(t *testing.T) {
	store, engine, dispatcher, logger := serviceFixture(t)
	ctx := context.Background()

	result, err := PlanRecurringVisits(ctx, store, engine, dispatcher, logger,
		10, "FREQ=WEEKLY;COUNT=3", monday, "10:00", "weekly checkup")
	require.NoError(t, err)
	require.Len(t, result.Results, 3)

	for i, r := range result.Results {
		expected := monday.AddDate(0, 0, 7*i)
		assert.Equal(t, expected, r.Visit.Date, "occurrence %d", i)
		assert.Equal(t, "weekly checkup", r.Visit.Notes)
		// every Monday occurrence runs the full suggestion flow
		assert.Equal(t, model.StatusAwaitingApproval, r.Visit.Status)
	}

	// one admin broadcast per created visit
	assert.Len(t, dispatcher.sent, 3)
}

func TestPlanRecurringVisits_CapsOccurrences(t *testing.T) {
	store, engine, dispatcher, logger := serviceFixture(t)

	result, err := PlanRecurringVisits(context.Background(), store, engine, dispatcher, logger,
		10, "FREQ=DAILY", monday, "", "")
	require.NoError(t, err)
	assert.Len(t, result.Results, MaxRecurringVisits)
}

func TestPlanRecurringVisits_InvalidRule(t *testing.T) {
	store, engine, dispatcher, logger := serviceFixture(t)

	_, err := PlanRecurringVisits(context.Background(), store, engine, dispatcher, logger,
		10, "FREQ=SOMETIMES", monday, "", "")
	assert.Error(t, err)
}

func TestPlanRecurringVisits_NonMotherRejected(t *testing.T) {
	store, engine, dispatcher, logger := serviceFixture(t)

	_, err := PlanRecurringVisits(context.Background(), store, engine, dispatcher, logger,
		20, "FREQ=WEEKLY;COUNT=2", monday, "", "")
	assert.Error(t, err)
}
