package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/matching"
	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db/memory"
)

// sentMessage records one dispatched notification for assertions
type sentMessage struct {
	userID  int64
	role    model.Role
	message string
}

// recordingDispatcher implements notify.Dispatcher and keeps every message
// in dispatch order
type recordingDispatcher struct {
	sent []sentMessage
}

func (d *recordingDispatcher) Send(ctx context.Context, userID int64, message string) error {
	d.sent = append(d.sent, sentMessage{userID: userID, message: message})
	return nil
}

func (d *recordingDispatcher) BroadcastRole(ctx context.Context, role model.Role, message string) error {
	d.sent = append(d.sent, sentMessage{role: role, message: message})
	return nil
}

// serviceFixture seeds an admin, two mothers, two volunteers and Monday
// availability for both volunteers
func serviceFixture(t *testing.T) (*memory.Store, *matching.Engine, *recordingDispatcher, *zap.Logger) {
	t.Helper()

	store := memory.NewStore()
	store.PutAdmin(model.User{ID: 1, Name: "Coordinator"})
	store.PutMother(model.Mother{ID: 10, Name: "Amina", RiskLevel: model.RiskHigh})
	store.PutMother(model.Mother{ID: 11, Name: "Sara", RiskLevel: model.RiskLow})
	store.PutVolunteer(model.Volunteer{ID: 20, Name: "Grace", Skills: "Nurse, first aid", ServiceLimit: 3})
	store.PutVolunteer(model.Volunteer{ID: 21, Name: "Tom", Skills: "Driver", ServiceLimit: 2})

	for _, id := range []int64{20, 21} {
		err := store.CreateAvailability(context.Background(), &model.AvailabilityEntry{
			ID: fmt.Sprintf("entry-%d", id), VolunteerID: id, Day: "Monday",
		})
		require.NoError(t, err)
	}

	logger := zap.NewNop()
	return store, matching.NewEngine(store, logger), &recordingDispatcher{}, logger
}

// monday is a fixed visit date used across the service tests
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestRequestVisit_SuggestionFound(t *testing.T) {
	store, engine, dispatcher, logger := serviceFixture(t)
	ctx := context.Background()

	result, err := RequestVisit(ctx, store, engine, dispatcher, logger, 10, monday, "10:00", "first visit")
	require.NoError(t, err)
	require.NotNil(t, result.SuggestedVolunteer)

	// Grace's nursing skills win the high-risk match
	assert.Equal(t, int64(20), result.SuggestedVolunteer.ID)
	assert.Equal(t, model.StatusAwaitingApproval, result.Visit.Status)
	assert.Equal(t, int64(20), result.Visit.SuggestedVolunteerID)
	assert.Equal(t, model.PriorityHigh, result.Visit.Priority)

	// the suggestion is persisted, not just returned
	stored, err := store.GetVisit(ctx, result.Visit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAwaitingApproval, stored.Status)
	assert.Equal(t, int64(20), stored.SuggestedVolunteerID)

	// administrators are told about the suggestion
	require.Len(t, dispatcher.sent, 1)
	assert.Equal(t, model.RoleAdmin, dispatcher.sent[0].role)
	assert.Equal(t, msgSuggested("Grace", result.Visit.ID), dispatcher.sent[0].message)
}

func TestRequestVisit_NoCandidateStaysPending(t *testing.T) {
	store, engine, dispatcher, logger := serviceFixture(t)
	ctx := context.Background()

	// nobody declared Tuesday availability
	tuesday := monday.AddDate(0, 0, 1)
	result, err := RequestVisit(ctx, store, engine, dispatcher, logger, 10, tuesday, "10:00", "")
	require.NoError(t, err)

	assert.Nil(t, result.SuggestedVolunteer)
	assert.Equal(t, model.StatusPending, result.Visit.Status)
	assert.Zero(t, result.Visit.SuggestedVolunteerID)

	require.Len(t, dispatcher.sent, 1)
	assert.Equal(t, model.RoleAdmin, dispatcher.sent[0].role)
	assert.Equal(t, msgManualNeeded(result.Visit.ID), dispatcher.sent[0].message)
}

func TestRequestVisit_PriorityFromRisk(t *testing.T) {
	store, engine, dispatcher, logger := serviceFixture(t)
	ctx := context.Background()

	high, err := RequestVisit(ctx, store, engine, dispatcher, logger, 10, monday, "", "")
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, high.Visit.Priority)

	low, err := RequestVisit(ctx, store, engine, dispatcher, logger, 11, monday, "", "")
	require.NoError(t, err)
	assert.Equal(t, model.PriorityLow, low.Visit.Priority)
}

func TestRequestVisit_NonMotherRejected(t *testing.T) {
	store, engine, dispatcher, logger := serviceFixture(t)

	// account 20 is a volunteer, account 99 does not exist
	for _, actor := range []int64{20, 99} {
		_, err := RequestVisit(context.Background(), store, engine, dispatcher, logger, actor, monday, "", "")
		assert.ErrorIs(t, err, lifecycle.ErrPermissionDenied)
	}
	assert.Empty(t, dispatcher.sent)
}
