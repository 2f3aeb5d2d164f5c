package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
)

func TestSubmitAvailability_RecordsEntry(t *testing.T) {
	store, _, _, logger := serviceFixture(t)
	ctx := context.Background()

	entry, err := SubmitAvailability(ctx, store, logger, 20, "Tuesday", "09:00-11:00")
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, int64(20), entry.VolunteerID)
	assert.Equal(t, "Tuesday", entry.Day)
	assert.Equal(t, "09:00-11:00", entry.TimeSlot)

	entries, err := store.ListAvailabilityByDay(ctx, "tuesday")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestSubmitAvailability_BlankSlotIsAllDay(t *testing.T) {
	store, _, _, logger := serviceFixture(t)

	entry, err := SubmitAvailability(context.Background(), store, logger, 20, "Sunday", "")
	require.NoError(t, err)
	assert.Empty(t, entry.TimeSlot)
}

func TestSubmitAvailability_RequiresVolunteerProfile(t *testing.T) {
	store, _, _, logger := serviceFixture(t)

	// a mother's account and an unknown account are both refused
	for _, actor := range []int64{10, 99} {
		_, err := SubmitAvailability(context.Background(), store, logger, actor, "Monday", "")
		assert.ErrorIs(t, err, lifecycle.ErrPermissionDenied)
	}
}

func TestSubmitAvailability_EmptyDayRejected(t *testing.T) {
	store, _, _, logger := serviceFixture(t)

	_, err := SubmitAvailability(context.Background(), store, logger, 20, "", "09:00")
	assert.Error(t, err)
}
