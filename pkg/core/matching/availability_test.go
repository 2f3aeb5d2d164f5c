package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maternacare/homevisit/pkg/core/model"
)

func TestIndex_AvailableVolunteerIDs(t *testing.T) {
	idx := NewIndex([]model.AvailabilityEntry{
		{VolunteerID: 3, Day: "monday", TimeSlot: "09:00"},
		{VolunteerID: 1, Day: "Monday", TimeSlot: ""},
		{VolunteerID: 3, Day: "Monday", TimeSlot: "14:00"},
		{VolunteerID: 2, Day: "Tuesday", TimeSlot: ""},
	})

	// deduplicated, sorted ascending, weekday matched case-insensitively
	assert.Equal(t, []int64{1, 3}, idx.AvailableVolunteerIDs("Monday"))
	assert.Equal(t, []int64{2}, idx.AvailableVolunteerIDs("TUESDAY"))
	assert.Empty(t, idx.AvailableVolunteerIDs("Wednesday"))
}

func TestIndex_SlotsFor(t *testing.T) {
	idx := NewIndex([]model.AvailabilityEntry{
		{VolunteerID: 3, Day: "Monday", TimeSlot: "09:00"},
		{VolunteerID: 3, Day: "monday", TimeSlot: ""},
		{VolunteerID: 3, Day: "Tuesday", TimeSlot: "10:00"},
	})

	assert.Equal(t, []string{"09:00", ""}, idx.SlotsFor(3, "Monday"))
	assert.Empty(t, idx.SlotsFor(99, "Monday"))
}

func TestHasCapacity(t *testing.T) {
	v := &model.Volunteer{ServiceLimit: 2}

	assert.True(t, HasCapacity(v, 0))
	assert.True(t, HasCapacity(v, 1))
	assert.False(t, HasCapacity(v, 2))
	assert.False(t, HasCapacity(v, 3))
}
