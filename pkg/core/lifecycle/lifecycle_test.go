package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maternacare/homevisit/pkg/core/model"
)

func TestCanFire(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		from  model.VisitStatus
		want  bool
	}{
		{"suggest from pending", EventSuggest, model.StatusPending, true},
		{"suggest from awaiting approval", EventSuggest, model.StatusAwaitingApproval, false},
		{"approve from awaiting approval", EventApprove, model.StatusAwaitingApproval, true},
		{"approve from pending", EventApprove, model.StatusPending, false},
		{"approve from scheduled", EventApprove, model.StatusScheduled, false},
		{"complete from scheduled", EventComplete, model.StatusScheduled, true},
		{"complete from pending", EventComplete, model.StatusPending, false},
		{"complete from completed", EventComplete, model.StatusCompleted, false},
		{"assign from pending", EventAssign, model.StatusPending, true},
		{"assign from awaiting approval", EventAssign, model.StatusAwaitingApproval, true},
		{"assign from scheduled", EventAssign, model.StatusScheduled, true},
		{"assign from completed", EventAssign, model.StatusCompleted, false},
		{"cancel from pending", EventCancel, model.StatusPending, true},
		{"cancel from scheduled", EventCancel, model.StatusScheduled, true},
		{"cancel from cancelled", EventCancel, model.StatusCancelled, false},
		{"cancel from completed", EventCancel, model.StatusCompleted, false},
		{"reschedule from scheduled", EventReschedule, model.StatusScheduled, true},
		{"reschedule from cancelled", EventReschedule, model.StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanFire(tt.event, tt.from))
		})
	}
}

func TestCheck(t *testing.T) {
	visit := &model.Visit{Status: model.StatusCancelled}

	err := Check(EventCancel, visit)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	visit.Status = model.StatusScheduled
	assert.NoError(t, Check(EventCancel, visit))
}

func TestAllowedFrom_PreTerminalEvents(t *testing.T) {
	want := []model.VisitStatus{
		model.StatusPending,
		model.StatusAwaitingApproval,
		model.StatusScheduled,
	}

	assert.Equal(t, want, AllowedFrom(EventAssign))
	assert.Equal(t, want, AllowedFrom(EventCancel))
	assert.Equal(t, want, AllowedFrom(EventReschedule))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, model.StatusCompleted.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.False(t, model.StatusPending.IsTerminal())
	assert.False(t, model.StatusAwaitingApproval.IsTerminal())
	assert.False(t, model.StatusScheduled.IsTerminal())
}
