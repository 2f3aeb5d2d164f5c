package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
)

func TestCancelVisit_ScheduledNotifiesVolunteer(t *testing.T) {
	fx := scheduledVisit(t)
	ctx := context.Background()

	cancelled, err := CancelVisit(ctx, fx.store, fx.dispatcher, fx.logger, fx.visit.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)

	require.Len(t, fx.dispatcher.sent, 1)
	assert.Equal(t, int64(21), fx.dispatcher.sent[0].userID)
	assert.Equal(t, msgCancelled(fx.visit.ID), fx.dispatcher.sent[0].message)
}

func TestCancelVisit_UnassignedNotifiesNobody(t *testing.T) {
	store, _, dispatcher, logger := serviceFixture(t)
	ctx := context.Background()

	visit := &model.Visit{MotherID: 10, Date: monday, Status: model.StatusPending}
	require.NoError(t, store.CreateVisit(ctx, visit))

	cancelled, err := CancelVisit(ctx, store, dispatcher, logger, visit.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
	assert.Empty(t, dispatcher.sent)
}

func TestCancelVisit_OnlyOwnerMayCancel(t *testing.T) {
	fx := scheduledVisit(t)
	ctx := context.Background()

	// another mother, the volunteer, and the admin all get refused
	for _, actor := range []int64{11, 21, 1} {
		_, err := CancelVisit(ctx, fx.store, fx.dispatcher, fx.logger, fx.visit.ID, actor)
		assert.ErrorIs(t, err, lifecycle.ErrPermissionDenied)
	}
}

func TestCancelVisit_CancelOfCancelledRejected(t *testing.T) {
	fx := scheduledVisit(t)
	ctx := context.Background()

	_, err := CancelVisit(ctx, fx.store, fx.dispatcher, fx.logger, fx.visit.ID, 10)
	require.NoError(t, err)

	// not a silent repeat
	_, err = CancelVisit(ctx, fx.store, fx.dispatcher, fx.logger, fx.visit.ID, 10)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
}

func TestCancelVisit_RecordIsKept(t *testing.T) {
	fx := scheduledVisit(t)
	ctx := context.Background()

	_, err := CancelVisit(ctx, fx.store, fx.dispatcher, fx.logger, fx.visit.ID, 10)
	require.NoError(t, err)

	stored, err := fx.store.GetVisit(ctx, fx.visit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, stored.Status)
}
