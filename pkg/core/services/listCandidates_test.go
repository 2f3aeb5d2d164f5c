package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maternacare/homevisit/pkg/core/lifecycle"
	"github.com/maternacare/homevisit/pkg/core/model"
)

func TestListCandidates_ComputesLoads(t *testing.T) {
	store, _, _, logger := serviceFixture(t)
	ctx := context.Background()

	// one active visit for Grace, a completed one that must not count
	active := &model.Visit{MotherID: 10, Date: monday, Status: model.StatusScheduled, VolunteerID: 20}
	require.NoError(t, store.CreateVisit(ctx, active))
	done := &model.Visit{MotherID: 10, Date: monday, Status: model.StatusCompleted, VolunteerID: 20}
	require.NoError(t, store.CreateVisit(ctx, done))

	candidates, err := ListCandidates(ctx, store, logger, 1)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// sorted by id: Grace then Tom
	assert.Equal(t, int64(20), candidates[0].Volunteer.ID)
	assert.Equal(t, 1, candidates[0].ActiveLoad)
	assert.Equal(t, 2, candidates[0].Remaining)

	assert.Equal(t, int64(21), candidates[1].Volunteer.ID)
	assert.Equal(t, 0, candidates[1].ActiveLoad)
	assert.Equal(t, 2, candidates[1].Remaining)
}

func TestListCandidates_AdminOnly(t *testing.T) {
	store, _, _, logger := serviceFixture(t)

	for _, actor := range []int64{10, 20, 99} {
		_, err := ListCandidates(context.Background(), store, logger, actor)
		assert.ErrorIs(t, err, lifecycle.ErrPermissionDenied)
	}
}
