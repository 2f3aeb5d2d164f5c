package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/model"
)

// mockDispatcherStore implements a test double for DispatcherStore and
// MailDirectory
type mockDispatcherStore struct {
	created []model.Notification
	users   map[int64]*model.User

	createErr error
}

func (m *mockDispatcherStore) CreateNotification(ctx context.Context, n *model.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, *n)
	return nil
}

func (m *mockDispatcherStore) ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	var out []model.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockDispatcherStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

// mockMailSender records every email and can be told to fail
type mockMailSender struct {
	sent    []string
	sendErr error
}

func (m *mockMailSender) SendEmail(to, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestStoreDispatcher_SendCreatesUnreadRecord(t *testing.T) {
	store := &mockDispatcherStore{}
	d := NewStoreDispatcher(store, zap.NewNop())

	require.NoError(t, d.Send(context.Background(), 10, "hello"))

	require.Len(t, store.created, 1)
	n := store.created[0]
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, int64(10), n.UserID)
	assert.Equal(t, "hello", n.Message)
	assert.False(t, n.Read)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestStoreDispatcher_BroadcastWritesPerUser(t *testing.T) {
	store := &mockDispatcherStore{users: map[int64]*model.User{
		1: {ID: 1, Role: model.RoleAdmin},
		2: {ID: 2, Role: model.RoleAdmin},
		3: {ID: 3, Role: model.RoleMother},
	}}
	d := NewStoreDispatcher(store, zap.NewNop())

	require.NoError(t, d.BroadcastRole(context.Background(), model.RoleAdmin, "attention"))
	assert.Len(t, store.created, 2)
}

func TestStoreDispatcher_CreateFailureSurfaces(t *testing.T) {
	store := &mockDispatcherStore{createErr: errors.New("disk full")}
	d := NewStoreDispatcher(store, zap.NewNop())

	assert.Error(t, d.Send(context.Background(), 10, "hello"))
}

func TestMailDispatcher_RecordThenEmail(t *testing.T) {
	store := &mockDispatcherStore{users: map[int64]*model.User{
		10: {ID: 10, Email: "amina@example.org"},
	}}
	sender := &mockMailSender{}
	d := NewMailDispatcher(NewStoreDispatcher(store, zap.NewNop()), sender, store, "Visit update", zap.NewNop())

	require.NoError(t, d.Send(context.Background(), 10, "hello"))

	// the record is written and the email goes out
	assert.Len(t, store.created, 1)
	assert.Equal(t, []string{"amina@example.org"}, sender.sent)
}

func TestMailDispatcher_EmailFailureNeverSurfaces(t *testing.T) {
	store := &mockDispatcherStore{users: map[int64]*model.User{
		10: {ID: 10, Email: "amina@example.org"},
	}}
	sender := &mockMailSender{sendErr: errors.New("smtp down")}
	d := NewMailDispatcher(NewStoreDispatcher(store, zap.NewNop()), sender, store, "Visit update", zap.NewNop())

	// delivery problems are logged and dropped, the record still lands
	require.NoError(t, d.Send(context.Background(), 10, "hello"))
	assert.Len(t, store.created, 1)
}

func TestMailDispatcher_SkipsUsersWithoutEmail(t *testing.T) {
	store := &mockDispatcherStore{users: map[int64]*model.User{
		10: {ID: 10},
	}}
	sender := &mockMailSender{}
	d := NewMailDispatcher(NewStoreDispatcher(store, zap.NewNop()), sender, store, "Visit update", zap.NewNop())

	require.NoError(t, d.Send(context.Background(), 10, "hello"))
	assert.Empty(t, sender.sent)
}
