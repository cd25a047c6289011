package session

import (
	"context"
	"errors"
	"testing"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"
	"artliving/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct {
	storage.KeyValueStore
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(storage.NewMemoryStore(), zap.NewNop())
	tab := uuid.New()

	sess, err := Open(ctx, tab, repo, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())

	var seen []*entity.User
	unsubscribe := sess.Subscribe(func(u *entity.User) { seen = append(seen, u) })

	require.NoError(t, sess.Login(ctx, &entity.User{ID: "1", FirstName: "נועה"}))
	assert.True(t, sess.IsAuthenticated())

	require.NoError(t, sess.Update(ctx, &entity.User{ID: "1", FirstName: "נועה ל"}))
	assert.Equal(t, "נועה ל", sess.Current().FirstName)

	require.NoError(t, sess.Logout(ctx))
	assert.Nil(t, sess.Current())

	require.Len(t, seen, 3)
	assert.Equal(t, "נועה", seen[0].FirstName)
	assert.Nil(t, seen[2])

	unsubscribe()
	require.NoError(t, sess.Login(ctx, &entity.User{ID: "2"}))
	assert.Len(t, seen, 3)
}

func TestSessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(storage.NewMemoryStore(), zap.NewNop())
	tab := uuid.New()

	first, err := Open(ctx, tab, repo, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.Login(ctx, &entity.User{ID: "1", IsAdmin: true}))

	second, err := Open(ctx, tab, repo, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, second.Current())
	assert.True(t, second.Current().IsAdmin)
}

func TestCurrentIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(storage.NewMemoryStore(), zap.NewNop())
	sess, err := Open(ctx, uuid.New(), repo, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, sess.Login(ctx, &entity.User{ID: "1", FirstName: "a"}))

	sess.Current().FirstName = "b"
	assert.Equal(t, "a", sess.Current().FirstName)
}

func TestUpdateRequiresLogin(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(storage.NewMemoryStore(), zap.NewNop())
	sess, err := Open(ctx, uuid.New(), repo, zap.NewNop())
	require.NoError(t, err)

	assert.Error(t, sess.Update(ctx, &entity.User{ID: "1"}))
}

func TestFailedWriteKeepsState(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(failingStore{storage.NewMemoryStore()}, zap.NewNop())
	sess, err := Open(ctx, uuid.New(), repo, zap.NewNop())
	require.NoError(t, err)

	assert.Error(t, sess.Login(ctx, &entity.User{ID: "1"}))
	assert.False(t, sess.IsAuthenticated())
}
