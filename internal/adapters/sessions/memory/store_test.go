package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSessionLifecycle(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "chat-1")
	require.ErrorIs(t, err, domain.ErrNoSession)

	session := domain.Session{ConversationID: "chat-1", State: domain.StateAwaitingPrice}
	session.Draft.Set(domain.FieldDate, "2025-06-09")
	require.NoError(t, store.Put(ctx, session))

	got, err := store.Get(ctx, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAwaitingPrice, got.State)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "chat-1"))
	require.NoError(t, store.Delete(ctx, "chat-1"))
	assert.Zero(t, store.Len())
}

func TestStoreGetReturnsIsolatedDraft(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	session := domain.Session{ConversationID: "chat-1", State: domain.StateAwaitingType}
	session.Draft.Set(domain.FieldDate, "2025-06-09")
	require.NoError(t, store.Put(ctx, session))

	got, err := store.Get(ctx, "chat-1")
	require.NoError(t, err)
	got.Draft.Set(domain.FieldMaintenanceType, "Engine Oil")

	again, err := store.Get(ctx, "chat-1")
	require.NoError(t, err)
	_, ok := again.Draft.Get(domain.FieldMaintenanceType)
	assert.False(t, ok)
}

func TestStorePendingDeletionsAreConsumedOnce(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "chat-1", domain.PendingDeletion{Token: "5"}))
	require.NoError(t, store.Save(ctx, "chat-1", domain.PendingDeletion{Token: "6"}))

	_, err := store.Take(ctx, "chat-2", "5")
	require.ErrorIs(t, err, domain.ErrNoPendingDeletion)

	got, err := store.Take(ctx, "chat-1", "5")
	require.NoError(t, err)
	assert.Equal(t, domain.RecordID("5"), got.Token)

	_, err = store.Take(ctx, "chat-1", "5")
	require.ErrorIs(t, err, domain.ErrNoPendingDeletion)

	_, err = store.Take(ctx, "chat-1", "6")
	require.NoError(t, err)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, domain.Session{ConversationID: "chat-1"}), context.Canceled)
	_, err := store.Take(ctx, "chat-1", "1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreConcurrentConversations(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := domain.ConversationID(fmt.Sprintf("chat-%d", i))
			assert.NoError(t, store.Put(ctx, domain.NewSession(id, time.Time{})))
			_, err := store.Get(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, store.Len())
}
