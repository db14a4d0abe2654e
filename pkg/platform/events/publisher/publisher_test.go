package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mintgate/pkg/domain"
	events "mintgate/pkg/platform/events"
	"mintgate/pkg/platform/events/store/memory"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	event := events.Event{
		Name:    events.EventTokenMinted,
		Address: domain.Address("0xab5801a7d398351b8be11c439e05c5b3259aec9b"),
		TokenID: domain.TokenID(1),
	}

	err := pub.Emit(context.Background(), event)
	require.NoError(t, err)

	got, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, events.EventTokenMinted, got[0].Name)
	assert.False(t, got[0].Timestamp.IsZero(), "Emit should stamp the event")
}

func TestPublisher_AsyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(10))

	event := events.Event{
		Name:    events.EventWhitelistUpdated,
		Address: domain.Address("0xab5801a7d398351b8be11c439e05c5b3259aec9b"),
		Enabled: true,
	}

	err := pub.Emit(context.Background(), event)
	require.NoError(t, err)

	// Close flushes the buffer before returning.
	pub.Close()

	got, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, events.EventWhitelistUpdated, got[0].Name)
}

func TestPublisher_SyncModePreservesOrder(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	for i := 1; i <= 5; i++ {
		err := pub.Emit(context.Background(), events.Event{
			Name:    events.EventTokenMinted,
			TokenID: domain.TokenID(i),
		})
		require.NoError(t, err)
	}

	got, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, e := range got {
		assert.Equal(t, domain.TokenID(i+1), e.TokenID)
	}
}

func TestPublisher_CloseIsIdempotent(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(1))

	require.NoError(t, pub.Emit(context.Background(), events.Event{Name: events.EventBaseURIUpdated}))

	pub.Close()
	pub.Close()

	// Events emitted before Close are flushed.
	deadline := time.Now().Add(time.Second)
	for {
		got, err := pub.List(context.Background())
		require.NoError(t, err)
		if len(got) == 1 || time.Now().After(deadline) {
			require.Len(t, got, 1)
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}
