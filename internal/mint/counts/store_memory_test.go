package counts

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mintgate/pkg/domain"
)

func TestInMemoryStore_UnknownAddressIsZero(t *testing.T) {
	store := NewInMemoryStore()

	n, err := store.Get(context.Background(), domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
}

func TestInMemoryStore_AddAccumulates(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	addr := domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	require.NoError(t, store.Add(ctx, addr, 2))
	require.NoError(t, store.Add(ctx, addr, 3))

	n, err := store.Get(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), n)
}

func TestInMemoryStore_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	addr := domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	const goroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Add(ctx, addr, 1)
		}()
	}
	wg.Wait()

	n, err := store.Get(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(goroutines), n)
}
