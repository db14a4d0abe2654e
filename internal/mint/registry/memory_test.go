package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mintgate/pkg/domain"
	"mintgate/pkg/platform/sentinel"
)

var owner = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

func TestInMemoryRegistry_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	reg := NewInMemory()

	require.NoError(t, reg.Create(ctx, owner, 1))
	require.NoError(t, reg.SetTokenURI(ctx, 1, "ipfs://base/1.json"))

	got, err := reg.OwnerOf(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	uri, err := reg.TokenURI(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://base/1.json", uri)

	balance, err := reg.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)

	id, err := reg.TokenOfOwnerByIndex(ctx, owner, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenID(1), id)
}

func TestInMemoryRegistry_UnknownIdentifier(t *testing.T) {
	ctx := context.Background()
	reg := NewInMemory()

	_, err := reg.OwnerOf(ctx, 99)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	err = reg.SetTokenURI(ctx, 99, "ipfs://base/99.json")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	_, err = reg.TokenOfOwnerByIndex(ctx, owner, 0)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemoryRegistry_DuplicateCreateConflicts(t *testing.T) {
	ctx := context.Background()
	reg := NewInMemory()

	require.NoError(t, reg.Create(ctx, owner, 1))
	assert.ErrorIs(t, reg.Create(ctx, owner, 1), sentinel.ErrConflict)
}
