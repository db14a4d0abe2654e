//go:build integration

package allowlist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"mintgate/internal/mint/allowlist"
	"mintgate/pkg/domain"
	"mintgate/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *allowlist.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = allowlist.NewPostgres(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "mint_allowlist"))
}

func (s *PostgresStoreSuite) TestDefaultsToNonMember() {
	member, err := s.store.IsMember(context.Background(), domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	s.Require().NoError(err)
	s.False(member)
}

func (s *PostgresStoreSuite) TestSetManyUpsertsAndRemoves() {
	ctx := context.Background()
	a := domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	b := domain.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	s.Require().NoError(s.store.SetMany(ctx, []domain.Address{a, b}, true))

	member, err := s.store.IsMember(ctx, a)
	s.Require().NoError(err)
	s.True(member)

	// Idempotent re-apply.
	s.Require().NoError(s.store.SetMany(ctx, []domain.Address{a, b}, true))

	members, err := s.store.Members(ctx)
	s.Require().NoError(err)
	s.Len(members, 2)

	// Disable one entry; the other stays.
	s.Require().NoError(s.store.SetMany(ctx, []domain.Address{a}, false))

	member, err = s.store.IsMember(ctx, a)
	s.Require().NoError(err)
	s.False(member)

	member, err = s.store.IsMember(ctx, b)
	s.Require().NoError(err)
	s.True(member)
}
