// Package ports defines shared interfaces for the mint module.
// Interfaces are placed here when consumed by multiple services to avoid duplication.
package ports

//go:generate mockgen -source=ports.go -destination=../service/mocks/mocks.go -package=mocks

import (
	"context"

	"mintgate/pkg/domain"
	"mintgate/pkg/platform/events"
)

// SupplyLedger is the single source of truth for how many items exist and
// which identifiers are assigned.
type SupplyLedger interface {
	// Remaining returns maxSupply minus the current counter, never negative.
	Remaining() uint64

	// TotalIssued returns the current counter value.
	TotalIssued() uint64

	// ReserveNext atomically advances the counter by n and returns the n
	// newly assigned sequential identifiers. Fails with
	// models.ErrSupplyExceeded when the counter would pass max supply;
	// identifier ranges from distinct calls never overlap.
	ReserveNext(n uint64) ([]domain.TokenID, error)
}

// AllowlistStore manages whitelist-mode membership.
type AllowlistStore interface {
	// SetMany sets membership for each address. Idempotent.
	SetMany(ctx context.Context, addrs []domain.Address, enabled bool) error

	// IsMember reports membership; unknown addresses are not members.
	IsMember(ctx context.Context, addr domain.Address) (bool, error)
}

// CountStore tracks how many items each address has been issued.
type CountStore interface {
	// Get returns the minted count for an address, zero for unknown ones.
	Get(ctx context.Context, addr domain.Address) (uint64, error)

	// Add increments the minted count for an address by n.
	Add(ctx context.Context, addr domain.Address, n uint64) error
}

// ItemRegistry is the external collaborator that records item ownership.
// The core calls it during issuance but does not implement enumeration or
// transfer logic.
type ItemRegistry interface {
	// Create assigns initial ownership of a newly issued identifier.
	Create(ctx context.Context, owner domain.Address, id domain.TokenID) error

	// SetTokenURI records the metadata reference for an identifier.
	SetTokenURI(ctx context.Context, id domain.TokenID, uri string) error

	// OwnerOf returns the current owner, or sentinel.ErrNotFound.
	OwnerOf(ctx context.Context, id domain.TokenID) (domain.Address, error)

	// BalanceOf returns how many items an owner holds.
	BalanceOf(ctx context.Context, owner domain.Address) (uint64, error)

	// TokenOfOwnerByIndex enumerates an owner's holdings.
	TokenOfOwnerByIndex(ctx context.Context, owner domain.Address, index uint64) (domain.TokenID, error)
}

// FundsTransferrer moves native currency out of the treasury. Used only by
// withdrawal.
type FundsTransferrer interface {
	Transfer(ctx context.Context, to domain.Address, amount uint64) error
}

// AccessController decides who may exercise administrator-only entry points.
type AccessController interface {
	IsAdministrator(addr domain.Address) bool
}

// EventPublisher emits domain events for observable state changes.
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event) error
}
