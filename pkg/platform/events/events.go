// Package events defines the domain notifications emitted by the issuance
// core. Keep the model transport-agnostic so stores and sinks can fan out.
package events

import (
	"context"
	"time"

	"mintgate/pkg/domain"
)

// Name identifies the kind of domain event.
type Name string

const (
	// Issuance events
	EventTokenMinted Name = "token_minted"

	// Allow-list events
	EventWhitelistUpdated Name = "whitelist_updated"

	// Configuration events
	EventPublicMintToggled    Name = "public_mint_toggled"
	EventWhitelistMintToggled Name = "whitelist_mint_toggled"
	EventBaseURIUpdated       Name = "base_uri_updated"
	EventMintPriceUpdated     Name = "mint_price_updated"

	// Treasury events
	EventTreasuryWithdrawn Name = "treasury_withdrawn"
)

// Event is emitted from domain logic to capture observable state changes.
// Only the fields relevant to the event name are populated.
type Event struct {
	Name      Name
	Timestamp time.Time

	// Address is the subject of the event: the token recipient for
	// token_minted, the edited entry for whitelist_updated, the payee for
	// treasury_withdrawn.
	Address domain.Address

	// TokenID and TokenURI are set for token_minted.
	TokenID  domain.TokenID
	TokenURI string

	// Enabled carries the new flag value for whitelist_updated and the
	// toggle events.
	Enabled bool

	// Amount carries the withdrawn balance or the new mint price.
	Amount uint64

	// Value carries the new base URI for base_uri_updated.
	Value string

	// RequestID is the correlation ID from the request context, when known.
	RequestID string
}

// Store persists emitted events for inspection.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}
