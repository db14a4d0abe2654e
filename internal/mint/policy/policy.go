// Package policy decides whether a mint request is admissible. It is a pure
// function over a snapshot of current state: it reads, it does not mutate,
// and the check order below is the single source of truth for which
// rejection a caller sees.
package policy

import (
	"math/bits"

	"mintgate/internal/mint/models"
	"mintgate/pkg/domain"
)

// Input is the state snapshot a decision is made against. The controller
// assembles it inside its guarded section so the values are mutually
// consistent.
type Input struct {
	Mode     models.Mode
	Caller   domain.Address
	Quantity uint64
	Payment  uint64

	Config         models.CollectionConfig
	TotalIssued    uint64
	MintedByCaller uint64
	Whitelisted    bool
}

// Check runs the ordered admission checklist and returns nil or the first
// failing check's rejection:
//  1. mode flag, then allow-list membership for whitelisted mode
//     (administrative mode skips both)
//  2. quantity must be positive
//  3. supply cap
//  4. per-address cap (skipped for administrative)
//  5. payment covers price x quantity (skipped for administrative)
func Check(in Input) error {
	switch in.Mode {
	case models.ModePublic:
		if !in.Config.PublicMintEnabled {
			return models.ErrMintModeDisabled
		}
	case models.ModeWhitelisted:
		if !in.Config.WhitelistMintEnabled {
			return models.ErrMintModeDisabled
		}
		if !in.Whitelisted {
			return models.ErrNotWhitelisted
		}
	case models.ModeAdministrative:
		// No mode flag or membership check.
	default:
		return models.ErrMintModeDisabled
	}

	if in.Quantity == 0 {
		return models.ErrInvalidQuantity
	}

	if in.Quantity > in.Config.MaxSupply-in.TotalIssued {
		return models.ErrSupplyExceeded
	}

	if in.Mode.Paid() {
		if in.Quantity > in.Config.MaxMintPerAddress-min(in.MintedByCaller, in.Config.MaxMintPerAddress) {
			return models.ErrPerAddressCapExceeded
		}

		// The product must not silently overflow: an unrepresentable total
		// price can never be satisfied, so it rejects as insufficient
		// payment rather than sneaking through as a tiny wrapped value.
		hi, total := bits.Mul64(in.Config.MintPrice, in.Quantity)
		if hi != 0 {
			return models.ErrInsufficientPayment
		}
		if in.Payment < total {
			return models.ErrInsufficientPayment
		}
	}

	return nil
}
