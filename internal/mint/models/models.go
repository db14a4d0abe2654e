package models

import (
	dErrors "mintgate/pkg/domain-errors"
)

// Mode tags which admission path a mint request takes. Keeping the mode on
// the request (instead of separate code paths) means the policy's ordered
// checklist is the single source of truth for admission.
type Mode string

const (
	ModePublic         Mode = "public"
	ModeWhitelisted    Mode = "whitelisted"
	ModeAdministrative Mode = "administrative"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModePublic, ModeWhitelisted, ModeAdministrative:
		return true
	}
	return false
}

// Paid reports whether the mode requires payment and counts against the
// per-address cap. The administrative path bypasses both.
func (m Mode) Paid() bool {
	return m != ModeAdministrative
}

// CollectionConfig is the issuance configuration. MaxSupply and
// MaxMintPerAddress are fixed at construction; MintPrice, BaseURI and the
// two mode flags are administrator-mutable at runtime.
type CollectionConfig struct {
	MaxSupply            uint64
	MintPrice            uint64
	MaxMintPerAddress    uint64
	PublicMintEnabled    bool
	WhitelistMintEnabled bool
	BaseURI              string
}

// Validate enforces construction invariants: a collection must have a
// positive finite supply and a positive per-address cap.
func (c *CollectionConfig) Validate() error {
	if c == nil {
		return dErrors.New(dErrors.CodeBadRequest, "collection config is required")
	}
	if c.MaxSupply == 0 {
		return dErrors.New(dErrors.CodeValidation, "max_supply must be positive")
	}
	if c.MaxMintPerAddress == 0 {
		return dErrors.New(dErrors.CodeValidation, "max_mint_per_address must be positive")
	}
	return nil
}
