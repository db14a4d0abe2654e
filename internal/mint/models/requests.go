package models

import (
	"strings"

	"mintgate/pkg/domain"
	dErrors "mintgate/pkg/domain-errors"
	strutil "mintgate/pkg/platform/strings"
)

type MintRequest struct {
	Quantity uint64 `json:"quantity"`
	Payment  uint64 `json:"payment"`
}

// Follows validation order: Required -> Syntax -> Semantic. Quantity zero is
// rejected by the policy, not here, so the rejection reason matches the
// admission taxonomy.
func (r *MintRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return nil
}

type AdminMintRequest struct {
	Recipient string `json:"recipient"`
	Quantity  uint64 `json:"quantity"`
}

func (r *AdminMintRequest) Normalize() {
	if r == nil {
		return
	}
	r.Recipient = strings.TrimSpace(r.Recipient)
}

func (r *AdminMintRequest) Validate() (domain.Address, error) {
	if r == nil {
		return "", dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Recipient == "" {
		return "", dErrors.New(dErrors.CodeValidation, "recipient is required")
	}
	addr, err := domain.ParseAddress(r.Recipient)
	if err != nil {
		return "", err
	}
	return addr, nil
}

type SetAllowlistRequest struct {
	Addresses []string `json:"addresses"`
	Enabled   bool     `json:"enabled"`
}

func (r *SetAllowlistRequest) Normalize() {
	if r == nil {
		return
	}
	r.Addresses = strutil.DedupeAndTrimLower(r.Addresses)
}

func (r *SetAllowlistRequest) Validate() ([]domain.Address, error) {
	if r == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if len(r.Addresses) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "addresses is required")
	}
	if len(r.Addresses) > 500 {
		return nil, dErrors.New(dErrors.CodeValidation, "at most 500 addresses per request")
	}

	addrs := make([]domain.Address, 0, len(r.Addresses))
	for _, raw := range r.Addresses {
		addr, err := domain.ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

type SetPriceRequest struct {
	Price uint64 `json:"price"`
}

func (r *SetPriceRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return nil
}

type SetBaseURIRequest struct {
	BaseURI string `json:"base_uri"`
}

func (r *SetBaseURIRequest) Normalize() {
	if r == nil {
		return
	}
	r.BaseURI = strings.TrimSpace(r.BaseURI)
}

func (r *SetBaseURIRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.BaseURI == "" {
		return dErrors.New(dErrors.CodeValidation, "base_uri is required")
	}
	if len(r.BaseURI) > 2048 {
		return dErrors.New(dErrors.CodeValidation, "base_uri must be 2048 characters or less")
	}
	return nil
}
