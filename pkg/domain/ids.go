package domain

import (
	"strconv"
	"strings"

	dErrors "mintgate/pkg/domain-errors"
)

// Address identifies a participant wallet. It is a domain primitive that
// enforces validity at parse time: 0x-prefixed, 40 hex characters, stored
// lowercased so map lookups and comparisons are case-insensitive.
//
// Usage: construct via ParseAddress at trust boundaries; direct casting
// bypasses validation.
type Address string

// ParseAddress validates and normalizes a wallet address.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address is required")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address must be 0x-prefixed")
	}
	hex := s[2:]
	if len(hex) != 40 {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address must contain 40 hex characters")
	}
	for _, c := range hex {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return "", dErrors.New(dErrors.CodeInvalidInput, "address contains non-hex characters")
		}
	}
	return Address("0x" + strings.ToLower(hex)), nil
}

func (a Address) String() string {
	return string(a)
}

// IsNil returns true if the address is empty.
func (a Address) IsNil() bool {
	return a == ""
}

// TokenID is a 1-based sequential item identifier assigned at issuance.
// Zero is never a valid issued identifier.
type TokenID uint64

func (id TokenID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IsNil returns true if the identifier is the unissued zero value.
func (id TokenID) IsNil() bool {
	return id == 0
}
