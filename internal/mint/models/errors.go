package models

import "errors"

// Admission errors. Rejections are reported to the caller with no state
// change; the caller may adjust the request and retry.
var (
	ErrMintModeDisabled      = errors.New("mint mode disabled")
	ErrNotWhitelisted        = errors.New("caller not whitelisted")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrSupplyExceeded        = errors.New("max supply exceeded")
	ErrPerAddressCapExceeded = errors.New("per-address mint cap exceeded")
	ErrInsufficientPayment   = errors.New("insufficient payment")
)

// Concurrency error: a nested call re-entered a guarded entry point while
// another was in flight. Indicates misuse, not a normal condition.
var ErrReentrantCall = errors.New("reentrant call")

// Treasury errors. No partial transfer ever occurs.
var (
	ErrNothingToWithdraw = errors.New("nothing to withdraw")
	ErrTransferFailed    = errors.New("transfer failed")
)

// ErrNotAdministrator gates administrator-only entry points.
var ErrNotAdministrator = errors.New("not administrator")

// IsAdmissionError reports whether err is one of the admission rejections,
// i.e. recoverable by the caller adjusting the request.
func IsAdmissionError(err error) bool {
	for _, target := range []error{
		ErrMintModeDisabled,
		ErrNotWhitelisted,
		ErrInvalidQuantity,
		ErrSupplyExceeded,
		ErrPerAddressCapExceeded,
		ErrInsufficientPayment,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
