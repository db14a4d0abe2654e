package policy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mintgate/internal/mint/models"
	"mintgate/pkg/domain"
)

func baseInput(mode models.Mode) Input {
	return Input{
		Mode:     mode,
		Caller:   domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		Quantity: 1,
		Payment:  1,
		Config: models.CollectionConfig{
			MaxSupply:            10,
			MintPrice:            1,
			MaxMintPerAddress:    3,
			PublicMintEnabled:    true,
			WhitelistMintEnabled: true,
		},
		Whitelisted: true,
	}
}

func TestCheck_Admits(t *testing.T) {
	for _, mode := range []models.Mode{models.ModePublic, models.ModeWhitelisted, models.ModeAdministrative} {
		t.Run(string(mode), func(t *testing.T) {
			require.NoError(t, Check(baseInput(mode)))
		})
	}
}

func TestCheck_ModeFlagComesFirst(t *testing.T) {
	// A disabled mode masks every later rejection: even a zero-quantity
	// over-supply request reports the disabled mode.
	in := baseInput(models.ModePublic)
	in.Config.PublicMintEnabled = false
	in.Quantity = 0
	in.Payment = 0

	assert.ErrorIs(t, Check(in), models.ErrMintModeDisabled)

	in = baseInput(models.ModeWhitelisted)
	in.Config.WhitelistMintEnabled = false
	in.Whitelisted = false

	assert.ErrorIs(t, Check(in), models.ErrMintModeDisabled)
}

func TestCheck_WhitelistMembershipAfterModeFlag(t *testing.T) {
	in := baseInput(models.ModeWhitelisted)
	in.Whitelisted = false

	assert.ErrorIs(t, Check(in), models.ErrNotWhitelisted)
}

func TestCheck_PublicModeIgnoresMembership(t *testing.T) {
	in := baseInput(models.ModePublic)
	in.Whitelisted = false

	require.NoError(t, Check(in))
}

func TestCheck_ZeroQuantity(t *testing.T) {
	in := baseInput(models.ModePublic)
	in.Quantity = 0

	assert.ErrorIs(t, Check(in), models.ErrInvalidQuantity)
}

func TestCheck_SupplyCapBeforePerAddressCap(t *testing.T) {
	in := baseInput(models.ModePublic)
	in.TotalIssued = 8
	in.Quantity = 4 // breaks both caps; supply must win
	in.Payment = 4

	assert.ErrorIs(t, Check(in), models.ErrSupplyExceeded)
}

func TestCheck_PerAddressCap(t *testing.T) {
	in := baseInput(models.ModePublic)
	in.MintedByCaller = 2
	in.Quantity = 2
	in.Payment = 2

	assert.ErrorIs(t, Check(in), models.ErrPerAddressCapExceeded)
}

func TestCheck_AdministrativeSkipsCapAndPayment(t *testing.T) {
	in := baseInput(models.ModeAdministrative)
	in.MintedByCaller = 3 // already at cap
	in.Quantity = 5
	in.Payment = 0

	require.NoError(t, Check(in))
}

func TestCheck_AdministrativeStillBoundBySupply(t *testing.T) {
	in := baseInput(models.ModeAdministrative)
	in.Config.MaxSupply = 5
	in.Config.MaxMintPerAddress = 100
	in.Quantity = 6

	assert.ErrorIs(t, Check(in), models.ErrSupplyExceeded)
}

func TestCheck_InsufficientPayment(t *testing.T) {
	in := baseInput(models.ModePublic)
	in.Quantity = 2
	in.Payment = 1

	assert.ErrorIs(t, Check(in), models.ErrInsufficientPayment)
}

func TestCheck_OverpaymentAdmitted(t *testing.T) {
	in := baseInput(models.ModePublic)
	in.Quantity = 1
	in.Payment = 5

	require.NoError(t, Check(in))
}

func TestCheck_PriceOverflowRejectsAsInsufficientPayment(t *testing.T) {
	in := baseInput(models.ModePublic)
	in.Config.MaxSupply = math.MaxUint64
	in.Config.MaxMintPerAddress = math.MaxUint64
	in.Config.MintPrice = math.MaxUint64
	in.Quantity = 2
	in.Payment = math.MaxUint64

	assert.ErrorIs(t, Check(in), models.ErrInsufficientPayment)
}

func TestCheck_FreeMintNeedsNoPayment(t *testing.T) {
	in := baseInput(models.ModePublic)
	in.Config.MintPrice = 0
	in.Payment = 0

	require.NoError(t, Check(in))
}

func TestCheck_CapAlreadyExceededByAdminMints(t *testing.T) {
	// Administrative issuance may push a count past the cap; a later paid
	// mint must still reject cleanly instead of wrapping around.
	in := baseInput(models.ModePublic)
	in.MintedByCaller = 10 // above MaxMintPerAddress=3

	assert.ErrorIs(t, Check(in), models.ErrPerAddressCapExceeded)
}
