package service

import (
	"context"

	"mintgate/pkg/domain"
	dErrors "mintgate/pkg/domain-errors"
	"mintgate/pkg/platform/events"
)

// Administrator-only mutators. Access is enforced at the transport edge; the
// entry points here still share the reentrancy guard so none of them can run
// while a mint or withdrawal is in flight.

// TogglePublicMint flips the public sale flag and returns the new value.
func (s *Service) TogglePublicMint(ctx context.Context) (bool, error) {
	if err := s.enter(); err != nil {
		return false, err
	}
	defer s.exit()

	s.cfgMu.Lock()
	s.cfg.PublicMintEnabled = !s.cfg.PublicMintEnabled
	enabled := s.cfg.PublicMintEnabled
	s.cfgMu.Unlock()

	s.emit(ctx, events.Event{
		Name:    events.EventPublicMintToggled,
		Enabled: enabled,
	})
	return enabled, nil
}

// ToggleWhitelistMint flips the allow-listed sale flag and returns the new
// value.
func (s *Service) ToggleWhitelistMint(ctx context.Context) (bool, error) {
	if err := s.enter(); err != nil {
		return false, err
	}
	defer s.exit()

	s.cfgMu.Lock()
	s.cfg.WhitelistMintEnabled = !s.cfg.WhitelistMintEnabled
	enabled := s.cfg.WhitelistMintEnabled
	s.cfgMu.Unlock()

	s.emit(ctx, events.Event{
		Name:    events.EventWhitelistMintToggled,
		Enabled: enabled,
	})
	return enabled, nil
}

// SetMintPrice updates the per-item price for the paid modes.
func (s *Service) SetMintPrice(ctx context.Context, price uint64) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.exit()

	s.cfgMu.Lock()
	s.cfg.MintPrice = price
	s.cfgMu.Unlock()

	s.emit(ctx, events.Event{
		Name:   events.EventMintPriceUpdated,
		Amount: price,
	})
	return nil
}

// SetBaseURI updates the metadata path prefix used for newly issued items.
// Already-issued items keep the reference they were created with.
func (s *Service) SetBaseURI(ctx context.Context, baseURI string) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.exit()

	s.cfgMu.Lock()
	s.cfg.BaseURI = baseURI
	s.cfgMu.Unlock()

	s.emit(ctx, events.Event{
		Name:  events.EventBaseURIUpdated,
		Value: baseURI,
	})
	return nil
}

// SetAllowlist sets membership for each address and emits one
// WhitelistUpdated event per input address, whether or not the stored value
// changed. Event-count parity with the edit request is part of the
// observable contract.
func (s *Service) SetAllowlist(ctx context.Context, addrs []domain.Address, enabled bool) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.exit()

	if len(addrs) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "at least one address is required")
	}

	if err := s.allowlist.SetMany(ctx, addrs, enabled); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update allowlist")
	}

	for _, addr := range addrs {
		s.emit(ctx, events.Event{
			Name:    events.EventWhitelistUpdated,
			Address: addr,
			Enabled: enabled,
		})
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "allowlist updated",
			"addresses", len(addrs),
			"enabled", enabled,
		)
	}
	return nil
}
