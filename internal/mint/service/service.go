// Package service implements the minting controller: the single owner of the
// supply counter, per-address counts, configuration, and treasury. Every
// mutation enters through a reentrancy-guarded entry point; there is no back
// door to the counters.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"mintgate/internal/mint/models"
	"mintgate/internal/mint/policy"
	"mintgate/internal/mint/ports"
	"mintgate/internal/mint/treasury"
	"mintgate/pkg/domain"
	dErrors "mintgate/pkg/domain-errors"
	"mintgate/pkg/platform/events"
	request "mintgate/pkg/platform/middleware/request"
)

// Metrics is the subset of the metrics surface the service reports to.
// Declared here so tests can run without registering Prometheus collectors.
type Metrics interface {
	ObserveMint(mode string, quantity uint64)
	ObserveRejection(reason string)
	SetTreasuryBalance(balance uint64)
	ObserveWithdrawal()
}

type Service struct {
	ledger    ports.SupplyLedger
	allowlist ports.AllowlistStore
	counts    ports.CountStore
	registry  ports.ItemRegistry
	treasury  *treasury.Treasury
	access    ports.AccessController

	// cfgMu protects the mutable configuration fields against concurrent
	// readers; writers additionally hold the reentrancy guard.
	cfgMu sync.RWMutex
	cfg   models.CollectionConfig

	// busy is the reentrancy guard. It spans every mutating entry point:
	// a nested call from a registry or transfer callback into any of them
	// fails with ErrReentrantCall.
	busy atomic.Bool

	publisher ports.EventPublisher
	metrics   Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAccessController(access ports.AccessController) Option {
	return func(s *Service) {
		s.access = access
	}
}

func New(
	cfg models.CollectionConfig,
	ledger ports.SupplyLedger,
	allowlist ports.AllowlistStore,
	counts ports.CountStore,
	registry ports.ItemRegistry,
	tre *treasury.Treasury,
	opts ...Option,
) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, fmt.Errorf("supply ledger is required")
	}
	if allowlist == nil {
		return nil, fmt.Errorf("allowlist store is required")
	}
	if counts == nil {
		return nil, fmt.Errorf("count store is required")
	}
	if registry == nil {
		return nil, fmt.Errorf("item registry is required")
	}
	if tre == nil {
		return nil, fmt.Errorf("treasury is required")
	}

	svc := &Service{
		ledger:    ledger,
		allowlist: allowlist,
		counts:    counts,
		registry:  registry,
		treasury:  tre,
		cfg:       cfg,
		tracer:    otel.Tracer("mintgate/mint"),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// MintPublic issues quantity items to the caller under the public sale rules.
func (s *Service) MintPublic(ctx context.Context, caller domain.Address, quantity, payment uint64) ([]domain.TokenID, error) {
	return s.mint(ctx, models.ModePublic, caller, quantity, payment)
}

// MintWhitelisted issues quantity items to the caller under the allow-listed
// sale rules.
func (s *Service) MintWhitelisted(ctx context.Context, caller domain.Address, quantity, payment uint64) ([]domain.TokenID, error) {
	return s.mint(ctx, models.ModeWhitelisted, caller, quantity, payment)
}

// MintAdministrative issues quantity items to the recipient free of charge,
// exempt from the per-address cap but still bound by max supply.
func (s *Service) MintAdministrative(ctx context.Context, recipient domain.Address, quantity uint64) ([]domain.TokenID, error) {
	return s.mint(ctx, models.ModeAdministrative, recipient, quantity, 0)
}

// mint is the shared issuance template: guard, policy, batch reservation,
// per-item registry writes and events, one count increment, accrual.
func (s *Service) mint(ctx context.Context, mode models.Mode, recipient domain.Address, quantity, payment uint64) ([]domain.TokenID, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.exit()

	ctx, span := s.tracer.Start(ctx, "mint."+string(mode))
	defer span.End()

	if recipient.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "recipient address is required")
	}

	cfg := s.Config()

	mintedByCaller, err := s.counts.Get(ctx, recipient)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read minted count")
	}

	whitelisted := false
	if mode == models.ModeWhitelisted {
		whitelisted, err = s.allowlist.IsMember(ctx, recipient)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check allowlist membership")
		}
	}

	if err := policy.Check(policy.Input{
		Mode:           mode,
		Caller:         recipient,
		Quantity:       quantity,
		Payment:        payment,
		Config:         cfg,
		TotalIssued:    s.ledger.TotalIssued(),
		MintedByCaller: mintedByCaller,
		Whitelisted:    whitelisted,
	}); err != nil {
		s.observeRejection(ctx, mode, recipient, quantity, err)
		return nil, err
	}

	// The whole batch is reserved before any per-item side effect, so a cap
	// can never be violated partway through the loop.
	ids, err := s.ledger.ReserveNext(quantity)
	if err != nil {
		s.observeRejection(ctx, mode, recipient, quantity, err)
		return nil, err
	}

	for _, id := range ids {
		uri := tokenURI(cfg.BaseURI, id)
		if err := s.registry.Create(ctx, recipient, id); err != nil {
			// Registry failure mid-batch is fatal: identifiers are already
			// reserved and there is no compensation path in-core.
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "item registry rejected issuance")
		}
		if err := s.registry.SetTokenURI(ctx, id, uri); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "item registry rejected metadata reference")
		}
		s.emit(ctx, events.Event{
			Name:     events.EventTokenMinted,
			Address:  recipient,
			TokenID:  id,
			TokenURI: uri,
		})
	}

	// One increment for the whole batch, after the loop. Per-item events
	// above observe the pre-increment count; that interleaving is part of
	// the observable contract.
	if err := s.counts.Add(ctx, recipient, quantity); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update minted count")
	}

	if mode.Paid() {
		s.treasury.Accrue(payment)
		if s.metrics != nil {
			s.metrics.SetTreasuryBalance(s.treasury.Balance())
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveMint(string(mode), quantity)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "mint admitted",
			"mode", mode,
			"recipient", recipient,
			"quantity", quantity,
			"payment", payment,
			"first_id", ids[0],
			"request_id", request.GetRequestID(ctx),
		)
	}

	return ids, nil
}

// WithdrawAll drains the treasury to the caller, who must be the
// administrator. Shares the reentrancy guard with minting.
func (s *Service) WithdrawAll(ctx context.Context, caller domain.Address) (uint64, error) {
	if err := s.enter(); err != nil {
		return 0, err
	}
	defer s.exit()

	if s.access == nil || !s.access.IsAdministrator(caller) {
		return 0, models.ErrNotAdministrator
	}

	amount, err := s.treasury.WithdrawAll(ctx, caller)
	if err != nil {
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.SetTreasuryBalance(s.treasury.Balance())
		s.metrics.ObserveWithdrawal()
	}
	s.emit(ctx, events.Event{
		Name:    events.EventTreasuryWithdrawn,
		Address: caller,
		Amount:  amount,
	})
	if s.logger != nil {
		s.logger.InfoContext(ctx, "treasury withdrawn",
			"payee", caller,
			"amount", amount,
			"request_id", request.GetRequestID(ctx),
		)
	}

	return amount, nil
}

// Config returns a snapshot of the current collection configuration.
func (s *Service) Config() models.CollectionConfig {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

// RemainingCapacity reports how many identifiers are still unissued.
func (s *Service) RemainingCapacity() uint64 {
	return s.ledger.Remaining()
}

// TotalIssued reports how many identifiers have been issued so far.
func (s *Service) TotalIssued() uint64 {
	return s.ledger.TotalIssued()
}

// MintedCountOf reports how many items have been issued to the address.
func (s *Service) MintedCountOf(ctx context.Context, addr domain.Address) (uint64, error) {
	n, err := s.counts.Get(ctx, addr)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read minted count")
	}
	return n, nil
}

// IsAllowListed reports allow-list membership for the address.
func (s *Service) IsAllowListed(ctx context.Context, addr domain.Address) (bool, error) {
	member, err := s.allowlist.IsMember(ctx, addr)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check allowlist membership")
	}
	return member, nil
}

// TreasuryBalance reports the accumulated, unwithdrawn payment.
func (s *Service) TreasuryBalance() uint64 {
	return s.treasury.Balance()
}

func (s *Service) enter() error {
	if !s.busy.CompareAndSwap(false, true) {
		return models.ErrReentrantCall
	}
	return nil
}

func (s *Service) exit() {
	s.busy.Store(false)
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	event.RequestID = request.GetRequestID(ctx)
	if err := s.publisher.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit event",
			"event", event.Name,
			"error", err,
		)
	}
}

func (s *Service) observeRejection(ctx context.Context, mode models.Mode, recipient domain.Address, quantity uint64, err error) {
	if s.metrics != nil {
		s.metrics.ObserveRejection(rejectionReason(err))
	}
	if s.logger != nil {
		// Admission rejections are routine; anything else deserves a warning.
		level := slog.LevelInfo
		if !models.IsAdmissionError(err) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "mint rejected",
			"mode", mode,
			"recipient", recipient,
			"quantity", quantity,
			"reason", err,
			"request_id", request.GetRequestID(ctx),
		)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, models.ErrMintModeDisabled):
		return "mode_disabled"
	case errors.Is(err, models.ErrNotWhitelisted):
		return "not_whitelisted"
	case errors.Is(err, models.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, models.ErrSupplyExceeded):
		return "supply_exceeded"
	case errors.Is(err, models.ErrPerAddressCapExceeded):
		return "per_address_cap"
	case errors.Is(err, models.ErrInsufficientPayment):
		return "insufficient_payment"
	default:
		return "other"
	}
}

func tokenURI(baseURI string, id domain.TokenID) string {
	return baseURI + id.String() + ".json"
}
