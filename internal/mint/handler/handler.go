// Package handler wires the minting controller to the HTTP surface.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"mintgate/internal/mint/models"
	"mintgate/pkg/domain"
	dErrors "mintgate/pkg/domain-errors"
	"mintgate/pkg/platform/httputil"
	"mintgate/pkg/platform/middleware/auth"
	request "mintgate/pkg/platform/middleware/request"
)

// Service defines the controller operations the HTTP layer depends on.
type Service interface {
	MintPublic(ctx context.Context, caller domain.Address, quantity, payment uint64) ([]domain.TokenID, error)
	MintWhitelisted(ctx context.Context, caller domain.Address, quantity, payment uint64) ([]domain.TokenID, error)
	MintAdministrative(ctx context.Context, recipient domain.Address, quantity uint64) ([]domain.TokenID, error)
	WithdrawAll(ctx context.Context, caller domain.Address) (uint64, error)

	TogglePublicMint(ctx context.Context) (bool, error)
	ToggleWhitelistMint(ctx context.Context) (bool, error)
	SetMintPrice(ctx context.Context, price uint64) error
	SetBaseURI(ctx context.Context, baseURI string) error
	SetAllowlist(ctx context.Context, addrs []domain.Address, enabled bool) error

	Config() models.CollectionConfig
	RemainingCapacity() uint64
	TotalIssued() uint64
	MintedCountOf(ctx context.Context, addr domain.Address) (uint64, error)
	IsAllowListed(ctx context.Context, addr domain.Address) (bool, error)
	TreasuryBalance() uint64
}

// Handler exposes the minting controller over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger

	// admin is the payee for treasury withdrawals triggered over the
	// token-gated admin surface.
	admin domain.Address
}

func New(service Service, admin domain.Address, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		admin:   admin,
	}
}

// Register mounts the public endpoints. Mint routes must sit behind the
// wallet middleware; the query routes are anonymous.
func (h *Handler) Register(r chi.Router) {
	r.Post("/mint/public", h.HandleMintPublic)
	r.Post("/mint/whitelist", h.HandleMintWhitelisted)
}

// RegisterQueries mounts the read-only endpoints.
func (h *Handler) RegisterQueries(r chi.Router) {
	r.Get("/supply", h.HandleSupply)
	r.Get("/minted/{address}", h.HandleMintedCount)
	r.Get("/allowlist/{address}", h.HandleAllowlistStatus)
}

// RegisterAdmin mounts the administrator endpoints. The caller is expected to
// wrap these with the admin token middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/mint", h.HandleMintAdministrative)
	r.Post("/admin/allowlist", h.HandleSetAllowlist)
	r.Post("/admin/toggle/public", h.HandleTogglePublic)
	r.Post("/admin/toggle/whitelist", h.HandleToggleWhitelist)
	r.Put("/admin/price", h.HandleSetPrice)
	r.Put("/admin/base-uri", h.HandleSetBaseURI)
	r.Post("/admin/withdraw", h.HandleWithdraw)
	r.Get("/admin/treasury", h.HandleTreasury)
}

type mintResponse struct {
	TokenIDs []domain.TokenID `json:"token_ids"`
}

// HandleMintPublic handles POST /mint/public requests.
func (h *Handler) HandleMintPublic(w http.ResponseWriter, r *http.Request) {
	h.handleMint(w, r, "public", h.service.MintPublic)
}

// HandleMintWhitelisted handles POST /mint/whitelist requests.
func (h *Handler) HandleMintWhitelisted(w http.ResponseWriter, r *http.Request) {
	h.handleMint(w, r, "whitelist", h.service.MintWhitelisted)
}

func (h *Handler) handleMint(
	w http.ResponseWriter,
	r *http.Request,
	mode string,
	mint func(ctx context.Context, caller domain.Address, quantity, payment uint64) ([]domain.TokenID, error),
) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)
	start := time.Now()

	caller := auth.GetCaller(ctx)
	if caller.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	req, ok := httputil.Decode[models.MintRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	ids, err := mint(ctx, caller, req.Quantity, req.Payment)
	if err != nil {
		h.logger.InfoContext(ctx, "mint request rejected",
			"request_id", requestID,
			"mode", mode,
			"caller", caller,
			"error", err,
		)
		httputil.WriteError(w, mapServiceError(err))
		return
	}

	h.logger.InfoContext(ctx, "mint request served",
		"request_id", requestID,
		"mode", mode,
		"caller", caller,
		"quantity", req.Quantity,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, mintResponse{TokenIDs: ids})
}

// HandleMintAdministrative handles POST /admin/mint requests.
func (h *Handler) HandleMintAdministrative(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.Decode[models.AdminMintRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}
	req.Normalize()
	recipient, err := req.Validate()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ids, err := h.service.MintAdministrative(ctx, recipient, req.Quantity)
	if err != nil {
		httputil.WriteError(w, mapServiceError(err))
		return
	}

	h.logger.InfoContext(ctx, "administrative mint served",
		"request_id", requestID,
		"recipient", recipient,
		"quantity", req.Quantity,
	)
	httputil.WriteJSON(w, http.StatusCreated, mintResponse{TokenIDs: ids})
}

type supplyResponse struct {
	MaxSupply   uint64 `json:"max_supply"`
	TotalIssued uint64 `json:"total_issued"`
	Remaining   uint64 `json:"remaining"`
}

// HandleSupply handles GET /supply requests.
func (h *Handler) HandleSupply(w http.ResponseWriter, r *http.Request) {
	cfg := h.service.Config()
	httputil.WriteJSON(w, http.StatusOK, supplyResponse{
		MaxSupply:   cfg.MaxSupply,
		TotalIssued: h.service.TotalIssued(),
		Remaining:   h.service.RemainingCapacity(),
	})
}

// HandleMintedCount handles GET /minted/{address} requests.
func (h *Handler) HandleMintedCount(w http.ResponseWriter, r *http.Request) {
	addr, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	count, err := h.service.MintedCountOf(r.Context(), addr)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"address": addr,
		"minted":  count,
	})
}

// HandleAllowlistStatus handles GET /allowlist/{address} requests.
func (h *Handler) HandleAllowlistStatus(w http.ResponseWriter, r *http.Request) {
	addr, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	member, err := h.service.IsAllowListed(r.Context(), addr)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"address":     addr,
		"whitelisted": member,
	})
}

// HandleSetAllowlist handles POST /admin/allowlist requests.
func (h *Handler) HandleSetAllowlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.Decode[models.SetAllowlistRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}
	req.Normalize()
	addrs, err := req.Validate()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.SetAllowlist(ctx, addrs, req.Enabled); err != nil {
		httputil.WriteError(w, mapServiceError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"updated": len(addrs),
		"enabled": req.Enabled,
	})
}

// HandleTogglePublic handles POST /admin/toggle/public requests.
func (h *Handler) HandleTogglePublic(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.service.TogglePublicMint(r.Context())
	if err != nil {
		httputil.WriteError(w, mapServiceError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"public_mint_enabled": enabled})
}

// HandleToggleWhitelist handles POST /admin/toggle/whitelist requests.
func (h *Handler) HandleToggleWhitelist(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.service.ToggleWhitelistMint(r.Context())
	if err != nil {
		httputil.WriteError(w, mapServiceError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"whitelist_mint_enabled": enabled})
}

// HandleSetPrice handles PUT /admin/price requests.
func (h *Handler) HandleSetPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[models.SetPriceRequest](w, r, h.logger, request.GetRequestID(ctx))
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.SetMintPrice(ctx, req.Price); err != nil {
		httputil.WriteError(w, mapServiceError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]uint64{"price": req.Price})
}

// HandleSetBaseURI handles PUT /admin/base-uri requests.
func (h *Handler) HandleSetBaseURI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[models.SetBaseURIRequest](w, r, h.logger, request.GetRequestID(ctx))
	if !ok {
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.SetBaseURI(ctx, req.BaseURI); err != nil {
		httputil.WriteError(w, mapServiceError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"base_uri": req.BaseURI})
}

// HandleWithdraw handles POST /admin/withdraw requests. The payee is the
// configured administrator address.
func (h *Handler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	amount, err := h.service.WithdrawAll(ctx, h.admin)
	if err != nil {
		httputil.WriteError(w, mapServiceError(err))
		return
	}

	h.logger.InfoContext(ctx, "treasury withdrawal served",
		"request_id", request.GetRequestID(ctx),
		"amount", amount,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]uint64{"amount": amount})
}

// HandleTreasury handles GET /admin/treasury requests.
func (h *Handler) HandleTreasury(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]uint64{"balance": h.service.TreasuryBalance()})
}

// mapServiceError translates controller sentinels into coded errors so the
// envelope carries a stable machine-readable reason.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, models.ErrMintModeDisabled):
		return dErrors.New(dErrors.CodeForbidden, "minting is disabled for this mode")
	case errors.Is(err, models.ErrNotWhitelisted):
		return dErrors.New(dErrors.CodeForbidden, "address is not allow-listed")
	case errors.Is(err, models.ErrInvalidQuantity):
		return dErrors.New(dErrors.CodeValidation, "quantity must be greater than zero")
	case errors.Is(err, models.ErrSupplyExceeded):
		return dErrors.New(dErrors.CodeConflict, "requested quantity exceeds remaining supply")
	case errors.Is(err, models.ErrPerAddressCapExceeded):
		return dErrors.New(dErrors.CodeForbidden, "per-address mint limit reached")
	case errors.Is(err, models.ErrInsufficientPayment):
		return dErrors.New(dErrors.CodeBadRequest, "payment does not cover the mint price")
	case errors.Is(err, models.ErrReentrantCall):
		return dErrors.New(dErrors.CodeConflict, "another operation is in flight")
	case errors.Is(err, models.ErrNothingToWithdraw):
		return dErrors.New(dErrors.CodeConflict, "treasury is empty")
	case errors.Is(err, models.ErrNotAdministrator):
		return dErrors.New(dErrors.CodeForbidden, "caller is not the administrator")
	default:
		return err
	}
}
