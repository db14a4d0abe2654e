package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"mintgate/internal/mint/access"
	"mintgate/internal/mint/allowlist"
	"mintgate/internal/mint/counts"
	"mintgate/internal/mint/ledger"
	"mintgate/internal/mint/models"
	"mintgate/internal/mint/registry"
	"mintgate/internal/mint/service"
	"mintgate/internal/mint/treasury"
	"mintgate/pkg/domain"
	adminmw "mintgate/pkg/platform/middleware/admin"
	"mintgate/pkg/platform/middleware/auth"
	request "mintgate/pkg/platform/middleware/request"
)

const (
	adminToken = "secret-token"
	signingKey = "test-signing-key"

	walletAddr = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	adminAddr  = "0x1111111111111111111111111111111111111111"
)

// sinkTransferrer accepts every transfer. Handler tests exercise the HTTP
// contract, not the funds backend.
type sinkTransferrer struct{}

func (sinkTransferrer) Transfer(context.Context, domain.Address, uint64) error { return nil }

func newMintRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := models.CollectionConfig{
		MaxSupply:            10,
		MintPrice:            1,
		MaxMintPerAddress:    3,
		PublicMintEnabled:    true,
		WhitelistMintEnabled: true,
		BaseURI:              "ipfs://collection/",
	}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	svc, err := service.New(cfg,
		ledger.New(cfg.MaxSupply),
		allowlist.NewInMemoryStore(),
		counts.NewInMemoryStore(),
		registry.NewInMemory(),
		treasury.New(sinkTransferrer{}),
		service.WithLogger(logger),
		service.WithAccessController(access.NewStaticAdmin(domain.Address(adminAddr))),
	)
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}

	h := New(svc, domain.Address(adminAddr), logger)
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireWallet(signingKey, logger))
		h.Register(r)
	})
	h.RegisterQueries(r)
	r.Group(func(r chi.Router) {
		r.Use(adminmw.RequireAdminToken(adminToken, logger))
		h.RegisterAdmin(r)
	})
	return r
}

func walletToken(t *testing.T, addr string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.WalletClaims{Address: addr})
	signed, err := token.SignedString([]byte(signingKey))
	if err != nil {
		t.Fatalf("failed to sign wallet token: %v", err)
	}
	return signed
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func walletHeader(t *testing.T, addr string) http.Header {
	t.Helper()
	return http.Header{"Authorization": []string{"Bearer " + walletToken(t, addr)}}
}

func adminHeader() http.Header {
	return http.Header{"X-Admin-Token": []string{adminToken}}
}

func TestMintRequiresWalletToken(t *testing.T) {
	router := newMintRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/mint/public", map[string]uint64{"quantity": 1, "payment": 1}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without bearer token, got %d", rec.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newMintRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/admin/mint", map[string]any{"recipient": walletAddr, "quantity": 1}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without admin token, got %d", rec.Code)
	}
}

func TestPublicMintViaHandler(t *testing.T) {
	router := newMintRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/mint/public",
		map[string]uint64{"quantity": 2, "payment": 2}, walletHeader(t, walletAddr))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 minting, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TokenIDs []uint64 `json:"token_ids"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode mint response: %v", err)
	}
	if len(resp.TokenIDs) != 2 || resp.TokenIDs[0] != 1 || resp.TokenIDs[1] != 2 {
		t.Fatalf("expected token_ids [1 2], got %v", resp.TokenIDs)
	}

	supplyRec := doJSON(t, router, http.MethodGet, "/supply", nil, nil)
	if supplyRec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching supply, got %d", supplyRec.Code)
	}
	var supply struct {
		TotalIssued uint64 `json:"total_issued"`
		Remaining   uint64 `json:"remaining"`
	}
	if err := json.NewDecoder(supplyRec.Body).Decode(&supply); err != nil {
		t.Fatalf("failed to decode supply response: %v", err)
	}
	if supply.TotalIssued != 2 || supply.Remaining != 8 {
		t.Fatalf("expected issued 2 remaining 8, got %+v", supply)
	}

	countRec := doJSON(t, router, http.MethodGet, "/minted/"+walletAddr, nil, nil)
	if countRec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching minted count, got %d", countRec.Code)
	}
	var count struct {
		Minted uint64 `json:"minted"`
	}
	if err := json.NewDecoder(countRec.Body).Decode(&count); err != nil {
		t.Fatalf("failed to decode minted count: %v", err)
	}
	if count.Minted != 2 {
		t.Fatalf("expected minted 2, got %d", count.Minted)
	}
}

func TestMintRejectionStatusCodes(t *testing.T) {
	router := newMintRouter(t)

	// Insufficient payment maps to 400.
	rec := doJSON(t, router, http.MethodPost, "/mint/public",
		map[string]uint64{"quantity": 2, "payment": 1}, walletHeader(t, walletAddr))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on short payment, got %d", rec.Code)
	}

	// Unlisted whitelist mint maps to 403.
	rec = doJSON(t, router, http.MethodPost, "/mint/whitelist",
		map[string]uint64{"quantity": 1, "payment": 1}, walletHeader(t, walletAddr))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unlisted caller, got %d", rec.Code)
	}

	// Disabling the public sale maps later mints to 403.
	toggleRec := doJSON(t, router, http.MethodPost, "/admin/toggle/public", nil, adminHeader())
	if toggleRec.Code != http.StatusOK {
		t.Fatalf("expected 200 toggling, got %d", toggleRec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/mint/public",
		map[string]uint64{"quantity": 1, "payment": 1}, walletHeader(t, walletAddr))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 after disabling public sale, got %d", rec.Code)
	}
}

func TestAllowlistAndWhitelistMintViaHandlers(t *testing.T) {
	router := newMintRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/admin/allowlist",
		map[string]any{"addresses": []string{walletAddr}, "enabled": true}, adminHeader())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 updating allowlist, got %d: %s", rec.Code, rec.Body.String())
	}

	statusRec := doJSON(t, router, http.MethodGet, "/allowlist/"+walletAddr, nil, nil)
	var status struct {
		Whitelisted bool `json:"whitelisted"`
	}
	if err := json.NewDecoder(statusRec.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode allowlist status: %v", err)
	}
	if !status.Whitelisted {
		t.Fatalf("expected address to be whitelisted")
	}

	mintRec := doJSON(t, router, http.MethodPost, "/mint/whitelist",
		map[string]uint64{"quantity": 1, "payment": 1}, walletHeader(t, walletAddr))
	if mintRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for whitelisted mint, got %d: %s", mintRec.Code, mintRec.Body.String())
	}
}

func TestAdminMintViaHandler(t *testing.T) {
	router := newMintRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/admin/mint",
		map[string]any{"recipient": walletAddr, "quantity": 5}, adminHeader())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin mint, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TokenIDs []uint64 `json:"token_ids"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode admin mint response: %v", err)
	}
	if len(resp.TokenIDs) != 5 {
		t.Fatalf("expected 5 token ids, got %d", len(resp.TokenIDs))
	}

	badRec := doJSON(t, router, http.MethodPost, "/admin/mint",
		map[string]any{"recipient": "not-an-address", "quantity": 1}, adminHeader())
	if badRec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed recipient, got %d", badRec.Code)
	}
}

func TestPriceAndBaseURIUpdatesViaHandlers(t *testing.T) {
	router := newMintRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/admin/price", map[string]uint64{"price": 3}, adminHeader())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 setting price, got %d", rec.Code)
	}

	// The old price no longer admits.
	mintRec := doJSON(t, router, http.MethodPost, "/mint/public",
		map[string]uint64{"quantity": 1, "payment": 1}, walletHeader(t, walletAddr))
	if mintRec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 after price raise, got %d", mintRec.Code)
	}

	rec = doJSON(t, router, http.MethodPut, "/admin/base-uri", map[string]string{"base_uri": "ipfs://moved/"}, adminHeader())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 setting base uri, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPut, "/admin/base-uri", map[string]string{"base_uri": ""}, adminHeader())
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty base uri, got %d", rec.Code)
	}
}

func TestWithdrawViaHandler(t *testing.T) {
	router := newMintRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/admin/withdraw", nil, adminHeader())
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 withdrawing from empty treasury, got %d", rec.Code)
	}

	mintRec := doJSON(t, router, http.MethodPost, "/mint/public",
		map[string]uint64{"quantity": 2, "payment": 2}, walletHeader(t, walletAddr))
	if mintRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 minting, got %d", mintRec.Code)
	}

	treasuryRec := doJSON(t, router, http.MethodGet, "/admin/treasury", nil, adminHeader())
	var balance struct {
		Balance uint64 `json:"balance"`
	}
	if err := json.NewDecoder(treasuryRec.Body).Decode(&balance); err != nil {
		t.Fatalf("failed to decode treasury balance: %v", err)
	}
	if balance.Balance != 2 {
		t.Fatalf("expected balance 2, got %d", balance.Balance)
	}

	rec = doJSON(t, router, http.MethodPost, "/admin/withdraw", nil, adminHeader())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 withdrawing, got %d: %s", rec.Code, rec.Body.String())
	}
	var withdrawal struct {
		Amount uint64 `json:"amount"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&withdrawal); err != nil {
		t.Fatalf("failed to decode withdrawal response: %v", err)
	}
	if withdrawal.Amount != 2 {
		t.Fatalf("expected withdrawal amount 2, got %d", withdrawal.Amount)
	}

	rec = doJSON(t, router, http.MethodGet, "/admin/treasury", nil, adminHeader())
	if err := json.NewDecoder(rec.Body).Decode(&balance); err != nil {
		t.Fatalf("failed to decode treasury balance: %v", err)
	}
	if balance.Balance != 0 {
		t.Fatalf("expected balance 0 after withdrawal, got %d", balance.Balance)
	}
}
