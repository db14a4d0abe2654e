package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"mintgate/pkg/domain"
	request "mintgate/pkg/platform/middleware/request"
)

// WalletClaims are the claims minting routes require: the caller's wallet
// address, carried in the "addr" claim of a bearer token issued by the
// surrounding platform.
type WalletClaims struct {
	Address string `json:"addr"`
	jwt.RegisteredClaims
}

type contextKeyCaller struct{}

// GetCaller retrieves the authenticated wallet address from the context.
// Returns the zero Address when the middleware did not run.
func GetCaller(ctx context.Context) domain.Address {
	if addr, ok := ctx.Value(contextKeyCaller{}).(domain.Address); ok {
		return addr
	}
	return ""
}

// WithCaller injects a caller address into a context. Useful for service
// unit tests that don't run the full HTTP middleware chain.
func WithCaller(ctx context.Context, addr domain.Address) context.Context {
	return context.WithValue(ctx, contextKeyCaller{}, addr)
}

// RequireWallet validates the bearer token and places the caller's wallet
// address on the context. Minting routes refuse anonymous callers; identity
// is what the per-address cap and the allow-list key on.
func RequireWallet(signingKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := bearerToken(r)
			if raw == "" {
				unauthorized(w, "bearer token required")
				return
			}

			claims := &WalletClaims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(signingKey), nil
			})
			if err != nil {
				logger.WarnContext(ctx, "wallet token rejected",
					"request_id", request.GetRequestID(ctx),
					"error", err,
				)
				unauthorized(w, "invalid bearer token")
				return
			}

			addr, err := domain.ParseAddress(claims.Address)
			if err != nil {
				logger.WarnContext(ctx, "wallet token missing valid addr claim",
					"request_id", request.GetRequestID(ctx),
				)
				unauthorized(w, "token carries no wallet address")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(ctx, addr)))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
