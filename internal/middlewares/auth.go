package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/jwt"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type claimsKey struct{}

// Principal is the authenticated caller of a request.
type Principal struct {
	AccountID uuid.UUID
	Role      models.Role
}

// WithPrincipal stores the caller in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, claimsKey{}, p)
}

// PrincipalFromContext returns the caller stored by AuthMiddleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(claimsKey{}).(Principal)
	return p, ok
}

// AuthMiddleware returns a middleware that validates the session token and
// stores the caller in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			ctx = WithPrincipal(ctx, Principal{AccountID: claims.UserID, Role: models.Role(claims.Role)})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects callers whose role is not one of roles. It must run after AuthMiddleware.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			for _, role := range roles {
				if p.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			logger.Log.Warnw("forbidden", "account_id", p.AccountID, "role", p.Role, "uri", r.RequestURI)
			writeError(w, http.StatusForbidden, "Forbidden")
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
