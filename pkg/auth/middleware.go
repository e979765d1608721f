package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/shopmesh/pkg/utils"
	"go.uber.org/zap"
)

type ContextKey string

const IdentityKey ContextKey = "identity"

// Identity is what a resource service learns about the caller from a verified token.
type Identity struct {
	UserID   int64
	Username string
}

// TokenFromHeader accepts both "<scheme> <token>" and a bare token.
func TokenFromHeader(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Identify verifies the Authorization header value. The returned error keeps the
// failure reason for logs; callers answering clients must not expose it.
func Identify(v Verifier, header string) (*Identity, error) {
	token := TokenFromHeader(header)
	if token == "" {
		return nil, ErrMissingToken
	}
	claims, err := v.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	return &Identity{UserID: userID, Username: claims.Username}, nil
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(Identity)
	return identity, ok
}

// Middleware rejects every unverifiable request with the same 401 response.
func Middleware(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := Identify(v, r.Header.Get("Authorization"))
			if err != nil {
				zap.L().Debug("request unauthenticated", zap.String("path", r.URL.Path), zap.Error(err))
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *identity)))
		})
	}
}
