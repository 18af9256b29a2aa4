package middleware

import (
	"context"
	"net/http"
	"strings"

	"ailiteracy/internal/service"
)

type contextKey string

const clientIDKey contextKey = "clientId"

// AccessMiddleware gates the API behind the shared-password access token.
// When no password is configured the middleware passes everything through.
type AccessMiddleware struct {
	authSvc *service.AuthService
}

// NewAccessMiddleware creates a new access middleware
func NewAccessMiddleware(authSvc *service.AuthService) *AccessMiddleware {
	return &AccessMiddleware{authSvc: authSvc}
}

// RequireAccess validates the bearer token issued by the verify endpoint
func (m *AccessMiddleware) RequireAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.authSvc.Enabled() || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateAccessToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), clientIDKey, claims.ClientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientID extracts the verified client id from context
func GetClientID(ctx context.Context) string {
	if v := ctx.Value(clientIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
