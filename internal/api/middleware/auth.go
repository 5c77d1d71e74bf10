package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/internal/service"
	"github.com/slumberlog/sleep-diary/pkg/problem"
)

type contextKey string

const userContextKey contextKey = "authenticated-user"

// Auth resolves the Bearer token on each request to its user and stores the
// user in the request context. Requests without a valid session get 401.
func Auth(authService service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				problem.Unauthorized("Missing bearer token").Write(w)
				return
			}

			user, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrSessionExpired) {
					problem.Unauthorized("Session is invalid or expired").Write(w)
					return
				}
				problem.InternalError("Failed to authenticate request").Write(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user stored by Auth, or nil when
// the request did not pass through it.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// ContextWithUser is a test helper for building contexts that look like they
// passed through Auth.
func ContextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
