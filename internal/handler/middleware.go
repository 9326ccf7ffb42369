package handler

import (
	"context"
	"net/http"

	"github.com/msomdec/complaint-tracker/internal/domain"
	"github.com/msomdec/complaint-tracker/internal/session"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireSession is middleware that protects routes requiring a signed-in
// user. It reads the auth_token cookie, validates the JWT, resolves the user
// from the directory, and injects it into the request context. Returns 401
// for unauthenticated requests.
func RequireSession(manager *session.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, manager)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalSession is middleware that attempts to authenticate but does not
// block unauthenticated requests. If a valid token is present, the user is
// injected into context; otherwise the request proceeds without a user.
func OptionalSession(manager *session.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, manager)
		if err == nil && user != nil {
			ctx := context.WithValue(r.Context(), userContextKey, user)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func authenticateRequest(r *http.Request, manager *session.Manager) (*domain.User, error) {
	cookie, err := r.Cookie("auth_token")
	if err != nil {
		return nil, err
	}

	username, err := manager.ValidateToken(cookie.Value)
	if err != nil {
		return nil, err
	}

	user, ok := manager.UserByUsername(username)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
