package middleware

import (
	"context"
	"errors"
	"net/http"

	"courseapi/internal/model"
	"courseapi/internal/service"

	"github.com/rs/zerolog"
)

// Injected key type to avoid context collisions
type contextKey string

const UserContextKey = contextKey("user")

// Authenticator resolves Basic credentials to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

// UserFromContext returns the user attached by AuthMiddleware.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(UserContextKey).(*model.User)
	return u, ok && u != nil
}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u *model.User) context.Context {
	return context.WithValue(ctx, UserContextKey, u)
}

// AuthMiddleware admits requests carrying valid Basic credentials
// (emailAddress:password). Every rejection gets the same 401 body; the reason
// is only logged.
func AuthMiddleware(auth Authenticator, realm string, errs *ErrorWriter, logger zerolog.Logger) func(http.Handler) http.Handler {
	challenge := `Basic realm="` + realm + `", charset="UTF-8"`
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deny := func(reason string, ev *zerolog.Event) {
				ev.Msg(reason)
				w.Header().Set("WWW-Authenticate", challenge)
				WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Access Denied"})
			}

			email, password, ok := r.BasicAuth()
			if !ok {
				deny("Auth header not found", logger.Warn().Str("path", r.URL.Path))
				return
			}

			user, err := auth.Authenticate(r.Context(), email, password)
			switch {
			case errors.Is(err, service.ErrUserNotFound):
				deny("User not found for email", logger.Warn().Str("email", email))
				return
			case errors.Is(err, service.ErrInvalidPassword):
				deny("Authentication failure for user", logger.Warn().Str("email", email))
				return
			case err != nil:
				errs.InternalError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
