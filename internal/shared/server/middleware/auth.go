package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"resume-hub/internal/shared/apperr"
	"resume-hub/internal/shared/auth"
	"resume-hub/internal/shared/identity"
	"resume-hub/internal/shared/metrics"
	"resume-hub/internal/shared/server/respond"
	"resume-hub/internal/shared/server/session"
)

const userIDKey = "userId"

// TokenValidator turns a bearer token into the user id it was issued for.
type TokenValidator interface {
	Validate(raw string) (int64, error)
}

// UserResolver loads the live user behind a token. It returns
// identity.ErrUnknownUser when the user no longer exists.
type UserResolver interface {
	ResolveUser(ctx context.Context, userID int64) (identity.User, error)
}

// AuthDeps wires the auth gate.
type AuthDeps struct {
	Tokens  TokenValidator
	Users   UserResolver
	Carrier session.Carrier
	Metrics *metrics.Metrics
}

// Auth guards protected routes. It reads the session cookie, validates the
// bearer token, resolves the live user and attaches it to the request context.
// Every rejection clears the cookie and stops the chain.
func Auth(deps AuthDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authenticate(c, deps)
		if err != nil {
			deps.Carrier.Clear(c)
			if ae, ok := apperr.As(err); ok {
				deps.Metrics.IncAuthRejection(string(ae.Code))
			}
			respond.Fail(c, err)
			return
		}

		c.Set(userIDKey, user.ID)
		c.Request = c.Request.WithContext(identity.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

func authenticate(c *gin.Context, deps AuthDeps) (identity.User, error) {
	value := deps.Carrier.Read(c)
	if value == "" {
		return identity.User{}, apperr.New(apperr.CodeNoSession)
	}

	scheme, token := session.Split(value)
	if scheme != session.Scheme {
		return identity.User{}, apperr.New(apperr.CodeUnsupportedScheme)
	}

	userID, err := deps.Tokens.Validate(token)
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return identity.User{}, apperr.New(apperr.CodeTokenExpired)
	case err != nil:
		return identity.User{}, apperr.New(apperr.CodeTokenMalformed)
	}

	user, err := deps.Users.ResolveUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, identity.ErrUnknownUser) {
			return identity.User{}, apperr.New(apperr.CodeStaleSession)
		}
		return identity.User{}, err
	}
	return user, nil
}

// UserFromContext returns the caller attached by Auth.
func UserFromContext(c *gin.Context) (identity.User, bool) {
	if c == nil || c.Request == nil {
		return identity.User{}, false
	}
	return identity.FromContext(c.Request.Context())
}
