package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corkboard/corkboard/internal/models"
	"github.com/corkboard/corkboard/internal/sessions"
	"github.com/corkboard/corkboard/internal/tokens"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "corkboard_session"

const identityKey = "identity"

// SessionValidator is the minimal session-store surface the middleware
// depends on.
type SessionValidator interface {
	Validate(ctx context.Context, id string) (*sessions.Session, error)
}

// UserLoader loads a user by its stable identifier.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Identity resolves the request's identity exactly once and stores it in the
// gin context; downstream handlers see a stable value for the rest of the
// request. Resolution never fails: a missing cookie, a bad signature, an
// expired session and a store error all yield Anonymous.
func Identity(secret string, sv SessionValidator, ul UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, resolve(c, secret, sv, ul))
		c.Next()
	}
}

func resolve(c *gin.Context, secret string, sv SessionValidator, ul UserLoader) models.Identity {
	raw, err := c.Cookie(SessionCookie)
	if err != nil || raw == "" {
		return models.Anonymous{}
	}
	sid, err := tokens.Parse(secret, raw)
	if err != nil {
		return models.Anonymous{}
	}
	sess, err := sv.Validate(c.Request.Context(), sid)
	if err != nil || sess == nil {
		return models.Anonymous{}
	}
	u, err := ul.GetByID(c.Request.Context(), sess.UserID)
	if err != nil || u == nil {
		return models.Anonymous{}
	}
	return u
}

// CurrentIdentity returns the identity resolved for this request.
func CurrentIdentity(c *gin.Context) models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(models.Identity); ok {
			return id
		}
	}
	return models.Anonymous{}
}

// CurrentUser returns the authenticated user, or nil when anonymous.
func CurrentUser(c *gin.Context) *models.User {
	if u, ok := CurrentIdentity(c).(*models.User); ok {
		return u
	}
	return nil
}

// RequireAuth aborts anonymous requests with a redirect to the login form.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
