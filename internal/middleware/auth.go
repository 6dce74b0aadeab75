// Package middleware provides the HTTP gates: session authentication and
// membership authorization.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"planora/internal/model"
	"planora/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	identityKey = "identity"
	tokenKey    = "sessionToken"
)

// SessionHeader is the fallback token carrier for non-browser clients.
const SessionHeader = "X-Session-Token"

// MembershipChecker answers whether a user holds a membership grant. An error
// means the check itself failed, not that the answer is no.
type MembershipChecker interface {
	HasMembership(ctx context.Context, userID string) (bool, error)
}

// RequireSession resolves the request's session token and attaches the
// authenticated identity to the request context. Authentication failure is
// terminal: no handler runs and no side effect occurs.
func RequireSession(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Access denied", ""))
			return
		}

		rec, err := store.Get(c.Request.Context(), token)
		if errors.Is(err, session.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Access denied", ""))
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, model.NewErrorResponse("Server error, could not verify session.", ""))
			return
		}

		c.Set(identityKey, rec)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// OptionalSession attaches the identity when a valid token is present but
// lets anonymous requests through. Used by intake routes that behave
// differently for logged-in submitters.
func OptionalSession(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token != "" {
			if rec, err := store.Get(c.Request.Context(), token); err == nil {
				c.Set(identityKey, rec)
				c.Set(tokenKey, token)
			}
		}
		c.Next()
	}
}

// RequireMembership composes with RequireSession: the identity must also own
// a membership record. 403 (known identity, missing grant) is distinct from
// 401 (no identity) and from 500 (the check could not be performed).
func RequireMembership(checker MembershipChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := Identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("User not authenticated", ""))
			return
		}

		isMember, err := checker.HasMembership(c.Request.Context(), rec.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, model.NewErrorResponse("Server error, could not verify membership.", ""))
			return
		}
		if !isMember {
			c.AbortWithStatusJSON(http.StatusForbidden, model.NewErrorResponse("User is not a member", ""))
			return
		}
		c.Next()
	}
}

// Identity returns the authenticated identity attached by RequireSession.
func Identity(c *gin.Context) (session.Record, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return session.Record{}, false
	}
	rec, ok := v.(session.Record)
	return rec, ok
}

// SessionToken returns the raw token of the current session, for logout.
func SessionToken(c *gin.Context) string {
	v, exists := c.Get(tokenKey)
	if !exists {
		return ""
	}
	token, _ := v.(string)
	return token
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	return c.GetHeader(SessionHeader)
}
