package handler

import (
	"net/http"

	"planora/internal/config"
	"planora/internal/middleware"
	"planora/internal/model"
	"planora/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	auth    *service.AuthService
	session config.SessionConfig
}

func NewAuthHandler(auth *service.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{auth: auth, session: session}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	maxAge := h.session.TTLHours * 3600
	c.SetCookie(h.session.CookieName, token, maxAge, "/", "", h.session.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "token": token})
}

// Logout handles POST /logout (session-gated)
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.SessionToken(c)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.CookieSecure, true)

	c.JSON(http.StatusOK, model.NewSuccessResponse("Logged out successfully", nil))
}
