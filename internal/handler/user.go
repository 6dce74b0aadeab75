package handler

import (
	"net/http"

	"planora/internal/middleware"
	"planora/internal/model"
	"planora/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile and budget requests.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /me
func (h *UserHandler) Me(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	user, err := h.users.Me(c.Request.Context(), rec.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GetBudget handles GET /budget
func (h *UserHandler) GetBudget(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	budget, err := h.users.GetBudget(c.Request.Context(), rec.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "budget": budget})
}

// UpdateBudget handles PUT /budget
func (h *UserHandler) UpdateBudget(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	var req model.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	if err := h.users.SetBudget(c.Request.Context(), rec.UserID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Budget updated successfully",
		"user": gin.H{
			"username": rec.Username,
			"email":    rec.Email,
			"budget":   *req.Budget,
		},
	})
}
