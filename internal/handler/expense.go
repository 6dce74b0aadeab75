package handler

import (
	"net/http"

	"planora/internal/middleware"
	"planora/internal/model"
	"planora/internal/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense CRUD requests.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	var req model.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	expense, err := h.expenses.Create(c.Request.Context(), rec.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// List handles GET /get-expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	expenses, err := h.expenses.List(c.Request.Context(), rec.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "expenses": expenses})
}

// Update handles PUT /expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	var req model.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	expense, err := h.expenses.Update(c.Request.Context(), rec.UserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense updated successfully",
		"expense": expense,
	})
}

// Delete handles DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	if err := h.expenses.Delete(c.Request.Context(), rec.UserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Expense deleted successfully", nil))
}
