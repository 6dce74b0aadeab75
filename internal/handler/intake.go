package handler

import (
	"net/http"

	"planora/internal/middleware"
	"planora/internal/model"
	"planora/internal/service"

	"github.com/gin-gonic/gin"
)

// IntakeHandler handles membership and contact form submissions.
type IntakeHandler struct {
	intake *service.IntakeService
}

func NewIntakeHandler(intake *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

// Membership handles POST /membership. The route is public; when a session
// is present the record is tied to the logged-in user.
func (h *IntakeHandler) Membership(c *gin.Context) {
	var req model.MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	userID := ""
	if rec, ok := middleware.Identity(c); ok {
		userID = rec.UserID
	}

	if _, err := h.intake.SubmitMembership(c.Request.Context(), userID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("Membership information submitted successfully!", nil))
}

// Contact handles POST /contactus
func (h *IntakeHandler) Contact(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	if _, err := h.intake.SubmitContact(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("Contact information submitted successfully!", nil))
}
