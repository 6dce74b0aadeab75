package handler

import (
	"net/http"

	"planora/internal/middleware"
	"planora/internal/model"
	"planora/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles the project aggregate routes.
type ProjectHandler struct {
	projects *service.ProjectService
}

func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// CreateEventPlan handles POST /event-planning
func (h *ProjectHandler) CreateEventPlan(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	var req model.EventPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	project, err := h.projects.CreateWithEventPlan(c.Request.Context(), rec.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListEvents handles GET /get-events
func (h *ProjectHandler) ListEvents(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	events, err := h.projects.ListEvents(c.Request.Context(), rec.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

// AttachFinancialModel handles POST /financial-model
func (h *ProjectHandler) AttachFinancialModel(c *gin.Context) {
	rec, _ := middleware.Identity(c)

	var req model.FinancialModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	project, err := h.projects.AttachFinancialModel(c.Request.Context(), rec.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// AppendNote handles POST /notes
func (h *ProjectHandler) AppendNote(c *gin.Context) {
	var req model.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	project, err := h.projects.AppendNote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Note added successfully.",
		"project": project,
	})
}

// ListNotes handles GET /notes/:projectId
func (h *ProjectHandler) ListNotes(c *gin.Context) {
	notes, err := h.projects.Notes(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notes fetched successfully.",
		"notes":   notes,
	})
}

// Preview handles GET /preview-event/:projectId
func (h *ProjectHandler) Preview(c *gin.Context) {
	project, err := h.projects.Preview(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event fetched successfully.",
		"project": project,
	})
}
