// Package handler provides HTTP handlers for goal endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	goalModel "github.com/hong13131/godlife/internal/goal/model"
	"github.com/hong13131/godlife/internal/goal/service"
	"github.com/hong13131/godlife/internal/middleware"
)

// Handler handles HTTP requests for goal endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new goal handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /goals?month=YYYY-MM.
func (h *Handler) List(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	goals, err := h.service.List(c.Request.Context(), caller, c.Query("month"))
	if err != nil {
		if errors.Is(err, goalModel.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
			return
		}
		h.logger.Errorw("error listing goals", "user_id", caller.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Create handles POST /goals.
func (h *Handler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req goalModel.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	goal, err := h.service.Create(c.Request.Context(), caller, &req)
	if err != nil {
		switch {
		case errors.Is(err, goalModel.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, targetCount, unit are required"})
		case errors.Is(err, goalModel.ErrInvalidMonth):
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		default:
			h.logger.Errorw("error creating goal", "user_id", caller.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// Update handles PATCH /goals/{id}.
func (h *Handler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Malformed ids are indistinguishable from missing goals to the caller.
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	var req goalModel.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	goal, err := h.service.Update(c.Request.Context(), caller, goalID, &req)
	if err != nil {
		if errors.Is(err, goalModel.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		h.logger.Errorw("error updating goal", "goal_id", goalID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Delete handles DELETE /goals/{id}.
func (h *Handler) Delete(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Delete semantics are a silent no-op for unknown ids.
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller, goalID); err != nil {
		h.logger.Errorw("error deleting goal", "goal_id", goalID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
