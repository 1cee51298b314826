// Package handler provides HTTP handlers for check endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	checkModel "github.com/hong13131/godlife/internal/check/model"
	"github.com/hong13131/godlife/internal/check/service"
	"github.com/hong13131/godlife/internal/middleware"
	"github.com/hong13131/godlife/pkg/civil"
)

// Handler handles HTTP requests for check endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new check handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Record handles POST /checks.
func (h *Handler) Record(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req checkModel.RecordCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goalId and date are required"})
		return
	}
	if req.GoalID == "" || req.Date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goalId and date are required"})
		return
	}

	goalID, err := uuid.Parse(req.GoalID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	value := 1.0
	if req.Value != nil {
		value = *req.Value
	}

	check, err := h.service.Record(c.Request.Context(), caller, goalID, req.Date, value)
	if err != nil {
		if errors.Is(err, checkModel.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		h.logger.Errorw("error recording check", "goal_id", goalID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, check)
}

// Delete handles DELETE /checks?goalId=&date=.
func (h *Handler) Delete(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	goalIDParam := c.Query("goalId")
	dateParam := c.Query("date")
	if goalIDParam == "" || dateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goalId and date query params are required"})
		return
	}

	date, err := civil.ParseDate(dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	goalID, err := uuid.Parse(goalIDParam)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller, goalID, date); err != nil {
		if errors.Is(err, checkModel.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		h.logger.Errorw("error deleting check", "goal_id", goalID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
