// Package handler provides HTTP handlers for dashboard endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dashboardModel "github.com/hong13131/godlife/internal/dashboard/model"
	"github.com/hong13131/godlife/internal/dashboard/service"
	"github.com/hong13131/godlife/internal/middleware"
)

// Handler handles HTTP requests for dashboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new dashboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// TeamSummary handles GET /dashboard/team.
func (h *Handler) TeamSummary(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	summary, err := h.service.TeamSummary(c.Request.Context(), caller)
	if err != nil {
		switch {
		case errors.Is(err, dashboardModel.ErrNoTeam):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No team joined"})
		case errors.Is(err, dashboardModel.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		default:
			h.logger.Errorw("error building team summary", "user_id", caller.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}
