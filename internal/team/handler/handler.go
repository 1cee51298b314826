// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hong13131/godlife/internal/middleware"
	teamModel "github.com/hong13131/godlife/internal/team/model"
	"github.com/hong13131/godlife/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /team/create.
func (h *Handler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	team, err := h.service.Create(c.Request.Context(), caller, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrInvalidTeamName):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		case errors.Is(err, teamModel.ErrAlreadyInTeam):
			c.JSON(http.StatusConflict, gin.H{"error": "Already in a team"})
		default:
			h.logger.Errorw("error creating team", "user_id", caller.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// RotateInvite handles POST /team/invite.
func (h *Handler) RotateInvite(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	invite, err := h.service.RotateInvite(c.Request.Context(), caller)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrNotAdmin):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admin can create invite"})
		case errors.Is(err, teamModel.ErrNoTeam):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No team assigned"})
		case errors.Is(err, teamModel.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		default:
			h.logger.Errorw("error rotating invite", "user_id", caller.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, invite)
}

// Join handles POST /team/join.
func (h *Handler) Join(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req teamModel.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.InviteCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inviteCode is required"})
		return
	}

	resp, err := h.service.Join(c.Request.Context(), caller, req.InviteCode)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid invite code"})
			return
		}
		h.logger.Errorw("error joining team", "user_id", caller.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Leave handles POST /team/leave.
func (h *Handler) Leave(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	if err := h.service.Leave(c.Request.Context(), caller); err != nil {
		if errors.Is(err, teamModel.ErrNoTeam) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No team joined"})
			return
		}
		h.logger.Errorw("error leaving team", "user_id", caller.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Rename handles PATCH /team/update.
func (h *Handler) Rename(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req teamModel.RenameTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	team, err := h.service.Rename(c.Request.Context(), caller, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrInvalidTeamName):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		case errors.Is(err, teamModel.ErrNoTeam):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No team joined"})
		case errors.Is(err, teamModel.ErrNotAdmin):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admin can rename team"})
		default:
			h.logger.Errorw("error renaming team", "user_id", caller.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}
