// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hong13131/godlife/internal/team/handler"
	"github.com/hong13131/godlife/internal/team/repository"
	"github.com/hong13131/godlife/internal/team/service"
	userRepository "github.com/hong13131/godlife/internal/user/repository"
)

// RegisterRoutes registers team module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	userRepo := userRepository.New(db, logger)
	svc := service.New(repo, userRepo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/team/create", h.Create)
	r.POST("/team/invite", h.RotateInvite)
	r.POST("/team/join", h.Join)
	r.POST("/team/leave", h.Leave)
	r.PATCH("/team/update", h.Rename)
}
