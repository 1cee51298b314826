// Package router provides dashboard module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hong13131/godlife/internal/dashboard/handler"
	"github.com/hong13131/godlife/internal/dashboard/repository"
	"github.com/hong13131/godlife/internal/dashboard/service"
)

// RegisterRoutes registers dashboard module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/dashboard/team", h.TeamSummary)
}
