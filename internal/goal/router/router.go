// Package router provides goal module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hong13131/godlife/internal/goal/handler"
	"github.com/hong13131/godlife/internal/goal/repository"
	"github.com/hong13131/godlife/internal/goal/service"
)

// RegisterRoutes registers goal module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/goals", h.List)
	r.POST("/goals", h.Create)
	r.PATCH("/goals/:id", h.Update)
	r.DELETE("/goals/:id", h.Delete)
}
