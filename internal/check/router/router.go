// Package router provides check module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hong13131/godlife/internal/check/handler"
	"github.com/hong13131/godlife/internal/check/repository"
	"github.com/hong13131/godlife/internal/check/service"
)

// RegisterRoutes registers check module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/checks", h.Record)
	r.DELETE("/checks", h.Delete)
}
