// Package server assembles the HTTP router from all modules.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hong13131/godlife/internal/auth"
	checkRouter "github.com/hong13131/godlife/internal/check/router"
	dashboardRouter "github.com/hong13131/godlife/internal/dashboard/router"
	goalRouter "github.com/hong13131/godlife/internal/goal/router"
	"github.com/hong13131/godlife/internal/health"
	"github.com/hong13131/godlife/internal/middleware"
	teamRouter "github.com/hong13131/godlife/internal/team/router"
	userRepository "github.com/hong13131/godlife/internal/user/repository"
	userService "github.com/hong13131/godlife/internal/user/service"
)

// NewRouter builds the gin engine with all middleware and module routes.
// Every route except /health sits behind bearer-token authentication.
func NewRouter(db *gorm.DB, verifier *auth.Verifier, logger *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	healthHandler := health.New(db, logger)
	r.GET("/health", healthHandler.Check)

	userRepo := userRepository.New(db, logger)
	userSvc := userService.New(userRepo, logger)

	api := r.Group("/", middleware.Auth(verifier, userSvc, logger))
	goalRouter.RegisterRoutes(api, db, logger)
	checkRouter.RegisterRoutes(api, db, logger)
	teamRouter.RegisterRoutes(api, db, logger)
	dashboardRouter.RegisterRoutes(api, db, logger)

	return r
}
