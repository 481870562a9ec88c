package admin

import (
	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/internal/roster"
	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAdminRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRepository(db)
	captainRepo := captain.NewRepository(db)
	rosterRepo := roster.NewRepository(db)
	controller := NewController(repo, captainRepo, rosterRepo, appConfig)

	public := router.Group("/admin")
	{
		public.POST("/signup", controller.Signup)
		public.POST("/login", controller.Login)
	}

	protected := router.Group("/admin")
	protected.Use(middleware.RequireRole(appConfig.JWT.Secret, token.RoleAdmin))
	{
		protected.GET("/profile", controller.Profile)
		protected.GET("/captains", controller.ListCaptains)
		protected.PUT("/captains/:id/status", controller.SetCaptainStatus)
		protected.GET("/players", controller.ListPlayers)
		protected.PUT("/players/:id/status", controller.SetPlayerStatus)
	}
}
