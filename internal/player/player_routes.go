package player

import (
	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRepository(db)
	controller := NewController(repo, appConfig)

	public := router.Group("/player-auth")
	{
		public.POST("/register", controller.Register)
		public.POST("/login", controller.Login)
	}

	protected := router.Group("/player-auth")
	protected.Use(middleware.RequireRole(appConfig.JWT.Secret, token.RolePlayer))
	{
		protected.GET("/profile", controller.Profile)
	}
}
