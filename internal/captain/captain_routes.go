package captain

import (
	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterCaptainRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRepository(db)
	controller := NewController(repo, appConfig)

	public := router.Group("/captain-auth")
	{
		public.POST("/register", controller.Register)
		public.POST("/login", controller.Login)
		public.GET("/sports", controller.Sports)
		public.GET("/departments", controller.Departments)
		public.GET("/blood-groups", controller.BloodGroups)
	}

	protected := router.Group("/captain-auth")
	protected.Use(middleware.RequireRole(appConfig.JWT.Secret, token.RoleCaptain))
	{
		protected.GET("/profile", controller.Profile)
	}
}
