package roster

import (
	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRosterRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRepository(db)
	captainRepo := captain.NewRepository(db)
	controller := NewController(repo, captainRepo, appConfig)

	// Roster CRUD lives under the captain portal.
	protected := router.Group("/captain-auth/players")
	protected.Use(middleware.RequireRole(appConfig.JWT.Secret, token.RoleCaptain))
	{
		protected.POST("", controller.AddPlayer)
		protected.GET("", controller.MyPlayers)
		protected.PUT("/:id", controller.UpdatePlayer)
		protected.DELETE("/:id", controller.DeletePlayer)
	}

	public := router.Group("/players")
	{
		public.GET("", controller.ListApproved)
	}
}
