package match

import (
	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/internal/team"
	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewMatchRepository(db)
	teamRepo := team.NewTeamRepository(db)
	controller := NewMatchController(repo, teamRepo, appConfig)

	matches := router.Group("/matches")
	{
		matches.GET("", controller.ListMatches)
		matches.GET("/:id", controller.GetMatch)
	}

	adminOnly := router.Group("/matches")
	adminOnly.Use(middleware.RequireRole(appConfig.JWT.Secret, token.RoleAdmin))
	{
		adminOnly.POST("", controller.CreateMatch)
		adminOnly.PUT("/:id", controller.UpdateMatch)
		adminOnly.PUT("/:id/score", controller.UpdateScore)
		adminOnly.DELETE("/:id", controller.DeleteMatch)
	}
}
