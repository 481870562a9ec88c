package team

import (
	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewTeamRepository(db)
	controller := NewTeamController(repo, appConfig)

	captainTeams := router.Group("/captain-teams")
	captainTeams.Use(middleware.RequireRole(appConfig.JWT.Secret, token.RoleCaptain))
	{
		captainTeams.POST("", controller.CreateTeam)
		captainTeams.GET("/my", controller.MyTeams)
		captainTeams.POST("/:id/players", controller.AddPlayer)
		captainTeams.DELETE("/:id/players/:playerId", controller.RemovePlayer)
		captainTeams.DELETE("/:id", controller.DeleteMyTeam)
	}

	teams := router.Group("/teams")
	{
		teams.GET("", controller.ListTeams)
		teams.GET("/:id", controller.GetTeam)
		teams.DELETE("/:id",
			middleware.RequireRole(appConfig.JWT.Secret, token.RoleAdmin),
			controller.AdminDeleteTeam)
	}
}
