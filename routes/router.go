package routes

import (
	"net/http"

	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/admin"
	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/content"
	"github.com/apexarena/backend/internal/match"
	"github.com/apexarena/backend/internal/player"
	"github.com/apexarena/backend/internal/roster"
	"github.com/apexarena/backend/internal/team"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine with all API routes mounted under /api.
func SetupRouter(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	router.Use(cors.Default())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Apex Arena API",
			"status":  "running",
			"docs":    "/swagger/index.html",
			"version": "1.0",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	api := router.Group("/api")

	admin.RegisterAdminRoutes(api, db, appConfig)
	captain.RegisterCaptainRoutes(api, db, appConfig)
	player.RegisterPlayerRoutes(api, db, appConfig)
	roster.RegisterRosterRoutes(api, db, appConfig)
	team.RegisterTeamRoutes(api, db, appConfig)
	match.RegisterMatchRoutes(api, db, appConfig)
	content.RegisterContentRoutes(api, db, appConfig)

	return router
}
