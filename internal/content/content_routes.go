package content

import (
	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterContentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRepository(db)
	controller := NewController(repo)

	router.GET("/announcements", controller.ListAnnouncements)
	router.GET("/gallery", controller.ListGallery)
	router.GET("/schedules", controller.ListSchedules)
	router.GET("/rules", controller.ListRules)

	adminOnly := middleware.RequireRole(appConfig.JWT.Secret, token.RoleAdmin)

	announcements := router.Group("/announcements", adminOnly)
	{
		announcements.POST("", controller.CreateAnnouncement)
		announcements.PUT("/:id", controller.UpdateAnnouncement)
		announcements.DELETE("/:id", controller.DeleteAnnouncement)
	}

	gallery := router.Group("/gallery", adminOnly)
	{
		gallery.POST("", controller.CreateGalleryItem)
		gallery.PUT("/:id", controller.UpdateGalleryItem)
		gallery.DELETE("/:id", controller.DeleteGalleryItem)
	}

	schedules := router.Group("/schedules", adminOnly)
	{
		schedules.POST("", controller.CreateSchedule)
		schedules.PUT("/:id", controller.UpdateSchedule)
		schedules.DELETE("/:id", controller.DeleteSchedule)
	}

	rules := router.Group("/rules", adminOnly)
	{
		rules.POST("", controller.CreateRule)
		rules.PUT("/:id", controller.UpdateRule)
		rules.DELETE("/:id", controller.DeleteRule)
	}
}
