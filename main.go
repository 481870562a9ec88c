package main

import (
	"log"

	"github.com/apexarena/backend/config"
	_ "github.com/apexarena/backend/docs"
	"github.com/apexarena/backend/internal/admin"
	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/content"
	"github.com/apexarena/backend/internal/match"
	"github.com/apexarena/backend/internal/player"
	"github.com/apexarena/backend/internal/roster"
	"github.com/apexarena/backend/internal/team"
	"github.com/apexarena/backend/routes"
)

// @title           Apex Arena API
// @version         1.0
// @description     Backend for the Apex Arena inter-department sports platform: captain and player accounts, department rosters, teams, fixtures and published content.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	cfg := config.GetConfig()

	// Schema drift is surfaced in the logs but does not block startup;
	// the running schema may already be ahead of the models.
	if err := config.DB.AutoMigrate(
		&admin.Admin{},
		&captain.Captain{},
		&player.Player{},
		&roster.DepartmentPlayer{},
		&team.Team{},
		&match.Match{},
		&content.Announcement{},
		&content.GalleryItem{},
		&content.Schedule{},
		&content.Rule{},
	); err != nil {
		log.Printf("Database migration error: %v", err)
	}

	router := routes.SetupRouter(config.DB, cfg)

	log.Printf("Starting server on port %s (env: %s)", cfg.App.Port, cfg.App.Env)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
