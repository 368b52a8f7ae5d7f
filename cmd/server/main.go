package main

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/config"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/database"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/repository"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/routes"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/pkg/utils"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	if err := seedDefaultAdmin(cfg); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, database.DB); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// 4. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func seedDefaultAdmin(cfg *config.Config) error {
	if cfg.DefaultAdminEmail == "" || cfg.DefaultAdminPassword == "" {
		return nil
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(database.DB)

	if _, err := userRepo.GetByEmail(ctx, cfg.DefaultAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := utils.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         cfg.DefaultAdminName,
		Email:        cfg.DefaultAdminEmail,
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := userRepo.CreateUser(ctx, admin); err != nil {
		return err
	}

	log.Printf("Seeded default admin account %s", cfg.DefaultAdminEmail)
	return nil
}
