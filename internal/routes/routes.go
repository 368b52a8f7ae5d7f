package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/config"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/handlers"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/middleware"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/repository"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/services"
	eventws "github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	nutritionRepo := repository.NewNutritionRepository(db)
	wellnessRepo := repository.NewWellnessRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	gamificationRepo := repository.NewGamificationRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	planRepo := repository.NewPlanRepository(db)

	eventHub := eventws.NewHub()
	go eventHub.Run()

	analyticsService := services.NewAnalyticsService(workoutRepo, nutritionRepo, wellnessRepo, progressRepo, gamificationRepo)
	recommendationService := services.NewRecommendationService(userRepo, workoutRepo, wellnessRepo, nutritionRepo)
	gamificationService := services.NewGamificationService(gamificationRepo, eventHub)
	adminService := services.NewAdminService(userRepo, workoutRepo, nutritionRepo, progressRepo)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(userRepo)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo, gamificationService, analyticsService)
	nutritionHandler := handlers.NewNutritionHandler(nutritionRepo)
	wellnessHandler := handlers.NewWellnessHandler(wellnessRepo)
	progressHandler := handlers.NewProgressHandler(progressRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo)
	adminHandler := handlers.NewAdminHandler(adminService)
	planHandler := handlers.NewPlanHandler(planRepo)
	eventFeedHandler := handlers.NewEventFeedHandler(eventHub, cfg.JWTSecret)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	users := authProtected.Group("/users")
	users.Get("/profile", profileHandler.GetProfile)
	users.Put("/profile", profileHandler.UpdateProfile)

	workouts := authProtected.Group("/workouts")
	workouts.Post("", workoutHandler.CreateWorkout)
	workouts.Get("", workoutHandler.ListWorkouts)
	workouts.Get("/summary/weekly", workoutHandler.WeeklySummary)
	workouts.Get("/:id", workoutHandler.GetWorkout)
	workouts.Put("/:id", workoutHandler.UpdateWorkout)
	workouts.Delete("/:id", workoutHandler.DeleteWorkout)

	nutrition := authProtected.Group("/nutrition")
	nutrition.Post("", nutritionHandler.LogMeals)
	nutrition.Get("", nutritionHandler.ListNutritionLogs)
	nutrition.Get("/:id", nutritionHandler.GetNutritionLog)
	nutrition.Put("/:id", nutritionHandler.ReplaceMeals)
	nutrition.Delete("/:id", nutritionHandler.DeleteNutritionLog)

	wellness := authProtected.Group("/wellness")
	wellness.Post("", wellnessHandler.LogCheckIn)
	wellness.Get("", wellnessHandler.ListWellnessLogs)
	wellness.Get("/today", wellnessHandler.GetTodayCheckIn)
	wellness.Put("/:id", wellnessHandler.UpdateWellnessLog)
	wellness.Delete("/:id", wellnessHandler.DeleteWellnessLog)

	progress := authProtected.Group("/progress")
	progress.Post("", progressHandler.LogProgress)
	progress.Get("", progressHandler.ListProgressLogs)
	progress.Get("/weight", progressHandler.WeightChart)
	progress.Get("/measurements", progressHandler.MeasurementsTrend)
	progress.Get("/:id", progressHandler.GetProgressLog)
	progress.Put("/:id", progressHandler.UpdateProgressLog)
	progress.Delete("/:id", progressHandler.DeleteProgressLog)

	analytics := authProtected.Group("/analytics")
	analytics.Get("/dashboard", analyticsHandler.Dashboard)
	analytics.Get("/workout-heatmap", analyticsHandler.WorkoutHeatmap)
	analytics.Get("/overtraining-alert", analyticsHandler.OvertrainingAlerts)

	authProtected.Get("/recommendations", recommendationHandler.GetRecommendations)

	gamification := authProtected.Group("/gamification")
	gamification.Get("/state", gamificationHandler.GetState)
	gamification.Get("/leaderboard", gamificationHandler.GetLeaderboard)

	feedback := authProtected.Group("/feedback")
	feedback.Post("", feedbackHandler.SubmitFeedback)
	feedback.Get("", feedbackHandler.ListMyFeedback)

	admin := authProtected.Group("/admin", middleware.AdminRequired())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Get("/users/:id/performance", adminHandler.UserPerformance)
	admin.Get("/analytics", adminHandler.PlatformAnalytics)
	admin.Get("/inactive-users", adminHandler.InactiveUsers)
	admin.Get("/feedback", feedbackHandler.ListAllFeedback)
	admin.Put("/feedback/:id/respond", feedbackHandler.RespondToFeedback)
	admin.Post("/gamification/badges", gamificationHandler.AwardBadge)
	admin.Post("/workout-plans", planHandler.CreatePlan)
	admin.Get("/workout-plans", planHandler.ListPlans)
	admin.Put("/workout-plans/:id/assign", planHandler.AssignPlan)

	api.Use("/v1/ws", eventFeedHandler.WebSocketAuth)
	api.Get("/v1/ws", websocket.New(eventFeedHandler.HandleWebSocket))

	return registerDocsRoutes(app, cfg)
}
