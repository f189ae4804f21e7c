package routes

import (
	"github.com/Blaqpapi/AIFitness/internal/config"
	"github.com/Blaqpapi/AIFitness/internal/handlers"
	"github.com/Blaqpapi/AIFitness/internal/llm"
	"github.com/Blaqpapi/AIFitness/internal/repository"
	"github.com/Blaqpapi/AIFitness/internal/services"
	"github.com/Blaqpapi/AIFitness/internal/stream"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	profileRepo := repository.NewProfileRepository(db)
	chatRepo := repository.NewChatHistoryRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	client := llm.NewClient(cfg.GroqAPIKey, config.GroqBaseURL, cfg.GroqModel)

	hub := stream.NewHub()
	go hub.Run()

	profileService := services.NewProfileService(profileRepo)
	scheduleService := services.NewScheduleService(profileService, chatRepo, client)
	chatService := services.NewChatService(chatRepo, profileService, client, hub)
	activityService := services.NewActivityService(activityRepo)

	profileHandler := handlers.NewProfileHandler(profileService, chatService, scheduleService)
	chatHandler := handlers.NewChatHandler(chatService, scheduleService, hub)
	activityHandler := handlers.NewActivityHandler(activityService)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	profiles := v1.Group("/profiles")
	profiles.Get("", profileHandler.ListProfiles)
	profiles.Post("", profileHandler.CreateProfile)
	profiles.Get("/:id", profileHandler.GetProfile)
	profiles.Put("/:id", profileHandler.UpdateProfile)
	profiles.Delete("/:id", profileHandler.DeleteProfile)

	profiles.Get("/:id/history", chatHandler.GetHistory)
	profiles.Delete("/:id/history", chatHandler.ClearHistory)
	profiles.Post("/:id/messages", chatHandler.SendMessage)
	profiles.Post("/:id/schedule", chatHandler.GenerateSchedule)

	profiles.Post("/:id/logs", activityHandler.AddLogEntry)
	profiles.Get("/:id/logs", activityHandler.RecentLogs)
	profiles.Get("/:id/weight-history", activityHandler.WeightHistory)

	v1.Use("/stream", chatHandler.StreamUpgrade)
	v1.Get("/stream", websocket.New(chatHandler.HandleStream))
}
