package handlers

import (
	"context"
	"errors"

	"github.com/Blaqpapi/AIFitness/internal/llm"
	"github.com/Blaqpapi/AIFitness/internal/models"
	"github.com/Blaqpapi/AIFitness/internal/services"
	"github.com/Blaqpapi/AIFitness/internal/stream"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type chatApplicationService interface {
	History(ctx context.Context, profileID int64) []models.TurnView
	ClearHistory(ctx context.Context, profileID int64) error
	SendMessage(ctx context.Context, profileID int64, content string, temperature float64) (string, error)
}

type ChatHandler struct {
	service   chatApplicationService
	scheduler scheduleGenerator
	hub       *stream.Hub
}

func NewChatHandler(service chatApplicationService, scheduler scheduleGenerator, hub *stream.Hub) *ChatHandler {
	return &ChatHandler{
		service:   service,
		scheduler: scheduler,
		hub:       hub,
	}
}

type sendMessageRequest struct {
	Content     string   `json:"content"`
	Temperature *float64 `json:"temperature"`
}

// GetHistory always answers with a transcript, possibly empty; storage
// trouble is handled further down as a best-effort read.
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	return c.JSON(fiber.Map{"history": h.service.History(c.Context(), profileID)})
}

func (h *ChatHandler) ClearHistory(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	if err := h.service.ClearHistory(c.Context(), profileID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to clear history"})
	}

	return c.JSON(fiber.Map{"cleared": true})
}

// SendMessage drives one conversation turn. Deltas go out over the stream
// socket while the call is in flight; the final assistant text comes back
// here.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	temperature := llm.DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	response, err := h.service.SendMessage(c.Context(), profileID, req.Content, temperature)
	if err != nil {
		return mapCompletionError(c, err)
	}

	return c.JSON(fiber.Map{
		"role":    models.RoleAssistant,
		"content": response,
	})
}

// GenerateSchedule is user-initiated and visible, so unlike history access
// its failures are reported, provider message included.
func (h *ChatHandler) GenerateSchedule(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	if err := h.scheduler.Generate(c.Context(), profileID); err != nil {
		return mapCompletionError(c, err)
	}

	return c.JSON(fiber.Map{"generated": true})
}

func (h *ChatHandler) StreamUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}
	return c.Next()
}

func (h *ChatHandler) HandleStream(conn *websocket.Conn) {
	client := stream.NewClient(h.hub, conn)
	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump()
}

func mapCompletionError(c *fiber.Ctx, err error) error {
	var apiErr *llm.APIError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	case errors.Is(err, services.ErrClientUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Completion client is not configured"})
	case errors.As(err, &apiErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":           "API error",
			"provider_status": apiErr.StatusCode,
			"provider_error":  apiErr.Message,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An unexpected error occurred"})
	}
}
