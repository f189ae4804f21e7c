package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/Blaqpapi/AIFitness/internal/models"
	"github.com/Blaqpapi/AIFitness/internal/services"
	"github.com/gofiber/fiber/v2"
)

const maxRecentLogs = 50

type activityApplicationService interface {
	AddEntry(ctx context.Context, profileID int64, logType, notes string, weightKG *float64) error
	RecentEntries(ctx context.Context, profileID int64, limit int) []services.LogEntryView
	WeightSeries(ctx context.Context, profileID int64) []models.WeightPoint
}

type ActivityHandler struct {
	service activityApplicationService
}

func NewActivityHandler(service activityApplicationService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type addLogEntryRequest struct {
	LogType  string   `json:"log_type"`
	Notes    string   `json:"notes"`
	WeightKG *float64 `json:"weight_kg"`
}

func (h *ActivityHandler) AddLogEntry(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	var req addLogEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.AddEntry(c.Context(), profileID, req.LogType, req.Notes, req.WeightKG); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please enter some notes or a valid weight for weigh-in"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save log entry"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"saved": true})
}

func (h *ActivityHandler) RecentLogs(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	limit := parsePositiveInt(c.Query("limit"), services.DefaultRecentLimit)
	if limit > maxRecentLogs {
		limit = maxRecentLogs
	}

	return c.JSON(fiber.Map{"logs": h.service.RecentEntries(c.Context(), profileID, limit)})
}

func (h *ActivityHandler) WeightHistory(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	return c.JSON(fiber.Map{"weight_history": h.service.WeightSeries(c.Context(), profileID)})
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
