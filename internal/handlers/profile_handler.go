package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Blaqpapi/AIFitness/internal/models"
	"github.com/Blaqpapi/AIFitness/internal/services"
	"github.com/Blaqpapi/AIFitness/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type profileApplicationService interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	GetDetails(ctx context.Context, profileID int64) models.ProfileDetails
	CreateProfile(ctx context.Context, name string) (int64, error)
	UpdateProfile(ctx context.Context, profileID int64, details models.ProfileDetails) error
	DeleteProfile(ctx context.Context, profileID int64) error
}

type scheduleGenerator interface {
	Generate(ctx context.Context, profileID int64) error
}

type conversationSeeder interface {
	AppendTurn(ctx context.Context, profileID int64, role, content string) bool
}

type ProfileHandler struct {
	service   profileApplicationService
	chat      conversationSeeder
	scheduler scheduleGenerator
}

func NewProfileHandler(service profileApplicationService, chat conversationSeeder, scheduler scheduleGenerator) *ProfileHandler {
	return &ProfileHandler{
		service:   service,
		chat:      chat,
		scheduler: scheduler,
	}
}

type createProfileRequest struct {
	Name string `json:"name"`
}

func (h *ProfileHandler) ListProfiles(c *fiber.Ctx) error {
	profiles, err := h.service.ListProfiles(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list profiles"})
	}
	return c.JSON(fiber.Map{"profiles": profiles})
}

// CreateProfile creates a named profile and seeds its conversation: a welcome
// greeting first, then a generated schedule. Both seeds are best-effort: their
// failure never fails the creation.
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var req createProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.service.CreateProfile(c.Context(), req.Name)
	if err != nil {
		return mapProfileError(c, err)
	}

	if h.chat != nil {
		welcome := fmt.Sprintf("Welcome to profile '%s'! How can I help you today? 💪", strings.TrimSpace(req.Name))
		h.chat.AppendTurn(c.Context(), id, models.RoleAssistant, welcome)
	}

	scheduleGenerated := false
	if h.scheduler != nil {
		if err := h.scheduler.Generate(c.Context(), id); err != nil {
			log.Printf("seed schedule for profile %d: %v", id, err)
		} else {
			scheduleGenerated = true
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":                 id,
		"schedule_generated": scheduleGenerated,
	})
}

// GetProfile returns the full attribute tuple plus a computed BMI reading.
// A missing id yields the all-defaults profile, never a 404.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	details := h.service.GetDetails(c.Context(), profileID)

	response := fiber.Map{"profile": details}
	if details.WeightKG != nil && details.HeightCM != nil {
		if bmi, category := utils.CalculateBMI(*details.WeightKG, *details.HeightCM); bmi != nil {
			response["bmi"] = fiber.Map{"value": *bmi, "category": category}
		}
	}
	return c.JSON(response)
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProfileUpdateRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	if err := h.service.UpdateProfile(c.Context(), profileID, normalizeProfileUpdate(req)); err != nil {
		return mapProfileError(c, err)
	}

	return c.JSON(fiber.Map{"updated": true})
}

func (h *ProfileHandler) DeleteProfile(c *fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	if err := h.service.DeleteProfile(c.Context(), profileID); err != nil {
		return mapProfileError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": true})
}

func parseProfileID(c *fiber.Ctx) (int64, error) {
	profileID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || profileID <= 0 {
		return 0, errors.New("invalid profile id")
	}
	return profileID, nil
}

func mapProfileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	case errors.Is(err, services.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Profile name already exists"})
	case errors.Is(err, services.ErrLastProfile):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Cannot delete the last profile"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process profile request"})
	}
}
