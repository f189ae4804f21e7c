package handlers

import (
	"strings"

	"github.com/Blaqpapi/AIFitness/internal/models"
)

// sexUnset is what the page sends when the user declines to answer; it is
// stored as NULL, not as a value.
const sexUnset = "Prefer not to say"

var allowedExperienceLevels = toSet(models.ExperienceLevels)
var allowedSexes = toSet(models.SexOptions)
var allowedActivityLevels = toSet(models.ActivityLevels)

type updateProfileRequest struct {
	Goal          string   `json:"fitness_goal"`
	Experience    string   `json:"experience_level"`
	Age           *int     `json:"age"`
	Sex           *string  `json:"sex"`
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	DietaryPrefs  *string  `json:"dietary_prefs"`
	Equipment     *string  `json:"equipment"`
	Notes         *string  `json:"profile_notes"`
}

func validateProfileUpdateRequest(req updateProfileRequest) string {
	if strings.TrimSpace(req.Goal) == "" {
		return "fitness_goal is required"
	}
	if _, ok := allowedExperienceLevels[req.Experience]; !ok {
		return "experience_level must be one of Beginner, Intermediate, Advanced"
	}
	if req.Age != nil && *req.Age <= 0 {
		return "age must be greater than 0"
	}
	if req.Sex != nil && *req.Sex != sexUnset {
		if _, ok := allowedSexes[*req.Sex]; !ok {
			return "sex is not a recognized option"
		}
	}
	if req.HeightCM != nil && *req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if req.WeightKG != nil && *req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if req.ActivityLevel != nil {
		if _, ok := allowedActivityLevels[*req.ActivityLevel]; !ok {
			return "activity_level is not a recognized option"
		}
	}
	return ""
}

// normalizeProfileUpdate converts the validated request into the stored
// details tuple: free text is trimmed, and blank or declined optional fields
// become NULL.
func normalizeProfileUpdate(req updateProfileRequest) models.ProfileDetails {
	details := models.ProfileDetails{
		Goal:          strings.TrimSpace(req.Goal),
		Experience:    req.Experience,
		Age:           req.Age,
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		ActivityLevel: req.ActivityLevel,
		DietaryPrefs:  trimmedOrNil(req.DietaryPrefs),
		Equipment:     trimmedOrNil(req.Equipment),
		Notes:         trimmedOrNil(req.Notes),
	}
	if req.Sex != nil && *req.Sex != sexUnset {
		details.Sex = req.Sex
	}
	return details
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
