package services

import (
	"context"
	"fmt"

	"github.com/Blaqpapi/AIFitness/internal/llm"
	"github.com/Blaqpapi/AIFitness/internal/models"
)

const scheduleLeadIn = "**📅 Here is a sample 4-week schedule based on your profile:**"

type turnAppender interface {
	Append(ctx context.Context, profileID int64, role, content string) error
}

type scheduleCompleter interface {
	Complete(ctx context.Context, messages []llm.Message, temperature float64) (string, error)
}

// ScheduleService builds a 4-week plan from the profile snapshot and appends
// it to the conversation. Unlike history reads, its failures are surfaced:
// generation is a user-initiated, visible action.
type ScheduleService struct {
	profiles detailsReader
	turns    turnAppender
	client   scheduleCompleter
}

func NewScheduleService(profiles detailsReader, turns turnAppender, client scheduleCompleter) *ScheduleService {
	return &ScheduleService{
		profiles: profiles,
		turns:    turns,
		client:   client,
	}
}

// Generate renders the fixed prompt template from the profile's current
// attributes, invokes the model once non-streaming, and stores the result as
// an assistant turn bracketed by the schedule sentinels.
func (s *ScheduleService) Generate(ctx context.Context, profileID int64) error {
	if s.client == nil {
		return ErrClientUnavailable
	}
	if profileID <= 0 {
		return ErrInvalidInput
	}

	details := s.profiles.GetDetails(ctx, profileID)

	messages := []llm.Message{
		{Role: models.RoleSystem, Content: llm.ScheduleSystemPrompt},
		{Role: models.RoleUser, Content: llm.SchedulePrompt(details)},
	}

	content, err := s.client.Complete(ctx, messages, llm.DefaultTemperature)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("%s\n[SCHEDULE_START]\n%s\n[SCHEDULE_END]", scheduleLeadIn, content)
	if err := s.turns.Append(ctx, profileID, models.RoleAssistant, message); err != nil {
		return fmt.Errorf("save generated schedule: %w", err)
	}
	return nil
}
