package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Blaqpapi/AIFitness/internal/llm"
	"github.com/Blaqpapi/AIFitness/internal/models"
	"github.com/Blaqpapi/AIFitness/internal/stream"
)

// LocalErrorPrefix starts the fallback text shown when a completion call
// fails. Responses carrying it are never persisted, so transient API failures
// cannot pollute the stored history.
const LocalErrorPrefix = "Sorry, I encountered an API error"

const historyClearedMessage = "Chat history cleared! How can I help you?"

type turnStore interface {
	ListByProfile(ctx context.Context, profileID int64) ([]models.ChatTurn, error)
	Append(ctx context.Context, profileID int64, role, content string) error
	Clear(ctx context.Context, profileID int64) error
}

type detailsReader interface {
	GetDetails(ctx context.Context, profileID int64) models.ProfileDetails
}

type completer interface {
	Complete(ctx context.Context, messages []llm.Message, temperature float64) (string, error)
	StreamComplete(ctx context.Context, messages []llm.Message, temperature float64, onDelta func(string)) (string, error)
}

type broadcaster interface {
	Broadcast(eventType string, profileID int64, content string)
}

type ChatService struct {
	turns    turnStore
	profiles detailsReader
	client   completer
	hub      broadcaster
}

func NewChatService(turns turnStore, profiles detailsReader, client completer, hub broadcaster) *ChatService {
	return &ChatService{
		turns:    turns,
		profiles: profiles,
		client:   client,
		hub:      hub,
	}
}

// History returns a profile's turns oldest first. Storage failures are logged
// and degrade to an empty transcript; chat display always proceeds with
// best-effort data.
func (s *ChatService) History(ctx context.Context, profileID int64) []models.TurnView {
	turns, err := s.turns.ListByProfile(ctx, profileID)
	if err != nil {
		log.Printf("load chat history for profile %d: %v", profileID, err)
		return []models.TurnView{}
	}

	views := make([]models.TurnView, 0, len(turns))
	for _, turn := range turns {
		views = append(views, models.TurnView{
			Role:      turn.Role,
			Content:   turn.Content,
			Kind:      classifyTurn(turn),
			CreatedAt: FormatTimestamp(turn.CreatedAt),
		})
	}
	return views
}

// AppendTurn persists a turn best-effort: a storage failure is logged, not
// surfaced, and the caller learns only whether the write happened.
func (s *ChatService) AppendTurn(ctx context.Context, profileID int64, role, content string) bool {
	if err := s.turns.Append(ctx, profileID, role, content); err != nil {
		log.Printf("save %s turn for profile %d: %v", role, profileID, err)
		return false
	}
	return true
}

// ClearHistory deletes every turn for the profile, then drops a fresh
// assistant greeting into the emptied transcript.
func (s *ChatService) ClearHistory(ctx context.Context, profileID int64) error {
	if err := s.turns.Clear(ctx, profileID); err != nil {
		return err
	}
	s.AppendTurn(ctx, profileID, models.RoleAssistant, historyClearedMessage)
	return nil
}

// SendMessage runs one full conversation turn: persist the raw user text,
// rebuild the profile context, stream the completion while broadcasting
// deltas, and persist the final assistant response. The stored user turn is
// always the unadorned text the user typed; the context preamble exists only
// in the outbound message list.
func (s *ChatService) SendMessage(ctx context.Context, profileID int64, content string, temperature float64) (string, error) {
	if s.client == nil {
		return "", ErrClientUnavailable
	}

	trimmed := strings.TrimSpace(content)
	if profileID <= 0 || trimmed == "" {
		return "", ErrInvalidInput
	}

	if temperature < 0 {
		temperature = 0
	}
	if temperature > 1 {
		temperature = 1
	}

	// Prior transcript, loaded before the new turn is written so the current
	// message is not duplicated in the outbound list.
	history, err := s.turns.ListByProfile(ctx, profileID)
	if err != nil {
		log.Printf("load chat history for profile %d: %v", profileID, err)
		history = nil
	}

	// The user turn is persisted before any network call so history survives
	// a crash mid-response.
	s.AppendTurn(ctx, profileID, models.RoleUser, trimmed)

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: models.RoleSystem, Content: llm.SystemPrompt})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}

	details := s.profiles.GetDetails(ctx, profileID)
	contextual := fmt.Sprintf("(My Profile: %s)\n\n%s", llm.ProfileContext(details), trimmed)
	messages = append(messages, llm.Message{Role: models.RoleUser, Content: contextual})

	full, err := s.client.StreamComplete(ctx, messages, temperature, func(delta string) {
		if s.hub != nil {
			s.hub.Broadcast(stream.EventDelta, profileID, delta)
		}
	})
	if err != nil {
		fallback := fmt.Sprintf("%s. Please try again: %v", LocalErrorPrefix, err)
		if s.hub != nil {
			s.hub.Broadcast(stream.EventError, profileID, fallback)
		}
		return "", err
	}

	s.finalize(ctx, profileID, full)
	if s.hub != nil {
		s.hub.Broadcast(stream.EventDone, profileID, full)
	}
	return full, nil
}

// finalize persists the assembled response unless it is empty or carries the
// local error prefix.
func (s *ChatService) finalize(ctx context.Context, profileID int64, response string) {
	if strings.TrimSpace(response) == "" {
		log.Printf("empty completion for profile %d, nothing persisted", profileID)
		return
	}
	if strings.HasPrefix(response, LocalErrorPrefix) {
		log.Printf("error-fallback completion for profile %d, nothing persisted", profileID)
		return
	}
	s.AppendTurn(ctx, profileID, models.RoleAssistant, response)
}

// classifyTurn derives the display kind from the stored content. The sentinel
// search mirrors what the page keys off to render tabbed per-week sections.
func classifyTurn(turn models.ChatTurn) string {
	if turn.Role == models.RoleAssistant &&
		strings.Contains(turn.Content, "sample 4-week schedule") &&
		strings.Contains(turn.Content, "---") {
		return models.TurnKindSchedule
	}
	return models.TurnKindText
}

// TimestampLayout is the wire format for all timestamps; anything else is a
// hard parse failure at the display layer.
const TimestampLayout = "2006-01-02 15:04:05"

func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(TimestampLayout)
}
