package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatTurn is one persisted message in a profile's conversation. Turns are
// immutable: they are inserted, bulk-read in creation order, and bulk-deleted
// with their profile, never edited.
type ChatTurn struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profile_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TurnView is a ChatTurn decorated with a display kind derived from its
// content at read time. The stored content is the source of truth; the tag
// only tells the page whether to render tabbed schedule sections.
type TurnView struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
}

const (
	TurnKindText     = "text"
	TurnKindSchedule = "schedule"
)
