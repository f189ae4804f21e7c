package repository

import (
	"context"

	"github.com/Blaqpapi/AIFitness/internal/models"
)

type ChatHistoryRepository struct {
	db DBTX
}

func NewChatHistoryRepository(db DBTX) *ChatHistoryRepository {
	return &ChatHistoryRepository{db: db}
}

// ListByProfile returns a profile's turns oldest first. Creation order is the
// canonical replay order for both display and model re-submission.
func (r *ChatHistoryRepository) ListByProfile(ctx context.Context, profileID int64) ([]models.ChatTurn, error) {
	query := `
		SELECT id, profile_id, role, content, created_at
		FROM chat_history
		WHERE profile_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	turns := make([]models.ChatTurn, 0)
	for rows.Next() {
		var turn models.ChatTurn
		if err := rows.Scan(
			&turn.ID,
			&turn.ProfileID,
			&turn.Role,
			&turn.Content,
			&turn.CreatedAt,
		); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return turns, nil
}

func (r *ChatHistoryRepository) Append(ctx context.Context, profileID int64, role, content string) error {
	query := `
		INSERT INTO chat_history (profile_id, role, content)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, profileID, role, content)
	return err
}

func (r *ChatHistoryRepository) Clear(ctx context.Context, profileID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM chat_history WHERE profile_id = $1`, profileID)
	return err
}
