package repository

import (
	"context"
	"time"

	"github.com/Blaqpapi/AIFitness/internal/models"
)

type ActivityLogRepository struct {
	db DBTX
}

func NewActivityLogRepository(db DBTX) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

type AddLogEntryInput struct {
	ProfileID int64
	LogType   string
	Notes     *string
	WeightKG  *float64
}

func (r *ActivityLogRepository) Add(ctx context.Context, input AddLogEntryInput) error {
	query := `
		INSERT INTO workout_log (profile_id, log_type, notes, weight_kg)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, input.ProfileID, input.LogType, input.Notes, input.WeightKG)
	return err
}

func (r *ActivityLogRepository) Recent(ctx context.Context, profileID int64, limit int) ([]models.ActivityLogEntry, error) {
	query := `
		SELECT id, profile_id, log_type, notes, weight_kg, created_at
		FROM workout_log
		WHERE profile_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, profileID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.ActivityLogEntry, 0)
	for rows.Next() {
		var entry models.ActivityLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.ProfileID,
			&entry.LogType,
			&entry.Notes,
			&entry.WeightKG,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// WeightSample is a raw (timestamp, weight) pair from the log, ascending.
type WeightSample struct {
	Timestamp time.Time
	WeightKG  float64
}

func (r *ActivityLogRepository) WeightSeries(ctx context.Context, profileID int64) ([]WeightSample, error) {
	query := `
		SELECT created_at, weight_kg
		FROM workout_log
		WHERE profile_id = $1 AND weight_kg IS NOT NULL
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	samples := make([]WeightSample, 0)
	for rows.Next() {
		var sample WeightSample
		if err := rows.Scan(&sample.Timestamp, &sample.WeightKG); err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}
