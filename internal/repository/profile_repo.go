package repository

import (
	"context"

	"github.com/Blaqpapi/AIFitness/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	query := `
		SELECT id, profile_name
		FROM user_profiles
		ORDER BY profile_name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		var profile models.Profile
		if err := rows.Scan(&profile.ID, &profile.Name); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *ProfileRepository) GetDetails(ctx context.Context, profileID int64) (*models.ProfileDetails, error) {
	query := `
		SELECT fitness_goal, experience_level, age, sex,
			   height_cm, weight_kg, activity_level,
			   dietary_prefs, equipment, profile_notes
		FROM user_profiles
		WHERE id = $1
	`
	var details models.ProfileDetails
	err := r.db.QueryRow(ctx, query, profileID).Scan(
		&details.Goal,
		&details.Experience,
		&details.Age,
		&details.Sex,
		&details.HeightCM,
		&details.WeightKG,
		&details.ActivityLevel,
		&details.DietaryPrefs,
		&details.Equipment,
		&details.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *ProfileRepository) Create(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO user_profiles (profile_name)
		VALUES ($1)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profileID int64, details models.ProfileDetails) error {
	query := `
		UPDATE user_profiles
		SET fitness_goal = $1,
			experience_level = $2,
			age = $3,
			sex = $4,
			height_cm = $5,
			weight_kg = $6,
			activity_level = $7,
			dietary_prefs = $8,
			equipment = $9,
			profile_notes = $10
		WHERE id = $11
	`
	_, err := r.db.Exec(ctx, query,
		details.Goal,
		details.Experience,
		details.Age,
		details.Sex,
		details.HeightCM,
		details.WeightKG,
		details.ActivityLevel,
		details.DietaryPrefs,
		details.Equipment,
		details.Notes,
		profileID,
	)
	return err
}

// Delete removes the profile row; chat_history and workout_log rows go with
// it via ON DELETE CASCADE.
func (r *ProfileRepository) Delete(ctx context.Context, profileID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_profiles WHERE id = $1`, profileID)
	return err
}

func (r *ProfileRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_profiles`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
