package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Blaqpapi/AIFitness/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateName     = errors.New("profile name already exists")
	ErrLastProfile       = errors.New("cannot delete the last profile")
	ErrClientUnavailable = errors.New("completion client is not configured")
)

type profileStore interface {
	List(ctx context.Context) ([]models.Profile, error)
	GetDetails(ctx context.Context, profileID int64) (*models.ProfileDetails, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, profileID int64, details models.ProfileDetails) error
	Delete(ctx context.Context, profileID int64) error
	Count(ctx context.Context) (int, error)
}

type ProfileService struct {
	repo profileStore
}

func NewProfileService(repo profileStore) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.repo.List(ctx)
}

// GetDetails never fails the caller: a missing profile yields the all-defaults
// tuple, and other storage failures are logged and degrade to the same
// defaults. Chat context building and schedule generation rely on always
// getting a usable snapshot.
func (s *ProfileService) GetDetails(ctx context.Context, profileID int64) models.ProfileDetails {
	details, err := s.repo.GetDetails(ctx, profileID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("load details for profile %d: %v", profileID, err)
		}
		return models.DefaultProfileDetails()
	}
	return *details
}

func (s *ProfileService) CreateProfile(ctx context.Context, name string) (int64, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, ErrInvalidInput
	}

	id, err := s.repo.Create(ctx, trimmed)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateName
		}
		return 0, err
	}
	return id, nil
}

// UpdateProfile is a full-field update; range and enum rules are enforced by
// the handler before this is called.
func (s *ProfileService) UpdateProfile(ctx context.Context, profileID int64, details models.ProfileDetails) error {
	if profileID <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Update(ctx, profileID, details)
}

// DeleteProfile refuses to remove the last remaining profile. Conversation
// turns and activity log entries cascade with the row.
func (s *ProfileService) DeleteProfile(ctx context.Context, profileID int64) error {
	if profileID <= 0 {
		return ErrInvalidInput
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastProfile
	}

	return s.repo.Delete(ctx, profileID)
}
