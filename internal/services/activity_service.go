package services

import (
	"context"
	"log"
	"strings"

	"github.com/Blaqpapi/AIFitness/internal/models"
	"github.com/Blaqpapi/AIFitness/internal/repository"
)

// DisplayTimestampLayout is the shortened form used on recent-log cards.
const DisplayTimestampLayout = "2006-01-02 15:04"

const DefaultRecentLimit = 10

type activityStore interface {
	Add(ctx context.Context, input repository.AddLogEntryInput) error
	Recent(ctx context.Context, profileID int64, limit int) ([]models.ActivityLogEntry, error)
	WeightSeries(ctx context.Context, profileID int64) ([]repository.WeightSample, error)
}

type ActivityService struct {
	repo activityStore
}

func NewActivityService(repo activityStore) *ActivityService {
	return &ActivityService{repo: repo}
}

// LogEntryView is the (timestamp, type, notes, weight) tuple shown on the
// recent-activity list.
type LogEntryView struct {
	Timestamp string   `json:"timestamp"`
	LogType   string   `json:"log_type"`
	Notes     *string  `json:"notes"`
	WeightKG  *float64 `json:"weight_kg"`
}

// AddEntry validates and stores one log entry. Weight is kept only for
// weigh-ins with a positive value; an entry must carry notes or a weigh-in
// weight to be worth storing.
func (s *ActivityService) AddEntry(ctx context.Context, profileID int64, logType, notes string, weightKG *float64) error {
	if profileID <= 0 || !isKnownLogType(logType) {
		return ErrInvalidInput
	}

	trimmed := strings.TrimSpace(notes)

	var storedWeight *float64
	if logType == models.LogTypeWeighIn && weightKG != nil && *weightKG > 0 {
		storedWeight = weightKG
	}

	if trimmed == "" && storedWeight == nil {
		return ErrInvalidInput
	}

	var storedNotes *string
	if trimmed != "" {
		storedNotes = &trimmed
	}

	return s.repo.Add(ctx, repository.AddLogEntryInput{
		ProfileID: profileID,
		LogType:   logType,
		Notes:     storedNotes,
		WeightKG:  storedWeight,
	})
}

// RecentEntries returns the newest entries first. Storage failures are logged
// and degrade to an empty list.
func (s *ActivityService) RecentEntries(ctx context.Context, profileID int64, limit int) []LogEntryView {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	entries, err := s.repo.Recent(ctx, profileID, limit)
	if err != nil {
		log.Printf("load recent logs for profile %d: %v", profileID, err)
		return []LogEntryView{}
	}

	views := make([]LogEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, LogEntryView{
			Timestamp: entry.CreatedAt.UTC().Format(DisplayTimestampLayout),
			LogType:   entry.LogType,
			Notes:     entry.Notes,
			WeightKG:  entry.WeightKG,
		})
	}
	return views
}

// WeightSeries projects the log onto an ascending timestamp→weight series of
// non-null weights. Two samples landing on the same formatted timestamp
// collapse to the later one, matching a unique-key mapping.
func (s *ActivityService) WeightSeries(ctx context.Context, profileID int64) []models.WeightPoint {
	samples, err := s.repo.WeightSeries(ctx, profileID)
	if err != nil {
		log.Printf("load weight history for profile %d: %v", profileID, err)
		return []models.WeightPoint{}
	}

	points := make([]models.WeightPoint, 0, len(samples))
	for _, sample := range samples {
		point := models.WeightPoint{
			Timestamp: FormatTimestamp(sample.Timestamp),
			WeightKG:  sample.WeightKG,
		}
		if n := len(points); n > 0 && points[n-1].Timestamp == point.Timestamp {
			points[n-1] = point
			continue
		}
		points = append(points, point)
	}
	return points
}

func isKnownLogType(logType string) bool {
	for _, known := range models.LogTypes {
		if logType == known {
			return true
		}
	}
	return false
}
