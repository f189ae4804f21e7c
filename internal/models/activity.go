package models

import "time"

const (
	LogTypeWorkout = "Workout"
	LogTypeWeighIn = "Weigh-in"
	LogTypeNote    = "Note"
)

var LogTypes = []string{LogTypeWorkout, LogTypeWeighIn, LogTypeNote}

// ActivityLogEntry is a timestamped workout/weigh-in/note record. Weight is
// populated only for weigh-ins.
type ActivityLogEntry struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profile_id"`
	LogType   string    `json:"log_type"`
	Notes     *string   `json:"notes"`
	WeightKG  *float64  `json:"weight_kg"`
	CreatedAt time.Time `json:"created_at"`
}

// WeightPoint is one sample of the derived weight-history series.
type WeightPoint struct {
	Timestamp string  `json:"timestamp"`
	WeightKG  float64 `json:"weight_kg"`
}
