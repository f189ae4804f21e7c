package models

// Profile is the (id, name) pair shown in the profile picker.
type Profile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProfileDetails holds every coaching-relevant attribute of a profile.
// Optional fields are nil when unset.
type ProfileDetails struct {
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

const (
	DefaultGoal       = "General Fitness"
	DefaultExperience = "Beginner"
)

// DefaultProfileDetails is what a read of a missing profile yields. Callers
// always get usable defaults rather than an error; chat context building and
// schedule generation depend on this.
func DefaultProfileDetails() ProfileDetails {
	return ProfileDetails{
		Goal:       DefaultGoal,
		Experience: DefaultExperience,
	}
}

var ExperienceLevels = []string{"Beginner", "Intermediate", "Advanced"}

var SexOptions = []string{"Male", "Female", "Other"}

var ActivityLevels = []string{
	"Sedentary (little to no exercise)",
	"Lightly Active (light exercise/sports 1-3 days/week)",
	"Moderately Active (moderate exercise/sports 3-5 days/week)",
	"Very Active (hard exercise/sports 6-7 days a week)",
	"Extra Active (very hard exercise/physical job)",
}
