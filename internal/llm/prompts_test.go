package llm

import (
	"strings"
	"testing"

	"github.com/Blaqpapi/AIFitness/internal/models"
)

func TestSystemPromptCarriesFullPersona(t *testing.T) {
	for _, want := range []string{
		"**Core Capabilities:**",
		"**Interaction Style & Handling Complexity:**",
		"**Example Complex Query Handling:**",
		"Should I do keto or low-fat for weight loss?",
		"**Key Takeaway:**",
	} {
		if !strings.Contains(SystemPrompt, want) {
			t.Errorf("system prompt missing section %q", want)
		}
	}
	if !strings.HasSuffix(SystemPrompt, "Okay, I am ready to assist with your fitness journey! 💪") {
		t.Error("system prompt missing closing line")
	}
}

func TestProfileContextMinimalProfile(t *testing.T) {
	details := models.ProfileDetails{Goal: "Lose fat", Experience: "Beginner"}

	got := ProfileContext(details)
	if got != "Goal: Lose fat; Experience: Beginner" {
		t.Fatalf("unexpected context: %q", got)
	}
}

func TestProfileContextIncludesOptionalAttributes(t *testing.T) {
	age := 29
	sex := "Female"
	height := 168.0
	weight := 62.5
	activity := "Moderately Active (moderate exercise/sports 3-5 days/week)"
	diet := "Vegan"
	equipment := "Full gym"
	notes := "Recovering from knee injury"

	details := models.ProfileDetails{
		Goal:          "Build muscle",
		Experience:    "Intermediate",
		Age:           &age,
		Sex:           &sex,
		HeightCM:      &height,
		WeightKG:      &weight,
		ActivityLevel: &activity,
		DietaryPrefs:  &diet,
		Equipment:     &equipment,
		Notes:         &notes,
	}

	got := ProfileContext(details)
	for _, want := range []string{
		"Goal: Build muscle",
		"Experience: Intermediate",
		"Age: 29",
		"Sex: Female",
		"Height: 168 cm",
		"Weight: 62.5 kg",
		"Dietary Notes: Vegan",
		"Equipment: Full gym",
		"General Notes: Recovering from knee injury",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, "Goal: Build muscle; Experience: Intermediate; Age: 29") {
		t.Errorf("unexpected field order: %q", got)
	}
}

func TestSchedulePromptUsesFallbacksForUnsetFields(t *testing.T) {
	got := SchedulePrompt(models.DefaultProfileDetails())

	for _, want := range []string{
		"- Goal: General Fitness",
		"- Experience Level: Beginner",
		"- Age: Not specified",
		"- Sex: Not specified",
		"- Available Equipment: Basic bodyweight/home equipment",
		"- General Notes: None",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestSchedulePromptRendersProfileValues(t *testing.T) {
	age := 45
	equipment := "Kettlebells only"
	details := models.ProfileDetails{
		Goal:       "Improve endurance",
		Experience: "Advanced",
		Age:        &age,
		Equipment:  &equipment,
	}

	got := SchedulePrompt(details)
	if !strings.Contains(got, "- Age: 45") {
		t.Errorf("prompt missing age:\n%s", got)
	}
	if !strings.Contains(got, "- Available Equipment: Kettlebells only") {
		t.Errorf("prompt missing equipment:\n%s", got)
	}
	if !strings.Contains(got, "Use level 2 headings (##) for each week") {
		t.Errorf("prompt missing formatting instructions:\n%s", got)
	}
}

func TestSchedulePromptTreatsBlankStringsAsUnset(t *testing.T) {
	blank := "   "
	details := models.DefaultProfileDetails()
	details.Equipment = &blank

	got := SchedulePrompt(details)
	if !strings.Contains(got, "- Available Equipment: Basic bodyweight/home equipment") {
		t.Errorf("blank equipment should fall back:\n%s", got)
	}
}
