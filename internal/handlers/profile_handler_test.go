package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Blaqpapi/AIFitness/internal/models"
	"github.com/Blaqpapi/AIFitness/internal/services"
	"github.com/gofiber/fiber/v2"
)

type stubProfileService struct {
	profiles    []models.Profile
	listErr     error
	details     models.ProfileDetails
	createID    int64
	createErr   error
	updateErr   error
	deleteErr   error
	lastName    string
	lastDetails models.ProfileDetails
}

func (s *stubProfileService) ListProfiles(_ context.Context) ([]models.Profile, error) {
	return s.profiles, s.listErr
}

func (s *stubProfileService) GetDetails(_ context.Context, _ int64) models.ProfileDetails {
	return s.details
}

func (s *stubProfileService) CreateProfile(_ context.Context, name string) (int64, error) {
	s.lastName = name
	return s.createID, s.createErr
}

func (s *stubProfileService) UpdateProfile(_ context.Context, _ int64, details models.ProfileDetails) error {
	s.lastDetails = details
	return s.updateErr
}

func (s *stubProfileService) DeleteProfile(_ context.Context, _ int64) error {
	return s.deleteErr
}

type stubScheduler struct {
	err        error
	calls      int
	lastTarget int64
}

func (s *stubScheduler) Generate(_ context.Context, profileID int64) error {
	s.calls++
	s.lastTarget = profileID
	return s.err
}

type seededTurn struct {
	profileID int64
	role      string
	content   string
}

type stubSeeder struct {
	turns []seededTurn
}

func (s *stubSeeder) AppendTurn(_ context.Context, profileID int64, role, content string) bool {
	s.turns = append(s.turns, seededTurn{profileID: profileID, role: role, content: content})
	return true
}

func newProfileTestApp(service *stubProfileService, scheduler *stubScheduler) *fiber.App {
	return newProfileTestAppWithSeeder(service, &stubSeeder{}, scheduler)
}

func newProfileTestAppWithSeeder(service *stubProfileService, seeder *stubSeeder, scheduler *stubScheduler) *fiber.App {
	app := fiber.New()
	handler := NewProfileHandler(service, seeder, scheduler)
	app.Get("/profiles", handler.ListProfiles)
	app.Post("/profiles", handler.CreateProfile)
	app.Get("/profiles/:id", handler.GetProfile)
	app.Put("/profiles/:id", handler.UpdateProfile)
	app.Delete("/profiles/:id", handler.DeleteProfile)
	return app
}

func TestListProfiles(t *testing.T) {
	service := &stubProfileService{profiles: []models.Profile{
		{ID: 1, Name: "Default"},
		{ID: 2, Name: "Cut"},
	}}
	app := newProfileTestApp(service, &stubScheduler{})

	resp, err := app.Test(httptest.NewRequest("GET", "/profiles", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Profiles []models.Profile `json:"profiles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Profiles) != 2 || body.Profiles[1].Name != "Cut" {
		t.Fatalf("unexpected profiles: %+v", body.Profiles)
	}
}

func TestCreateProfileSeedsSchedule(t *testing.T) {
	service := &stubProfileService{createID: 7}
	scheduler := &stubScheduler{}
	app := newProfileTestApp(service, scheduler)

	req := httptest.NewRequest("POST", "/profiles", bytes.NewBufferString(`{"name":"Bulk"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastName != "Bulk" {
		t.Errorf("expected name forwarded, got %q", service.lastName)
	}
	if scheduler.calls != 1 || scheduler.lastTarget != 7 {
		t.Errorf("expected one schedule seed for profile 7, got %d calls for %d", scheduler.calls, scheduler.lastTarget)
	}

	var body struct {
		ID                int64 `json:"id"`
		ScheduleGenerated bool  `json:"schedule_generated"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != 7 || !body.ScheduleGenerated {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCreateProfileSeedsWelcomeGreeting(t *testing.T) {
	service := &stubProfileService{createID: 7}
	seeder := &stubSeeder{}
	app := newProfileTestAppWithSeeder(service, seeder, &stubScheduler{})

	req := httptest.NewRequest("POST", "/profiles", bytes.NewBufferString(`{"name":"  Bulk  "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	if len(seeder.turns) != 1 {
		t.Fatalf("expected one seeded turn, got %d", len(seeder.turns))
	}
	turn := seeder.turns[0]
	if turn.profileID != 7 || turn.role != models.RoleAssistant {
		t.Fatalf("unexpected seeded turn: %+v", turn)
	}
	if turn.content != "Welcome to profile 'Bulk'! How can I help you today? 💪" {
		t.Fatalf("unexpected welcome text %q", turn.content)
	}
}

func TestCreateProfileSurvivesScheduleSeedFailure(t *testing.T) {
	service := &stubProfileService{createID: 7}
	scheduler := &stubScheduler{err: services.ErrClientUnavailable}
	app := newProfileTestApp(service, scheduler)

	req := httptest.NewRequest("POST", "/profiles", bytes.NewBufferString(`{"name":"Bulk"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("seed failure must not fail creation, got %d", resp.StatusCode)
	}

	var body struct {
		ScheduleGenerated bool `json:"schedule_generated"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ScheduleGenerated {
		t.Fatal("expected schedule_generated false")
	}
}

func TestCreateProfileDuplicateNameConflict(t *testing.T) {
	service := &stubProfileService{createErr: services.ErrDuplicateName}
	app := newProfileTestApp(service, &stubScheduler{})

	req := httptest.NewRequest("POST", "/profiles", bytes.NewBufferString(`{"name":"Default"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestCreateProfileEmptyNameBadRequest(t *testing.T) {
	service := &stubProfileService{createErr: services.ErrInvalidInput}
	app := newProfileTestApp(service, &stubScheduler{})

	req := httptest.NewRequest("POST", "/profiles", bytes.NewBufferString(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetProfileIncludesBMI(t *testing.T) {
	height := 175.0
	weight := 70.0
	service := &stubProfileService{details: models.ProfileDetails{
		Goal:       "Lose fat",
		Experience: "Beginner",
		HeightCM:   &height,
		WeightKG:   &weight,
	}}
	app := newProfileTestApp(service, &stubScheduler{})

	resp, err := app.Test(httptest.NewRequest("GET", "/profiles/1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Profile models.ProfileDetails `json:"profile"`
		BMI     *struct {
			Value    float64 `json:"value"`
			Category string  `json:"category"`
		} `json:"bmi"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.BMI == nil {
		t.Fatal("expected bmi block")
	}
	if body.BMI.Value != 22.9 || body.BMI.Category != "Normal weight" {
		t.Fatalf("unexpected bmi: %+v", body.BMI)
	}
}

func TestGetProfileOmitsBMIWithoutMeasurements(t *testing.T) {
	service := &stubProfileService{details: models.DefaultProfileDetails()}
	app := newProfileTestApp(service, &stubScheduler{})

	resp, err := app.Test(httptest.NewRequest("GET", "/profiles/1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, present := body["bmi"]; present {
		t.Fatal("bmi must be absent without height and weight")
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	service := &stubProfileService{}
	app := newProfileTestApp(service, &stubScheduler{})

	cases := []struct {
		name string
		body string
	}{
		{"missing goal", `{"fitness_goal":"","experience_level":"Beginner"}`},
		{"bad experience", `{"fitness_goal":"Lose fat","experience_level":"Olympian"}`},
		{"negative age", `{"fitness_goal":"Lose fat","experience_level":"Beginner","age":-3}`},
		{"zero height", `{"fitness_goal":"Lose fat","experience_level":"Beginner","height_cm":0}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/profiles/1", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestUpdateProfileNormalizesBlanksToNil(t *testing.T) {
	service := &stubProfileService{}
	app := newProfileTestApp(service, &stubScheduler{})

	body := `{"fitness_goal":"Build muscle","experience_level":"Intermediate","sex":"Prefer not to say","equipment":"   "}`
	req := httptest.NewRequest("PUT", "/profiles/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastDetails.Sex != nil {
		t.Errorf("declined sex must store nil, got %q", *service.lastDetails.Sex)
	}
	if service.lastDetails.Equipment != nil {
		t.Errorf("blank equipment must store nil, got %q", *service.lastDetails.Equipment)
	}
	if service.lastDetails.Goal != "Build muscle" {
		t.Errorf("unexpected goal %q", service.lastDetails.Goal)
	}
}

func TestDeleteLastProfileConflict(t *testing.T) {
	service := &stubProfileService{deleteErr: services.ErrLastProfile}
	app := newProfileTestApp(service, &stubScheduler{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/profiles/1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "Cannot delete the last profile" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
}

func TestInvalidProfileIDBadRequest(t *testing.T) {
	app := newProfileTestApp(&stubProfileService{}, &stubScheduler{})

	for _, path := range []string{"/profiles/abc", "/profiles/0", "/profiles/-4"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, resp.StatusCode)
		}
	}
}
