package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"surveylink/internal/link"
	"surveylink/internal/model"
	"surveylink/internal/testutil"
)

func newTestSurveyService(store *testutil.SurveyStore) *SurveyService {
	return NewSurveyService(store, nil, zap.NewNop())
}

func TestSurveyServiceCreateAssignsLink(t *testing.T) {
	store := testutil.NewSurveyStore()
	svc := newTestSurveyService(store)

	survey := &model.Survey{
		Title: "Lunch",
		Questions: []model.Question{
			{QuestionText: "Pick one", QuestionType: model.QuestionTypeSingle, Options: []string{"Pizza", "Salad"}},
		},
	}
	if err := svc.Create(context.Background(), survey); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if !link.Valid(survey.ShareableLink) {
		t.Errorf("ShareableLink = %q, want 12 hex characters", survey.ShareableLink)
	}
	if survey.ID.IsZero() {
		t.Error("ID not assigned on create")
	}
	if survey.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped on create")
	}
}

func TestSurveyServiceCreateLinksAreDistinct(t *testing.T) {
	store := testutil.NewSurveyStore()
	svc := newTestSurveyService(store)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		survey := &model.Survey{Title: "S", Questions: []model.Question{}}
		if err := svc.Create(context.Background(), survey); err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if seen[survey.ShareableLink] {
			t.Fatalf("duplicate shareable link %q", survey.ShareableLink)
		}
		seen[survey.ShareableLink] = true
	}
}

func TestSurveyServiceCreateValidatesBeforeWrite(t *testing.T) {
	store := testutil.NewSurveyStore()
	svc := newTestSurveyService(store)

	survey := &model.Survey{Title: "", Questions: []model.Question{}}
	err := svc.Create(context.Background(), survey)
	if err == nil {
		t.Fatal("Create = nil for invalid survey, want error")
	}

	surveys, _ := store.List(context.Background())
	if len(surveys) != 0 {
		t.Errorf("store holds %d surveys after failed validation, want 0", len(surveys))
	}
}

func TestSurveyServiceRoundTrip(t *testing.T) {
	store := testutil.NewSurveyStore()
	svc := newTestSurveyService(store)

	survey := &model.Survey{
		Title:       "Lunch",
		Description: "weekly",
		Questions: []model.Question{
			{QuestionText: "Pick one", QuestionType: model.QuestionTypeSingle, Options: []string{"Pizza", "Salad"}},
		},
	}
	if err := svc.Create(context.Background(), survey); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.GetByID(context.Background(), survey.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID = nil for just-created survey")
	}
	if got.Title != survey.Title || got.Description != survey.Description ||
		got.ShareableLink != survey.ShareableLink || len(got.Questions) != len(survey.Questions) {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, survey)
	}
}

func TestSurveyServiceGetByLink(t *testing.T) {
	store := testutil.NewSurveyStore()
	svc := newTestSurveyService(store)

	survey := &model.Survey{Title: "Lunch", Questions: []model.Question{}}
	if err := svc.Create(context.Background(), survey); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.GetByLink(context.Background(), survey.ShareableLink)
	if err != nil {
		t.Fatalf("GetByLink error: %v", err)
	}
	if got == nil || got.ID != survey.ID {
		t.Errorf("GetByLink = %v, want survey %s", got, survey.ID.Hex())
	}

	unused, err := link.Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	absent, err := svc.GetByLink(context.Background(), unused)
	if err != nil {
		t.Fatalf("GetByLink error for unused token: %v", err)
	}
	if absent != nil {
		t.Errorf("GetByLink = %v for unused token, want nil", absent)
	}
}
