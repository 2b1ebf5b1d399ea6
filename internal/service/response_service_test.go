package service

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"surveylink/internal/model"
	"surveylink/internal/testutil"
)

type recordingBroadcaster struct {
	mu       sync.Mutex
	surveyID string
	payload  interface{}
	calls    int
}

func (b *recordingBroadcaster) BroadcastResults(surveyID string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.surveyID = surveyID
	b.payload = payload
	b.calls++
}

func newSubmitFixture(t *testing.T) (*ResponseService, *testutil.SurveyStore, *testutil.ResponseStore, *model.Survey) {
	t.Helper()
	surveyStore := testutil.NewSurveyStore()
	responseStore := testutil.NewResponseStore()
	svc := NewResponseService(responseStore, surveyStore, zap.NewNop())

	survey := &model.Survey{
		Title: "Lunch",
		Questions: []model.Question{
			{QuestionText: "Pick one", QuestionType: model.QuestionTypeSingle, Options: []string{"Pizza", "Salad"}},
		},
		ShareableLink: "a1b2c3d4e5f6",
	}
	if err := surveyStore.Create(context.Background(), survey); err != nil {
		t.Fatalf("Create survey: %v", err)
	}
	return svc, surveyStore, responseStore, survey
}

func TestResponseServiceSubmit(t *testing.T) {
	svc, _, responseStore, survey := newSubmitFixture(t)

	response, err := svc.Submit(context.Background(), survey.ID.Hex(), map[string]model.AnswerValues{"0": {"Pizza"}})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if response.ID.IsZero() {
		t.Error("response ID not assigned")
	}
	if response.SurveyID != survey.ID {
		t.Errorf("SurveyID = %s, want %s", response.SurveyID.Hex(), survey.ID.Hex())
	}
	if response.SubmittedAt.IsZero() {
		t.Error("SubmittedAt not stamped")
	}

	stored, err := responseStore.GetBySurveyID(context.Background(), survey.ID.Hex())
	if err != nil {
		t.Fatalf("GetBySurveyID error: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("store holds %d responses, want 1", len(stored))
	}
	if !reflect.DeepEqual(stored[0].Responses["0"], model.AnswerValues{"Pizza"}) {
		t.Errorf(`Responses["0"] = %v, want [Pizza]`, stored[0].Responses["0"])
	}
}

func TestResponseServiceSubmitUnknownSurvey(t *testing.T) {
	svc, _, responseStore, _ := newSubmitFixture(t)

	_, err := svc.Submit(context.Background(), primitive.NewObjectID().Hex(), map[string]model.AnswerValues{"0": {"Pizza"}})
	if !errors.Is(err, ErrSurveyNotFound) {
		t.Fatalf("Submit error = %v, want ErrSurveyNotFound", err)
	}

	stored, _ := responseStore.GetBySurveyID(context.Background(), primitive.NewObjectID().Hex())
	if len(stored) != 0 {
		t.Errorf("store holds %d responses after rejected submission, want 0", len(stored))
	}
}

func TestResponseServiceSubmitMissingResponses(t *testing.T) {
	svc, _, _, survey := newSubmitFixture(t)

	_, err := svc.Submit(context.Background(), survey.ID.Hex(), nil)
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Submit error = %v, want *model.ValidationError", err)
	}
}

func TestResponseServiceSubmitBroadcastsResults(t *testing.T) {
	svc, _, _, survey := newSubmitFixture(t)
	broadcaster := &recordingBroadcaster{}
	svc.SetBroadcaster(broadcaster)

	if _, err := svc.Submit(context.Background(), survey.ID.Hex(), map[string]model.AnswerValues{"0": {"Pizza"}}); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	broadcaster.mu.Lock()
	defer broadcaster.mu.Unlock()
	if broadcaster.calls != 1 {
		t.Fatalf("broadcaster called %d times, want 1", broadcaster.calls)
	}
	if broadcaster.surveyID != survey.ID.Hex() {
		t.Errorf("broadcast surveyID = %q, want %q", broadcaster.surveyID, survey.ID.Hex())
	}
	results, ok := broadcaster.payload.(*model.SurveyResults)
	if !ok {
		t.Fatalf("broadcast payload is %T, want *model.SurveyResults", broadcaster.payload)
	}
	if results.Questions[0].Counts["Pizza"] != 1 {
		t.Errorf("broadcast Counts[Pizza] = %d, want 1", results.Questions[0].Counts["Pizza"])
	}
}

func TestResponseServiceListBySurvey(t *testing.T) {
	svc, _, _, survey := newSubmitFixture(t)

	for _, answer := range []string{"Pizza", "Pizza", "Salad"} {
		if _, err := svc.Submit(context.Background(), survey.ID.Hex(), map[string]model.AnswerValues{"0": {answer}}); err != nil {
			t.Fatalf("Submit error: %v", err)
		}
	}

	responses, err := svc.ListBySurvey(context.Background(), survey.ID.Hex())
	if err != nil {
		t.Fatalf("ListBySurvey error: %v", err)
	}
	if len(responses) != 3 {
		t.Errorf("ListBySurvey returned %d responses, want 3", len(responses))
	}
}
