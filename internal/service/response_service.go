package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"surveylink/internal/model"
	"surveylink/internal/repository"
)

// ErrSurveyNotFound is returned when a submission references a survey
// that does not exist.
var ErrSurveyNotFound = errors.New("survey not found")

// Broadcaster pushes live result updates to connected operator dashboards
type Broadcaster interface {
	BroadcastResults(surveyID string, payload interface{})
}

// ResponseService handles response submission and listing
type ResponseService struct {
	responseRepo repository.ResponseRepo
	surveyRepo   repository.SurveyRepo
	broadcaster  Broadcaster
	log          *zap.Logger
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo, surveyRepo repository.SurveyRepo, log *zap.Logger) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		surveyRepo:   surveyRepo,
		log:          log,
	}
}

// SetBroadcaster sets the broadcaster for live result updates
func (s *ResponseService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit stores one respondent's answers. The referenced survey must
// exist at submission time; the check is a lookup, not a constraint in
// the store. Answer keys and values are stored as given.
func (s *ResponseService) Submit(ctx context.Context, surveyID string, answers map[string]model.AnswerValues) (*model.Response, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	response := &model.Response{
		SurveyID:    survey.ID,
		Responses:   answers,
		SubmittedAt: time.Now(),
	}
	if err := response.Validate(); err != nil {
		return nil, err
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		s.log.Error("failed to store response", zap.Error(err), zap.String("surveyId", surveyID))
		return nil, err
	}

	s.notifyResults(ctx, survey, surveyID)
	return response, nil
}

// ListBySurvey returns all responses for a survey in store order
func (s *ResponseService) ListBySurvey(ctx context.Context, surveyID string) ([]*model.Response, error) {
	return s.responseRepo.GetBySurveyID(ctx, surveyID)
}

// notifyResults recomputes the tally and pushes it to any dashboard
// watching this survey. Failures only cost the live update, never the
// submission.
func (s *ResponseService) notifyResults(ctx context.Context, survey *model.Survey, surveyID string) {
	if s.broadcaster == nil {
		return
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		s.log.Warn("failed to load responses for live results", zap.Error(err), zap.String("surveyId", surveyID))
		return
	}

	s.broadcaster.BroadcastResults(surveyID, BuildResults(survey, responses))
}
