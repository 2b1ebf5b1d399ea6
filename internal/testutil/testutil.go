// Package testutil provides in-memory repository implementations so
// service and handler tests can run without a MongoDB instance.
package testutil

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"surveylink/internal/model"
)

// ErrDuplicateLink mimics the unique index violation on shareableLink.
var ErrDuplicateLink = errors.New("duplicate shareable link")

// SurveyStore is an in-memory repository.SurveyRepo
type SurveyStore struct {
	mu      sync.Mutex
	surveys map[primitive.ObjectID]*model.Survey

	// CreateErr, when set, makes every Create fail with it.
	CreateErr error
}

func NewSurveyStore() *SurveyStore {
	return &SurveyStore{surveys: make(map[primitive.ObjectID]*model.Survey)}
}

func (s *SurveyStore) Create(ctx context.Context, survey *model.Survey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return s.CreateErr
	}
	for _, existing := range s.surveys {
		if existing.ShareableLink == survey.ShareableLink {
			return ErrDuplicateLink
		}
	}

	survey.ID = primitive.NewObjectID()
	copied := *survey
	s.surveys[survey.ID] = &copied
	return nil
}

func (s *SurveyStore) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	survey, ok := s.surveys[oid]
	if !ok {
		return nil, nil
	}
	copied := *survey
	return &copied, nil
}

func (s *SurveyStore) GetByLink(ctx context.Context, link string) (*model.Survey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, survey := range s.surveys {
		if survey.ShareableLink == link {
			copied := *survey
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *SurveyStore) List(ctx context.Context) ([]*model.Survey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	surveys := []*model.Survey{}
	for _, survey := range s.surveys {
		copied := *survey
		surveys = append(surveys, &copied)
	}
	return surveys, nil
}

func (s *SurveyStore) EnsureIndexes(ctx context.Context) error { return nil }

// ResponseStore is an in-memory repository.ResponseRepo
type ResponseStore struct {
	mu        sync.Mutex
	responses []*model.Response

	CreateErr error
}

func NewResponseStore() *ResponseStore {
	return &ResponseStore{}
}

func (s *ResponseStore) Create(ctx context.Context, response *model.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return s.CreateErr
	}

	response.ID = primitive.NewObjectID()
	copied := *response
	s.responses = append(s.responses, &copied)
	return nil
}

func (s *ResponseStore) GetBySurveyID(ctx context.Context, surveyID string) ([]*model.Response, error) {
	oid, err := primitive.ObjectIDFromHex(surveyID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	responses := []*model.Response{}
	for _, response := range s.responses {
		if response.SurveyID == oid {
			copied := *response
			responses = append(responses, &copied)
		}
	}
	return responses, nil
}

func (s *ResponseStore) EnsureIndexes(ctx context.Context) error { return nil }
