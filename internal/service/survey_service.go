package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"surveylink/internal/cache"
	"surveylink/internal/link"
	"surveylink/internal/model"
	"surveylink/internal/repository"
)

// SurveyService handles survey authoring and lookup
type SurveyService struct {
	surveyRepo  repository.SurveyRepo
	surveyCache cache.SurveyCache
	log         *zap.Logger
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo, surveyCache cache.SurveyCache, log *zap.Logger) *SurveyService {
	return &SurveyService{
		surveyRepo:  surveyRepo,
		surveyCache: surveyCache,
		log:         log,
	}
}

// Create validates the survey, assigns its shareable link and persists it.
// Validation runs before any write so a bad payload never reaches the store.
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) error {
	if err := survey.Validate(); err != nil {
		return err
	}

	token, err := link.Generate()
	if err != nil {
		return err
	}
	survey.ShareableLink = token
	survey.CreatedAt = time.Now()

	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		s.log.Error("failed to create survey", zap.Error(err))
		return err
	}
	return nil
}

// GetByID retrieves a survey by its internal ID. Returns (nil, nil) when absent.
func (s *SurveyService) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	return s.surveyRepo.GetByID(ctx, id)
}

// GetByLink retrieves a survey by its shareable link, trying the cache
// first. Cache failures are treated as misses; respondents hit this
// path on every form load.
func (s *SurveyService) GetByLink(ctx context.Context, linkToken string) (*model.Survey, error) {
	if s.surveyCache != nil {
		survey, err := s.surveyCache.GetByLink(ctx, linkToken)
		if err != nil {
			s.log.Warn("survey cache read failed", zap.Error(err), zap.String("link", linkToken))
		} else if survey != nil {
			return survey, nil
		}
	}

	survey, err := s.surveyRepo.GetByLink(ctx, linkToken)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, nil
	}

	if s.surveyCache != nil {
		if err := s.surveyCache.Set(ctx, survey); err != nil {
			s.log.Warn("survey cache write failed", zap.Error(err), zap.String("link", linkToken))
		}
	}
	return survey, nil
}

// List retrieves all surveys
func (s *SurveyService) List(ctx context.Context) ([]*model.Survey, error) {
	return s.surveyRepo.List(ctx)
}
