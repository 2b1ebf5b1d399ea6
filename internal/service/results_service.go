package service

import (
	"context"
	"math"
	"strconv"

	"surveylink/internal/model"
	"surveylink/internal/repository"
)

// ResultsService computes the aggregation view over a survey's responses
type ResultsService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
}

// NewResultsService creates a new results service
func NewResultsService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo) *ResultsService {
	return &ResultsService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
	}
}

// GetBySurveyID loads the survey and all its responses and tallies them.
// Returns (nil, nil) when the survey does not exist.
func (s *ResultsService) GetBySurveyID(ctx context.Context, surveyID string) (*model.SurveyResults, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, nil
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	return BuildResults(survey, responses), nil
}

// BuildResults tallies, per non-text question, how often each declared
// option was selected. Answer values outside the declared option set
// are ignored rather than rejected; the submission form is the only
// place that constrains them. Text questions get their answers passed
// through untallied. Pure computation, nothing is persisted.
func BuildResults(survey *model.Survey, responses []*model.Response) *model.SurveyResults {
	results := &model.SurveyResults{
		SurveyID:      survey.ID,
		Title:         survey.Title,
		ResponseCount: len(responses),
		Questions:     make([]model.QuestionResult, 0, len(survey.Questions)),
	}

	for i, q := range survey.Questions {
		key := strconv.Itoa(i)
		qr := model.QuestionResult{
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Options:      q.Options,
		}

		if q.QuestionType == model.QuestionTypeText {
			for _, resp := range responses {
				qr.TextAnswers = append(qr.TextAnswers, resp.Responses[key]...)
			}
			qr.Total = len(qr.TextAnswers)
			results.Questions = append(results.Questions, qr)
			continue
		}

		counts := make(map[string]int, len(q.Options))
		for _, opt := range q.Options {
			counts[opt] = 0
		}

		total := 0
		for _, resp := range responses {
			for _, value := range resp.Responses[key] {
				if _, ok := counts[value]; ok {
					counts[value]++
					total++
				}
			}
		}

		percentages := make(map[string]int, len(counts))
		for opt, n := range counts {
			if total == 0 {
				percentages[opt] = 0
				continue
			}
			percentages[opt] = int(math.Round(float64(n) / float64(total) * 100))
		}

		qr.Counts = counts
		qr.Percentages = percentages
		qr.Total = total
		results.Questions = append(results.Questions, qr)
	}

	return results
}
