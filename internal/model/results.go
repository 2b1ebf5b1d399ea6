package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// QuestionResult is the per-question tally ready for chart rendering.
// For text questions Counts/Percentages stay empty and the raw answers
// are passed through instead.
type QuestionResult struct {
	QuestionText string         `json:"questionText"`
	QuestionType QuestionType   `json:"questionType"`
	Options      []string       `json:"options,omitempty"`
	Counts       map[string]int `json:"counts,omitempty"`
	Percentages  map[string]int `json:"percentages,omitempty"`
	Total        int            `json:"total"`
	TextAnswers  []string       `json:"textAnswers,omitempty"`
}

// SurveyResults is the aggregation view over all responses to a survey.
// It is recomputed on every request, never stored.
type SurveyResults struct {
	SurveyID      primitive.ObjectID `json:"surveyId"`
	Title         string             `json:"title"`
	ResponseCount int                `json:"responseCount"`
	Questions     []QuestionResult   `json:"questions"`
}
