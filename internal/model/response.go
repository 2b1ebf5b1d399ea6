package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerValues holds the selected or typed values for one question.
// Clients send either a bare string (text and single-choice questions)
// or an array of strings (multi-select); both decode into a slice so
// the rest of the code never deals with mixed shapes.
type AnswerValues []string

func (v *AnswerValues) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = AnswerValues{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*v = many
	return nil
}

// Response is one respondent's submission for a survey. The map is
// keyed by question index ("0", "1", ...) as sent by the form.
type Response struct {
	ID          primitive.ObjectID      `json:"id,omitempty" bson:"_id,omitempty"`
	SurveyID    primitive.ObjectID      `json:"surveyId" bson:"surveyId"`
	Responses   map[string]AnswerValues `json:"responses" bson:"responses"`
	SubmittedAt time.Time               `json:"submittedAt" bson:"submittedAt"`
}

// Validate checks the required fields. Answer keys and values are
// deliberately not checked against the survey's question list; unknown
// values are ignored at aggregation time instead.
func (r *Response) Validate() error {
	if r.SurveyID.IsZero() {
		return &ValidationError{Field: "surveyId", Reason: "survey ID is required"}
	}
	if r.Responses == nil {
		return &ValidationError{Field: "responses", Reason: "responses are required"}
	}
	return nil
}
