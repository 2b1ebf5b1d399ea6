package model

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeText     QuestionType = "text"     // Free text, no options
	QuestionTypeSingle   QuestionType = "single"   // Pick one option
	QuestionTypeMultiple QuestionType = "multiple" // Pick any number of options
)

// Valid reports whether the type is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeSingle, QuestionTypeMultiple:
		return true
	}
	return false
}

// Survey is a persistent questionnaire created by an operator.
// It is write-once: no exposed operation updates or deletes it.
type Survey struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Questions     []Question         `json:"questions" bson:"questions"`
	ShareableLink string             `json:"shareableLink" bson:"shareableLink"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// Question is embedded in a survey and has no identity of its own.
// Options are required for every type except text.
type Question struct {
	QuestionText string       `json:"questionText" bson:"questionText"`
	QuestionType QuestionType `json:"questionType" bson:"questionType"`
	Options      []string     `json:"options,omitempty" bson:"options,omitempty"`
}

// Validate checks the survey and all embedded questions.
// Kept as a separate step so handlers can surface field-level failures
// before any write is attempted.
func (s *Survey) Validate() error {
	if s.Title == "" {
		return &ValidationError{Field: "title", Reason: "survey title is required"}
	}
	if s.Questions == nil {
		return &ValidationError{Field: "questions", Reason: "questions must be an array"}
	}
	for i := range s.Questions {
		if err := s.Questions[i].Validate(i); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single question. The index is only used to name
// the offending question in the failure message.
func (q *Question) Validate(index int) error {
	field := "questions[" + strconv.Itoa(index) + "]"
	if q.QuestionText == "" {
		return &ValidationError{Field: field, Reason: "question is missing text"}
	}
	if q.QuestionType == "" {
		return &ValidationError{Field: field, Reason: "question is missing type"}
	}
	if !q.QuestionType.Valid() {
		return &ValidationError{Field: field, Reason: "unknown question type " + string(q.QuestionType)}
	}
	if q.QuestionType != QuestionTypeText && q.Options == nil {
		return &ValidationError{Field: field, Reason: "question of type " + string(q.QuestionType) + " is missing options array"}
	}
	return nil
}
