package model

import (
	"errors"
	"testing"
)

func validSurvey() *Survey {
	return &Survey{
		Title: "Lunch",
		Questions: []Question{
			{
				QuestionText: "Pick one",
				QuestionType: QuestionTypeSingle,
				Options:      []string{"Pizza", "Salad"},
			},
		},
	}
}

func TestSurveyValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Survey)
		wantErr bool
	}{
		{"valid", func(s *Survey) {}, false},
		{"empty questions is allowed", func(s *Survey) { s.Questions = []Question{} }, false},
		{"missing title", func(s *Survey) { s.Title = "" }, true},
		{"nil questions", func(s *Survey) { s.Questions = nil }, true},
		{"question missing text", func(s *Survey) { s.Questions[0].QuestionText = "" }, true},
		{"question missing type", func(s *Survey) { s.Questions[0].QuestionType = "" }, true},
		{"unknown question type", func(s *Survey) { s.Questions[0].QuestionType = "ranking" }, true},
		{"choice question missing options", func(s *Survey) { s.Questions[0].Options = nil }, true},
		{"text question without options", func(s *Survey) {
			s.Questions[0] = Question{QuestionText: "Comments?", QuestionType: QuestionTypeText}
		}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := validSurvey()
			c.mutate(s)
			err := s.Validate()
			if c.wantErr && err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Validate() returned %T, want *ValidationError", err)
				}
			}
		})
	}
}

func TestQuestionTypeValid(t *testing.T) {
	for _, qt := range []QuestionType{QuestionTypeText, QuestionTypeSingle, QuestionTypeMultiple} {
		if !qt.Valid() {
			t.Errorf("Valid() = false for %q", qt)
		}
	}
	if QuestionType("ranking").Valid() {
		t.Error(`Valid() = true for "ranking"`)
	}
}
