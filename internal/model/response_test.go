package model

import (
	"encoding/json"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAnswerValuesUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    AnswerValues
		wantErr bool
	}{
		{"bare string", `"Pizza"`, AnswerValues{"Pizza"}, false},
		{"array", `["Fries","Soup"]`, AnswerValues{"Fries", "Soup"}, false},
		{"empty array", `[]`, AnswerValues{}, false},
		{"number", `42`, nil, true},
		{"object", `{"a":1}`, nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got AnswerValues
			err := json.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) = %v, want error", c.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", c.in, err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestAnswerValuesInResponsePayload(t *testing.T) {
	payload := `{"responses":{"0":"Pizza","1":["Fries","Fruit"]}}`

	var body struct {
		Responses map[string]AnswerValues `json:"responses"`
	}
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	want := map[string]AnswerValues{
		"0": {"Pizza"},
		"1": {"Fries", "Fruit"},
	}
	if !reflect.DeepEqual(body.Responses, want) {
		t.Errorf("Responses = %v, want %v", body.Responses, want)
	}
}

func TestResponseValidate(t *testing.T) {
	valid := &Response{
		SurveyID:  primitive.NewObjectID(),
		Responses: map[string]AnswerValues{"0": {"Pizza"}},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missingSurvey := &Response{Responses: map[string]AnswerValues{"0": {"Pizza"}}}
	if err := missingSurvey.Validate(); err == nil {
		t.Error("Validate() = nil for missing surveyId, want error")
	}

	missingResponses := &Response{SurveyID: primitive.NewObjectID()}
	if err := missingResponses.Validate(); err == nil {
		t.Error("Validate() = nil for missing responses, want error")
	}

	// An empty map is still a present map
	emptyResponses := &Response{
		SurveyID:  primitive.NewObjectID(),
		Responses: map[string]AnswerValues{},
	}
	if err := emptyResponses.Validate(); err != nil {
		t.Errorf("Validate() = %v for empty responses map, want nil", err)
	}
}
