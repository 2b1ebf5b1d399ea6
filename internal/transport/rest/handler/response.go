package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"surveylink/internal/model"
	"surveylink/internal/service"
)

// ResponseHandler handles response submission and listing endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
	log         *zap.Logger
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService, log *zap.Logger) *ResponseHandler {
	return &ResponseHandler{
		responseSvc: responseSvc,
		log:         log,
	}
}

// SubmitResponseRequest is the request body for submitting a response
type SubmitResponseRequest struct {
	Responses map[string]model.AnswerValues `json:"responses"`
}

// Submit handles POST /api/surveys/{surveyId}/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.responseSvc.Submit(r.Context(), surveyID, req.Responses)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "survey not found")
			return
		}
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.log.Error("failed to submit response", zap.Error(err), zap.String("surveyId", surveyID))
		writeError(w, http.StatusInternalServerError, "failed to submit response")
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// List handles GET /api/surveys/{surveyId}/responses
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	responses, err := h.responseSvc.ListBySurvey(r.Context(), surveyID)
	if err != nil {
		h.log.Error("failed to list responses", zap.Error(err), zap.String("surveyId", surveyID))
		writeError(w, http.StatusInternalServerError, "failed to list responses")
		return
	}

	writeJSON(w, http.StatusOK, responses)
}
