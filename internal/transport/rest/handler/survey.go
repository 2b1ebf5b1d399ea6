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

// SurveyHandler handles survey endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
	log       *zap.Logger
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService, log *zap.Logger) *SurveyHandler {
	return &SurveyHandler{
		surveySvc: surveySvc,
		log:       log,
	}
}

// CreateSurveyRequest is the request body for creating a survey
type CreateSurveyRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
}

// Create handles POST /api/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	survey := &model.Survey{
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
	}

	if err := h.surveySvc.Create(r.Context(), survey); err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.log.Error("failed to create survey", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create survey")
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// List handles GET /api/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveySvc.List(r.Context())
	if err != nil {
		h.log.Error("failed to list surveys", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list surveys")
		return
	}

	writeJSON(w, http.StatusOK, surveys)
}

// Get handles GET /api/surveys/{id}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	survey, err := h.surveySvc.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error("failed to fetch survey", zap.Error(err), zap.String("id", id))
		writeError(w, http.StatusInternalServerError, "failed to fetch survey")
		return
	}
	if survey == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// GetByLink handles GET /api/surveys/link/{link}
func (h *SurveyHandler) GetByLink(w http.ResponseWriter, r *http.Request) {
	link := mux.Vars(r)["link"]

	survey, err := h.surveySvc.GetByLink(r.Context(), link)
	if err != nil {
		h.log.Error("failed to fetch survey by link", zap.Error(err), zap.String("link", link))
		writeError(w, http.StatusInternalServerError, "failed to fetch survey")
		return
	}
	if survey == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}

	writeJSON(w, http.StatusOK, survey)
}
