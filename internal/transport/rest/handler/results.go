package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"surveylink/internal/service"
)

// ResultsHandler serves the aggregated tally for the operator dashboard
type ResultsHandler struct {
	resultsSvc *service.ResultsService
	log        *zap.Logger
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultsSvc *service.ResultsService, log *zap.Logger) *ResultsHandler {
	return &ResultsHandler{
		resultsSvc: resultsSvc,
		log:        log,
	}
}

// Get handles GET /api/surveys/{surveyId}/results
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	results, err := h.resultsSvc.GetBySurveyID(r.Context(), surveyID)
	if err != nil {
		h.log.Error("failed to compute results", zap.Error(err), zap.String("surveyId", surveyID))
		writeError(w, http.StatusInternalServerError, "failed to compute results")
		return
	}
	if results == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}

	writeJSON(w, http.StatusOK, results)
}
