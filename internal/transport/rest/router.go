package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"surveylink/internal/service"
	"surveylink/internal/transport/rest/handler"
	"surveylink/internal/transport/rest/middleware"
	"surveylink/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	SurveyService   *service.SurveyService
	ResponseService *service.ResponseService
	ResultsService  *service.ResultsService
	WSHub           *ws.Hub
	CORSOrigins     string
	Log             *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService, c.Log)
	responseHandler := handler.NewResponseHandler(c.ResponseService, c.Log)
	resultsHandler := handler.NewResultsHandler(c.ResultsService, c.Log)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.SurveyService, c.Log)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(newCORSMiddleware(c.CORSOrigins))

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/surveys/link/{link}", surveyHandler.GetByLink).Methods("GET", "OPTIONS")
	api.HandleFunc("/surveys/{id}", surveyHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/surveys/{surveyId}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/surveys/{surveyId}/responses", responseHandler.List).Methods("GET", "OPTIONS")

	// WebSocket route (token travels as a query param)
	api.HandleFunc("/ws/surveys/{surveyId}/results", wsHandler.ResultsWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Operator routes (require operator auth)
	operatorRoutes := api.NewRoute().Subrouter()
	operatorRoutes.Use(authMW.RequireOperator)

	operatorRoutes.HandleFunc("/surveys/{surveyId}/results", resultsHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func newCORSMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
