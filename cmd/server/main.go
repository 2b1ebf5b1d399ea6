package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"surveylink/internal/cache"
	"surveylink/internal/config"
	"surveylink/internal/repository"
	"surveylink/internal/service"
	"surveylink/internal/transport/rest"
	"surveylink/internal/transport/ws"
	"surveylink/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %s", err)
	}
	defer zl.Sync()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zl.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		zl.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	zl.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDBName)

	// Redis connection; the survey cache is an optimization, the service
	// runs without it
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	var surveyCache cache.SurveyCache
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		zl.Warn("Redis unavailable, survey cache disabled", zap.Error(err))
	} else {
		surveyCache = cache.NewSurveyCache(rdb, cfg.SurveyCacheTTL)
		zl.Info("connected to Redis")
	}

	// Initialize repositories
	surveyRepo := repository.NewSurveyRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	idxCtx, idxCancel := context.WithTimeout(ctx, 10*time.Second)
	defer idxCancel()
	if err := surveyRepo.EnsureIndexes(idxCtx); err != nil {
		zl.Error("failed to ensure survey indexes", zap.Error(err))
	}
	if err := responseRepo.EnsureIndexes(idxCtx); err != nil {
		zl.Error("failed to ensure response indexes", zap.Error(err))
	}

	// Initialize WebSocket hub
	wsHub := ws.NewHub(zl)

	// Initialize services
	authSvc := service.NewAuthService(cfg.OperatorUsername, cfg.OperatorPassword, cfg.JWTSecret)
	surveySvc := service.NewSurveyService(surveyRepo, surveyCache, zl)
	responseSvc := service.NewResponseService(responseRepo, surveyRepo, zl)
	resultsSvc := service.NewResultsService(surveyRepo, responseRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	responseSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:     authSvc,
		SurveyService:   surveySvc,
		ResponseService: responseSvc,
		ResultsService:  resultsSvc,
		WSHub:           wsHub,
		CORSOrigins:     cfg.CORSOrigins,
		Log:             zl,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		zl.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exited")
}
