package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/admindocx/admindoc-backend/internal/extraction/dates"
	"github.com/admindocx/admindoc-backend/internal/extraction/events"
	"github.com/admindocx/admindoc-backend/internal/extraction/extractor"
	"github.com/admindocx/admindoc-backend/internal/extraction/handler"
	"github.com/admindocx/admindoc-backend/internal/extraction/model"
	"github.com/admindocx/admindoc-backend/internal/extraction/ocr"
	"github.com/admindocx/admindoc-backend/internal/extraction/repository"
	"github.com/admindocx/admindoc-backend/internal/extraction/service"
	"github.com/admindocx/admindoc-backend/internal/extraction/storage"
	"github.com/admindocx/admindoc-backend/pkg/config"
	"github.com/admindocx/admindoc-backend/pkg/database"
	"github.com/admindocx/admindoc-backend/pkg/httputil"
	"github.com/admindocx/admindoc-backend/pkg/logger"
	"github.com/admindocx/admindoc-backend/pkg/messaging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration
	cfg, err := config.Load("extraction-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("extraction-service", cfg.Server.Environment)
	log.Info().Msg("starting Extraction Service")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Connect to RabbitMQ
	rmq, err := messaging.New(&cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rmq.Close()

	// Initialize event publisher
	publisher, err := events.NewDocumentEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event publisher")
	}

	// Initialize repository
	auditRepo := repository.NewAuditRepository(db)

	// Initialize collaborator clients
	ocrClient := ocr.NewClient(
		cfg.Collaborators.OCRServiceURL,
		cfg.Collaborators.OCRLanguages,
		cfg.Collaborators.RequestTimeout,
	)
	var modelClient service.Classifier
	if cfg.Collaborators.ModelEnabled {
		modelClient = model.NewClient(cfg.Collaborators.ModelServiceURL, cfg.Collaborators.RequestTimeout)
		log.Info().Str("url", cfg.Collaborators.ModelServiceURL).Msg("token classification enabled")
	}

	// Initialize extraction engine
	resultStore := storage.NewResultStore(cfg.Extraction.ResultTTL)
	ruleExtractor := extractor.NewRuleExtractor(dates.NewFrEnParser())
	reviewExtractor := extractor.NewReviewExtractor()

	extractionService := service.NewService(
		ruleExtractor,
		reviewExtractor,
		ocrClient,
		modelClient,
		resultStore,
		auditRepo,
		publisher,
		log,
		cfg.Extraction.PreviewLength,
	)

	// Initialize handler
	documentHandler := handler.NewHandler(extractionService, log, cfg.Extraction.MaxUploadMB)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS - the extraction UI is served from a different origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Service index and health check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"service": "extraction-service",
			"status":  "running",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":   "healthy",
			"service":  "extraction-service",
			"database": db.Health(r.Context()),
			"rabbitmq": rmq.Health(),
		})
	})

	// API routes
	r.Route("/api/v1/documents", func(r chi.Router) {
		r.Post("/process", documentHandler.Process)
		r.Post("/process/text", documentHandler.ProcessText)
		r.Get("/{fileID}", documentHandler.GetResult)
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
