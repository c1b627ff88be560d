package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	appLogger "github.com/broccolitours/itinerary-api/app/logger"
	"github.com/broccolitours/itinerary-api/app/observability/metrics"
	"github.com/broccolitours/itinerary-api/app/tracer"
	"github.com/broccolitours/itinerary-api/config"
	"github.com/broccolitours/itinerary-api/internal/api/catalog"
	"github.com/broccolitours/itinerary-api/internal/api/engine"
	"github.com/broccolitours/itinerary-api/internal/api/itinerary"
	approuter "github.com/broccolitours/itinerary-api/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer.InitTracingAndMetrics()
	metrics.InitAppMetrics()

	// --- Dependency Injection ---
	locations := catalog.NewLocationCatalog()
	rentals := catalog.NewRentalLocationCatalog()
	campers := catalog.NewCamperCatalog()
	store := itinerary.NewStore()

	eng, err := buildEngine(ctx, cfg, locations, rentals, logger)
	if err != nil {
		logger.Error("Failed to build itinerary engine", slog.Any("error", err))
		os.Exit(1)
	}

	catalogHandler := catalog.NewHandler(locations, rentals, campers, logger)
	itineraryHandler := itinerary.NewHandler(eng, store, logger)

	mainRouter := approuter.SetupRouter(&approuter.Config{
		CatalogHandler:   catalogHandler,
		ItineraryHandler: itineraryHandler,
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	srv := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Server.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}
	logger.Info("Application shut down complete.")
}

// buildEngine assembles the fallback chain from the API keys present in the
// environment. Gemini takes the primary slot when configured; OpenAI fills
// the first free slot; the stub is always the terminal tier. With no keys at
// all the service still runs, serving stub itineraries only.
func buildEngine(ctx context.Context, cfg config.Config, locations catalog.LocationCatalog, rentals catalog.RentalLocationCatalog, logger *slog.Logger) (engine.Engine, error) {
	stub := engine.NewStubEngine(locations, logger)

	var providers []engine.Engine

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := engine.NewGeminiClient(ctx, key, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		providers = append(providers, engine.NewGeminiEngine(client, locations, rentals, logger))
		logger.Info("Gemini engine configured", slog.String("model", cfg.Gemini.Model))
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client, err := engine.NewOpenAIClient(key, cfg.OpenAI.Model)
		if err != nil {
			return nil, err
		}
		providers = append(providers, engine.NewOpenAIEngine(client, locations, rentals, logger))
		logger.Info("OpenAI engine configured", slog.String("model", cfg.OpenAI.Model))
	}

	switch len(providers) {
	case 0:
		logger.Warn("No AI provider keys found, serving stub itineraries only")
		return stub, nil
	case 1:
		return engine.NewResilient(providers[0], nil, stub, logger), nil
	default:
		return engine.NewResilient(providers[0], providers[1], stub, logger), nil
	}
}

// setupLogger configures the application logger: colored logs in development,
// JSON elsewhere.
func setupLogger() *slog.Logger {
	env := os.Getenv("APP_ENV")
	if env == "development" || env == "" {
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
