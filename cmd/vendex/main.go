package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vivaha-cloud/vendex/internal/config"
	"github.com/vivaha-cloud/vendex/internal/db"
	dbRedis "github.com/vivaha-cloud/vendex/internal/db/redis"
	logpkg "github.com/vivaha-cloud/vendex/internal/logger"
	"github.com/vivaha-cloud/vendex/internal/metrics"
	"github.com/vivaha-cloud/vendex/internal/repository/searchcache"
	chiTransport "github.com/vivaha-cloud/vendex/internal/transport/chi"
	geminiSug "github.com/vivaha-cloud/vendex/internal/transport/gemini"
	"github.com/vivaha-cloud/vendex/internal/transport/nocodb"
	openaiSug "github.com/vivaha-cloud/vendex/internal/transport/openai"
	"github.com/vivaha-cloud/vendex/internal/transport/serper"
	discoveryuc "github.com/vivaha-cloud/vendex/internal/usecase/discovery"
	"github.com/vivaha-cloud/vendex/internal/usecase/enrich"
	healthuc "github.com/vivaha-cloud/vendex/internal/usecase/health"
	suggestionuc "github.com/vivaha-cloud/vendex/internal/usecase/suggestion"
	surveyuc "github.com/vivaha-cloud/vendex/internal/usecase/survey"
	"github.com/vivaha-cloud/vendex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()
	if env == "local" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting vendex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("suggestion_provider", cfg.Suggestion.Provider),
	)

	ctx := context.Background()

	// Cache store is optional: without it the search cache is disabled.
	var store db.Store
	if len(cfg.Database.Addrs) > 0 {
		redisStore, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer redisStore.Close()

		readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := redisStore.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		store = redisStore
		logger.Info("Connected to cache store")
	} else {
		logger.Info("No cache store configured, search cache disabled")
	}

	// Register domain metrics explicitly (no init())
	metrics.RegisterDiscoveryMetrics()

	// Search provider — composition root.
	// No API key means fallback-only discovery.
	var provider discoveryuc.SearchProvider
	if cfg.Search.APIKey != "" {
		serperClient := serper.NewClient(&serper.Config{
			APIKey:            cfg.Search.APIKey,
			BaseURL:           cfg.Search.BaseURL,
			Country:           cfg.Search.Country,
			ResultCount:       cfg.Search.ResultCount,
			RequestsPerSecond: cfg.Search.RequestsPerSecond,
			Logger:            logger,
		})
		provider = serperClient
		if store != nil {
			ttl := time.Duration(cfg.Discovery.CacheTTLSec) * time.Second
			provider = searchcache.New(serperClient, store, ttl, metrics.SearchCacheTotal, logger)
		}
	} else {
		logger.Warn("No search API key configured, serving fallback vendors only")
	}

	discoverySvc := discoveryuc.New(provider, logger).
		WithMaxResults(cfg.Discovery.MaxResults)
	if cfg.Discovery.EnrichContacts {
		discoverySvc = discoverySvc.WithEnricher(enrich.NewExtractor(logger))
	}

	// Suggestion provider switch
	var generator suggestionuc.Generator
	var suggestionChecker healthuc.SuggestionChecker
	switch cfg.Suggestion.Provider {
	case "openai":
		sug := openaiSug.NewSuggester(&openaiSug.Config{
			APIKey:      cfg.Suggestion.OpenAI.APIKey,
			BaseURL:     cfg.Suggestion.OpenAI.BaseURL,
			Model:       cfg.Suggestion.OpenAI.Model,
			Temperature: cfg.Suggestion.OpenAI.Temperature,
			MaxTokens:   cfg.Suggestion.OpenAI.MaxTokens,
			Logger:      logger,
		})
		generator = sug
		suggestionChecker = sug
	case "gemini":
		sug, err := geminiSug.NewSuggester(ctx, &geminiSug.Config{
			APIKey: cfg.Suggestion.Gemini.APIKey,
			Model:  cfg.Suggestion.Gemini.Model,
			Logger: logger,
		})
		if err != nil {
			logger.Fatal("Failed to create gemini suggester", zap.Error(err))
		}
		generator = sug
		suggestionChecker = sug
	}
	suggestionSvc := suggestionuc.New(generator, cfg.Suggestion.Provider, logger)

	// Survey store is optional: without it the survey endpoints return 501.
	var surveySvc *surveyuc.Service
	if cfg.Survey.BaseURL != "" {
		surveyStore := nocodb.NewClient(&nocodb.Config{
			BaseURL:  cfg.Survey.BaseURL,
			APIToken: cfg.Survey.APIToken,
			TableID:  cfg.Survey.TableID,
			Logger:   logger,
		})
		surveySvc = surveyuc.New(surveyStore, logger)
	}

	// Health service. Avoid the typed-nil-in-interface gotcha for the store.
	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(cachePinger, suggestionChecker)

	server := chiTransport.NewServer(discoverySvc, suggestionSvc, surveySvc, healthSvc, logger)
	handler := server.Routes(
		jsonRecoverer(logger),
		chiMiddleware.RequestID,
		wideEventMiddleware(logger),
		chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys),
		metrics.Middleware(),
	)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
