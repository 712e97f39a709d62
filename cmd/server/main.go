package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"weddingrsvp/internal/config"
	"weddingrsvp/internal/database"
	"weddingrsvp/internal/handlers"
	"weddingrsvp/internal/logger"
	"weddingrsvp/internal/matching"
	"weddingrsvp/internal/metrics"
	"weddingrsvp/internal/repository"
	"weddingrsvp/internal/security"
	"weddingrsvp/internal/service"
	"weddingrsvp/internal/sessionstore"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", false)
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	log.Info().Str("type", cfg.DatabaseType).Msg("Database connection established")

	applied, err := db.RunMigrations(cfg.MigrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	log.Info().Strs("applied", applied).Msg("Migrations completed successfully")

	m := metrics.New()

	// Initialize repositories
	guestRepo := repository.NewGuestRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	// Initialize services
	emailService, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName,
		logger.Component(log, "email"), cfg.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize email service")
	}
	if emailService.IsEnabled() && cfg.NotifyEmail == "" {
		log.Warn().Msg("NOTIFY_EMAIL not set, RSVP notifications will not be sent")
	}

	directoryService := service.NewDirectoryService(guestRepo,
		service.WithLogger(logger.Component(log, "directory")), service.WithMetrics(m))
	resolverService := service.NewResolverService(guestRepo, matching.NewMatcher(cfg.ResolverThreshold), cfg.ResolverMissDelay,
		service.WithLogger(logger.Component(log, "resolver")), service.WithMetrics(m))
	collectorService := service.NewCollectorService(resolverService, rsvpRepo, emailService, cfg.NotifyEmail,
		service.WithLogger(logger.Component(log, "collector")), service.WithMetrics(m))
	reconciliationService := service.NewReconciliationService(guestRepo, rsvpRepo,
		service.WithLogger(logger.Component(log, "reconciliation")))
	backupService := service.NewBackupService(db, service.WithLogger(logger.Component(log, "backup")))

	sessions, closeSessions := newSessionStore(ctx, cfg, log)
	defer closeSessions()

	tokens := security.NewTokenVerifier(cfg.AdminJWTSecret)
	if !tokens.Enabled() {
		log.Warn().Msg("ADMIN_JWT_SECRET not set, admin API will reject every request")
	}

	// Initialize handlers
	csrf := security.NewCSRFGenerator(csrfSecret(cfg, log))
	middleware := handlers.NewMiddleware(tokens, roleRepo, csrf)
	rsvpHandler := handlers.NewRSVPHandler(collectorService, sessions, csrf, cfg.SessionTTL)
	adminHandler := handlers.NewAdminHandler(directoryService, reconciliationService, backupService)

	// Setup routes
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, middleware, rsvpHandler, adminHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	// Wrap with logging middleware
	handler := handlers.Logging(logger.Component(log, "http"), m)(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	log.Info().Msg("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

// newSessionStore uses Redis when REDIS_URL is set and process memory otherwise
func newSessionStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (sessionstore.Store, func()) {
	if cfg.RedisURL == "" {
		store := sessionstore.NewMemoryStore(cfg.SessionTTL)
		store.StartCleanup(ctx, 10*time.Minute)
		log.Info().Dur("ttl", cfg.SessionTTL).Msg("Using in-memory session store")
		return store, func() {}
	}

	client, err := sessionstore.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	log.Info().Dur("ttl", cfg.SessionTTL).Msg("Using Redis session store")
	return sessionstore.NewRedisStore(client, cfg.SessionTTL), func() { client.Close() }
}

// csrfSecret returns the configured secret, or a random one that only suits a single instance
func csrfSecret(cfg *config.Config, log zerolog.Logger) string {
	if cfg.CSRFSecret != "" {
		return cfg.CSRFSecret
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate CSRF secret")
	}
	log.Warn().Msg("CSRF_SECRET not set, generated a per-process secret")
	return hex.EncodeToString(buf)
}
