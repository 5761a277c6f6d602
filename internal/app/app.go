package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/workshopkit/workshop-backend/internal/adapter/postgres"
	"github.com/workshopkit/workshop-backend/internal/adapter/postgres/finalstatement"
	"github.com/workshopkit/workshop-backend/internal/adapter/postgres/participant"
	"github.com/workshopkit/workshop-backend/internal/adapter/postgres/pin"
	sessionrepo "github.com/workshopkit/workshop-backend/internal/adapter/postgres/session"
	statementrepo "github.com/workshopkit/workshop-backend/internal/adapter/postgres/statement"
	"github.com/workshopkit/workshop-backend/internal/adapter/postgres/voting"
	"github.com/workshopkit/workshop-backend/internal/auth"
	"github.com/workshopkit/workshop-backend/internal/config"
	"github.com/workshopkit/workshop-backend/internal/service/session"
	"github.com/workshopkit/workshop-backend/internal/service/statement"
	"github.com/workshopkit/workshop-backend/internal/service/vote"
	"github.com/workshopkit/workshop-backend/internal/transport/middleware"
	"github.com/workshopkit/workshop-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until the
// context is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: connect to database: %w", err)
	}
	defer pool.Close()

	sessionRepo := sessionrepo.New(pool)
	participantRepo := participant.New(pool)
	statementRepo := statementrepo.New(pool)
	pinRepo := pin.New(pool)
	finalRepo := finalstatement.New(pool)
	votingRepo := voting.New(pool)
	txm := postgres.NewTxManager(pool)

	sessionService := session.NewService(
		logger, sessionRepo, participantRepo, statementRepo,
		pinRepo, finalRepo, votingRepo, txm,
	)
	statementService := statement.NewService(
		logger, sessionRepo, participantRepo, statementRepo, pinRepo, txm,
	)
	voteService := vote.NewService(
		logger, sessionRepo, participantRepo, votingRepo, txm,
		cfg.Workshop.PointBudget,
	)

	mux := rest.NewRouter(
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewSessionHandler(logger, sessionService),
		rest.NewStatementHandler(logger, statementService),
		rest.NewVoteHandler(logger, voteService),
	)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}

	if cfg.Auth.Enabled() {
		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
		mws = append(mws, middleware.Auth(jwtManager))
	} else {
		logger.Warn("token validation disabled, all callers are anonymous")
	}

	handler := middleware.Chain(mws...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app.Run: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Run: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
