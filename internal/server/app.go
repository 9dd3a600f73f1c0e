// Package server initializes and runs the memorial application server.
// It opens the database, applies migrations, wires repositories and services
// into the HTTP surface, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/memoriam-app/memoriam/internal/blob"
	"github.com/memoriam-app/memoriam/internal/logging"
	"github.com/memoriam-app/memoriam/internal/server/auth"
	"github.com/memoriam-app/memoriam/internal/server/config"
	"github.com/memoriam-app/memoriam/internal/server/httpapi"
	"github.com/memoriam-app/memoriam/internal/server/repositories/repomanager"
	"github.com/memoriam-app/memoriam/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	state  *auth.State
	server *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	blobs := blob.NewStore(blob.Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3BaseEndpoint,
		AccessKey: cfg.S3RootUser,
		SecretKey: cfg.S3RootPassword,
	})

	userService := services.NewUserService(db, rm, cfg)
	peopleService := services.NewPeopleService(db, rm, blobs, logger)
	testimonialService := services.NewTestimonialService(db, rm, blobs, logger)
	qrService := services.NewQRService(cfg)
	draftService := services.NewDraftService(db, rm)

	state := auth.NewState()

	srv := httpapi.NewServer(cfg, logger, db, state,
		userService, peopleService, testimonialService, qrService, draftService)

	httpServer := &http.Server{
		Addr:    cfg.EndpointAddrHTTP,
		Handler: httpapi.NewRouter(srv),
	}

	return &App{config: cfg, logger: logger, db: db, state: state, server: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info("starting app", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	// startup restoration is done once the server is wired; the page guard
	// waits on this gate
	app.state.MarkReady()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error("http server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("shutdown error", "error", err)
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error("db close error", "error", err)
	}

	app.logger.Info("app stopped")
}
