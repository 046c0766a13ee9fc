// Package server initializes and runs the main application server.
// It opens the database, applies migrations, wires services to the GraphQL
// layer, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/linkboard/internal/logging"
	"github.com/dmitrijs2005/linkboard/internal/server/auth"
	"github.com/dmitrijs2005/linkboard/internal/server/config"
	"github.com/dmitrijs2005/linkboard/internal/server/graph"
	"github.com/dmitrijs2005/linkboard/internal/server/pubsub"
	"github.com/dmitrijs2005/linkboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkboard/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	issuer   *auth.TokenIssuer
	resolver *graph.Resolver
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	broker := pubsub.NewBroker(logger)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	issuer := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration)

	userService := services.NewUserService(db, rm, hasher, issuer)
	linkService := services.NewLinkService(db, rm, broker)
	voteService := services.NewVoteService(db, rm, broker)

	resolver := graph.NewResolver(logger, userService, linkService, voteService, broker)

	return &App{config: cfg, logger: logger, db: db, issuer: issuer, resolver: resolver}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := graph.NewServer(app.config.EndpointAddrHTTP, app.logger, app.resolver, app.issuer)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}
}
