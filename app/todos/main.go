package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mann-127/duoapi/bridge/repositories/todosrepobridge"
	"github.com/mann-127/duoapi/bridge/scaffolding/metrics"
	"github.com/mann-127/duoapi/bridge/scaffolding/mid"
	"github.com/mann-127/duoapi/core/repositories/todosrepo"
	"github.com/mann-127/duoapi/core/repositories/todosrepo/stores/todospgxstore"
	"github.com/mann-127/duoapi/infrastructure/postgresdb"
	"github.com/mann-127/duoapi/infrastructure/web"
	"github.com/mann-127/duoapi/sdk/logger"
	"github.com/mann-127/duoapi/sdk/telemetry"
)

var build = "develop"

const appName = "TODOS"

func main() {
	godotenv.Load()
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuring logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.Error("startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	instanceID := uuid.NewString()
	log.InfoContext(ctx, "startup",
		"build", build,
		"instance_id", instanceID,
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
	)

	log.InfoContext(ctx, "startup", "status", "initializing store support")
	pool, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring store support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing store connection")
		pool.Close()
	}()

	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	todoRepository := todosrepo.NewRepository(log, todospgxstore.NewStore(log, pool))

	handler, err := buildHandler(log, todoRepository)
	if err != nil {
		return fmt.Errorf("web handler: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("web server: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig.String())
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig.String())

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func buildHandler(log *logger.Logger, todoRepository *todosrepo.Repository) (http.Handler, error) {
	tel := telemetry.NewTelemetry()

	wh, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(log.Logger),
		web.WithTelemetry(tel),
		web.WithGlobalMiddleware(
			mid.Logger(log),
			mid.Errors(log),
			mid.Metrics(),
			mid.Panics(),
		),
	)
	if err != nil {
		return nil, err
	}

	api := wh.Group("/api")
	todosrepobridge.AddHttpRoutes(wh, api, todosrepobridge.Config{
		Log:        log,
		Repository: todoRepository,
	})

	wh.HandleRaw("GET /metrics", metrics.Handler())

	return wh, nil
}
