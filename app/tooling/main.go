package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mann-127/duoapi/infrastructure/postgresdb"
	"github.com/mann-127/duoapi/sdk/logger"
)

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
		log.Error("tooling", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "migrate":
		pool, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return fmt.Errorf("configuring store support: %w", err)
		}
		defer pool.Close()

		log.InfoContext(ctx, "running migrations")
		if err := postgresdb.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate store: %w", err)
		}
		log.InfoContext(ctx, "migrations completed")
		return nil

	default:
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  migrate - create the todos schema in the store")
}
