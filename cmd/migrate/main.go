package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/autoshift-labs/autoshift-backend/pkg/config"
	"github.com/autoshift-labs/autoshift-backend/pkg/db"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/migrate"
)

// Usage: migrate [-dir pkg/migrate/migrations] <up|down|status|version> [args]
func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", migrate.DefaultDir, "directory with migration files")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [-dir dir] <command> [args]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "autoshift-migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})
	ctx := context.Background()

	client, err := db.New(ctx, cfg.DB, log)
	if err != nil {
		log.Error(ctx, "database bootstrap failed", err)
		os.Exit(1)
	}
	defer client.Close()

	sqlDB, err := client.DB().DB()
	if err != nil {
		log.Error(ctx, "extracting sql handle failed", err)
		os.Exit(1)
	}

	command := args[0]
	if err := migrate.Run(ctx, sqlDB, *dir, command, args[1:]...); err != nil {
		log.Error(ctx, "migration command failed", err)
		os.Exit(1)
	}
	log.Info(log.WithField(ctx, "command", command), "migration command completed")
}
