// Package main is the administration tool of the local library.
//
// It talks to the database selected by config.FromEnv and runs one subcommand per call:
//
//	catalogadmin migrate
//	catalogadmin createuser -username alice -password secret [-first Alice] [-last Smith] [-superuser] [-perm can_mark_returned]
//	catalogadmin grant -username alice -perm can_mark_returned
//	catalogadmin addgenre -name Fantasy
//	catalogadmin addinstance -book <id or isbn> -imprint "Tor, 2001" [-language English] [-status a] [-due 2024-01-31] [-borrower alice]
//	catalogadmin import catalog.json
//	catalogadmin clearsessions
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonStoeckl/locallibrary-go/catalog/oteladapters"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine"
	"github.com/AntonStoeckl/locallibrary-go/shell/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "catalogadmin:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := config.OpenStore(ctx, cfg,
		sqlengine.WithContextualLogger(oteladapters.NewSlogBridgeLoggerWithHandler(handler)),
	)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.DBDriver, err)
	}
	defer closeStore()

	return newAdmin(store, os.Stdout).execute(ctx, args)
}
