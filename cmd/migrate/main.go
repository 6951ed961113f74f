package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"sport-rental/internal/handler/middleware"
	"sport-rental/internal/pkg/config"
	"sport-rental/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const applyTimeout = 2 * time.Minute

// Applies migrations/001_initial_schema.sql declaratively: Atlas diffs the
// live database against the file and runs only the missing statements.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := apply(cfg, logger); err != nil {
		logger.Error("Schema apply failed", "error", err)
		os.Exit(1)
	}
}

func apply(cfg config.Config, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.Migrate.AtlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to create atlas client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          cfg.Migrate.SchemaURL,
		DevURL:      cfg.Migrate.DevURL,
		AutoApprove: true,
	})
	if err != nil {
		return errs.Wrap(err, "atlas schema apply")
	}

	logger.Info("Schema applied", "database", cfg.DB.DBName, "statements", len(res.Changes.Applied))
	return nil
}
