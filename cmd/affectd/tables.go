package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/affectd/internal/config"
	"github.com/udisondev/affectd/internal/data"
	"github.com/udisondev/affectd/internal/db"
)

// loadTables reads the affect tables from the configured source.
func loadTables(ctx context.Context, cfg config.Affectd) (*data.Tables, error) {
	switch cfg.Tables.Source {
	case config.SourceYAML:
		return data.LoadYAMLTables(cfg.Tables.YAMLPath)
	case config.SourceTSV:
		return data.LoadTSVTables(cfg.Tables.TSVDir)
	case config.SourcePostgres:
		return loadPostgresTables(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown table source %q", cfg.Tables.Source)
	}
}

func loadPostgresTables(ctx context.Context, cfg config.Affectd) (*data.Tables, error) {
	var seedPath string
	if cfg.Database.SeedFromYAML {
		seedPath = cfg.Tables.YAMLPath
	}
	slog.Info("loading tables from database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
	return loadDatabaseTables(ctx, cfg.Database.DSN(), cfg.Database.Migrate, seedPath)
}

// loadDatabaseTables optionally migrates dsn, seeds it from the YAML file at
// seedPath when one is given, and loads the tables back.
func loadDatabaseTables(ctx context.Context, dsn string, migrate bool, seedPath string) (*data.Tables, error) {
	if migrate {
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")
	}

	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	repo := database.Tables()

	if seedPath != "" {
		seed, err := data.LoadYAMLTables(seedPath)
		if err != nil {
			return nil, fmt.Errorf("loading seed tables: %w", err)
		}
		if err := repo.Save(ctx, seed); err != nil {
			return nil, fmt.Errorf("seeding tables: %w", err)
		}
		slog.Info("database seeded", "path", seedPath, "affects", len(seed.Affects))
	}

	return repo.Load(ctx)
}
