package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creelhq/creel/creel"
	"github.com/creelhq/creel/creel/database"
	"github.com/creelhq/creel/creel/logger"
	"github.com/creelhq/creel/creel/migration"
	"github.com/creelhq/creel/creel/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Creel badge engine",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	syncUser := flag.String("sync", "", "run one badge sync for the given user ID and exit")
	resyncAll := flag.Bool("resync-all", false, "resync badges for every user and exit")
	importURI := flag.String("import-legacy", "", "import users and logs from the given legacy Mongo URI and exit")
	importDB := flag.String("import-db", "fishlog", "legacy Mongo database name")
	flag.Parse()

	cfg, err := creel.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()))
		os.Exit(-1)
	}
	slog.Info("Database ready",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	app := creel.New(*cfg, version, commit)
	app.DB = db
	defer app.Close()

	if err := app.SetupEngine(ctx); err != nil {
		slog.Error("Failed to set up badge engine", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Badge engine ready",
		slog.String("type", "badges"),
		slog.Int("catalog_size", app.Catalog.Len()))

	if cfg.Spaces.Key != "" {
		iconService, err := services.NewIconService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.IconRoot,
		)
		if err != nil {
			slog.Error("Failed to set up icon service", slog.Any("error", err))
			os.Exit(-1)
		}
		app.IconService = iconService
	}

	// One-shot modes.
	if *importURI != "" {
		importer := migration.NewImporter(db.BunDB(), *importURI, *importDB)
		if _, err := importer.Run(ctx); err != nil {
			slog.Error("Legacy import failed", slog.Any("error", err))
			os.Exit(-1)
		}
		return
	}
	if *syncUser != "" {
		start := time.Now()
		result, err := app.BadgeManager.Sync(ctx, *syncUser)
		if err != nil {
			logger.LogSync(*syncUser, 0, 0, time.Since(start), err)
			os.Exit(-1)
		}
		logger.LogSync(*syncUser, len(result.Awarded), len(result.Revoked), time.Since(start), nil)
		return
	}
	if *resyncAll {
		if err := app.ResyncService.ResyncAll(ctx); err != nil {
			slog.Error("Full resync failed", slog.Any("error", err))
			os.Exit(-1)
		}
		return
	}

	// Long-running mode: nightly resync until signalled.
	if err := app.ResyncService.Start(cfg.Badges.ResyncHour, cfg.Badges.ResyncMinute); err != nil {
		slog.Error("Failed to schedule nightly resync", slog.Any("error", err))
		os.Exit(-1)
	}

	logger.LogSystem("Creel is now running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-s
	logger.LogSystem("Shutting down...")
}
