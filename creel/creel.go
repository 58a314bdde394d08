package creel

import (
	"context"

	"github.com/creelhq/creel/creel/badges"
	"github.com/creelhq/creel/creel/database"
	"github.com/creelhq/creel/creel/database/repositories"
	"github.com/creelhq/creel/creel/services"
)

func New(cfg Config, version string, commit string) *App {
	return &App{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// App wires the badge engine's components together for the process.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	DB *database.DB

	ActivityRepository  repositories.ActivityRepository
	UserRepository      repositories.UserRepository
	BadgeRepository     repositories.BadgeRepository
	UserBadgeRepository repositories.UserBadgeRepository

	Aggregator   *badges.Aggregator
	Evaluator    *badges.Evaluator
	BadgeManager *badges.Manager
	Catalog      *badges.Catalog

	IconService   *services.IconService
	ResyncService *services.ResyncService
}

// SetupEngine builds the repositories and the badge engine on top of an
// already-connected database.
func (a *App) SetupEngine(ctx context.Context) error {
	bunDB := a.DB.BunDB()

	a.ActivityRepository = repositories.NewActivityRepository(bunDB)
	a.UserRepository = repositories.NewUserRepository(bunDB)
	a.BadgeRepository = repositories.NewBadgeRepository(bunDB)
	a.UserBadgeRepository = repositories.NewUserBadgeRepository(bunDB)

	a.Aggregator = badges.NewAggregator(a.ActivityRepository, a.UserRepository)
	a.Evaluator = badges.NewEvaluator(a.ActivityRepository, a.UserRepository)
	a.BadgeManager = badges.NewManager(a.BadgeRepository, a.UserBadgeRepository, a.Aggregator, a.Evaluator)

	catalog, err := badges.LoadCatalog(ctx, a.BadgeRepository)
	if err != nil {
		return err
	}
	a.Catalog = catalog

	a.ResyncService = services.NewResyncService(a.BadgeManager, a.UserRepository)
	return nil
}

func (a *App) Close() {
	if a.ResyncService != nil {
		a.ResyncService.Stop()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
