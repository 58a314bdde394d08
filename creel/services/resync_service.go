package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"golang.org/x/sync/errgroup"

	"github.com/creelhq/creel/creel/badges"
	"github.com/creelhq/creel/creel/database/repositories"
	"github.com/creelhq/creel/creel/logger"
)

const resyncConcurrency = 8

// ResyncService runs the nightly full badge resync: one Sync pass per user,
// a bounded number of users in flight at once. Users are independent, so
// the only serialization needed is one pass per user at a time, which the
// single nightly job already guarantees.
type ResyncService struct {
	manager   *badges.Manager
	users     repositories.UserRepository
	scheduler gocron.Scheduler
}

func NewResyncService(manager *badges.Manager, users repositories.UserRepository) *ResyncService {
	return &ResyncService{
		manager: manager,
		users:   users,
	}
}

// Start schedules the nightly run. The scheduler owns its own goroutines;
// Stop shuts them down.
func (s *ResyncService) Start(hour, minute int) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			if err := s.ResyncAll(ctx); err != nil {
				logger.LogError("Nightly badge resync failed", err)
			}
		}),
	)
	if err != nil {
		return err
	}

	sched.Start()
	s.scheduler = sched
	slog.Info("Nightly badge resync scheduled",
		slog.String("type", "badges"),
		slog.Int("hour", hour),
		slog.Int("minute", minute))
	return nil
}

func (s *ResyncService) Stop() error {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Shutdown()
}

// ResyncAll syncs every user's badge set. A failing user aborts the batch;
// the job-level retry handles transient storage failures.
func (s *ResyncService) ResyncAll(ctx context.Context) error {
	start := time.Now()

	userIDs, err := s.users.GetAllUserIDs(ctx)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(resyncConcurrency)

	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			syncStart := time.Now()
			result, err := s.manager.Sync(ctx, userID)
			if err != nil {
				logger.LogSync(userID, 0, 0, time.Since(syncStart), err)
				return err
			}
			if len(result.Awarded) > 0 || len(result.Revoked) > 0 {
				logger.LogSync(userID, len(result.Awarded), len(result.Revoked), time.Since(syncStart), nil)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Badge resync completed",
		slog.String("type", "badges"),
		slog.Int("users", len(userIDs)),
		slog.Duration("took", time.Since(start)))
	return nil
}
