package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/creelhq/creel/creel/database/models"
)

// Importer copies users and activity logs out of the legacy Mongo deployment
// into Postgres. It is a one-shot administrative tool; badge awards are not
// migrated because a full resync after import recomputes them from history.
type Importer struct {
	pgDB      *bun.DB
	mongoURI  string
	mongoName string
	batchSize int

	mongoDB *mongo.Database
	stats   ImportStats
}

type ImportStats struct {
	Users      int
	Activities int
	Skipped    int
	StartTime  time.Time
}

// legacyUser mirrors the legacy Mongo user document, profile fields omitted.
type legacyUser struct {
	DiscordID string     `bson:"discord_id"`
	Username  string     `bson:"username"`
	Birthday  *time.Time `bson:"birthday,omitempty"`
	Premium   bool       `bson:"premium"`
	Joined    time.Time  `bson:"joined"`
}

// legacyLog mirrors the legacy Mongo fishing-log document.
type legacyLog struct {
	UserID    string     `bson:"user_id"`
	Date      time.Time  `bson:"date"`
	Hour      *int       `bson:"hour,omitempty"`
	Quantity  int        `bson:"quantity"`
	MaxSize   *float64   `bson:"max_size,omitempty"`
	MaxWeight *float64   `bson:"max_weight,omitempty"`
	Species   *int64     `bson:"species_id,omitempty"`
	Location  *int64     `bson:"location_id,omitempty"`
	Rod       *int64     `bson:"rod_id,omitempty"`
	Fly       *int64     `bson:"fly_id,omitempty"`
	Friends   []string   `bson:"friends,omitempty"`
	Weather   *string    `bson:"weather,omitempty"`
	Wind      *string    `bson:"wind,omitempty"`
	Pressure  *string    `bson:"pressure,omitempty"`
	Clarity   *string    `bson:"water_clarity,omitempty"`
	Level     *string    `bson:"water_level,omitempty"`
	Speed     *string    `bson:"water_speed,omitempty"`
	Tide      *string    `bson:"tide,omitempty"`
	Surface   *string    `bson:"surface,omitempty"`
	MoonPhase *string    `bson:"moon_phase,omitempty"`
	MoonUp    *bool      `bson:"moon_up,omitempty"`
	Notes     string     `bson:"notes,omitempty"`
}

func NewImporter(pgDB *bun.DB, mongoURI, mongoName string) *Importer {
	return &Importer{
		pgDB:      pgDB,
		mongoURI:  mongoURI,
		mongoName: mongoName,
		batchSize: 1000,
		stats:     ImportStats{StartTime: time.Now()},
	}
}

func (im *Importer) SetBatchSize(size int) {
	if size > 0 {
		im.batchSize = size
	}
}

// Run connects to Mongo, imports users then activities, and reports totals.
func (im *Importer) Run(ctx context.Context) (*ImportStats, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(im.mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo unreachable: %w", err)
	}
	im.mongoDB = client.Database(im.mongoName)

	if err := im.importUsers(ctx); err != nil {
		return nil, err
	}
	if err := im.importActivities(ctx); err != nil {
		return nil, err
	}

	slog.Info("Legacy import completed",
		slog.String("type", "db"),
		slog.Int("users", im.stats.Users),
		slog.Int("activities", im.stats.Activities),
		slog.Int("skipped", im.stats.Skipped),
		slog.Duration("took", time.Since(im.stats.StartTime)))
	return &im.stats, nil
}

func (im *Importer) importUsers(ctx context.Context) error {
	cursor, err := im.mongoDB.Collection("users").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query legacy users: %w", err)
	}
	defer cursor.Close(ctx)

	var batch []*models.User
	for cursor.Next(ctx) {
		var lu legacyUser
		if err := cursor.Decode(&lu); err != nil {
			im.stats.Skipped++
			continue
		}
		if lu.DiscordID == "" {
			im.stats.Skipped++
			continue
		}

		created := lu.Joined
		if created.IsZero() {
			created = time.Now()
		}
		batch = append(batch, &models.User{
			UserID:    lu.DiscordID,
			Username:  lu.Username,
			Birthday:  lu.Birthday,
			Premium:   lu.Premium,
			CreatedAt: created,
		})

		if len(batch) >= im.batchSize {
			if err := im.flushUsers(ctx, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("legacy user cursor failed: %w", err)
	}
	if len(batch) > 0 {
		if err := im.flushUsers(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) flushUsers(ctx context.Context, batch []*models.User) error {
	_, err := im.pgDB.NewInsert().
		Model(&batch).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert user batch: %w", err)
	}
	im.stats.Users += len(batch)
	return nil
}

func (im *Importer) importActivities(ctx context.Context) error {
	cursor, err := im.mongoDB.Collection("logs").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query legacy logs: %w", err)
	}
	defer cursor.Close(ctx)

	var batch []*models.Activity
	for cursor.Next(ctx) {
		var ll legacyLog
		if err := cursor.Decode(&ll); err != nil {
			im.stats.Skipped++
			continue
		}
		a, ok := convertLog(&ll)
		if !ok {
			im.stats.Skipped++
			continue
		}
		batch = append(batch, a)

		if len(batch) >= im.batchSize {
			if err := im.flushActivities(ctx, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("legacy log cursor failed: %w", err)
	}
	if len(batch) > 0 {
		if err := im.flushActivities(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) flushActivities(ctx context.Context, batch []*models.Activity) error {
	_, err := im.pgDB.NewInsert().
		Model(&batch).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert activity batch: %w", err)
	}
	im.stats.Activities += len(batch)
	return nil
}

// convertLog maps one legacy log to an activity record. Records without a
// user or date cannot feed any statistic and are dropped.
func convertLog(ll *legacyLog) (*models.Activity, bool) {
	if ll.UserID == "" || ll.Date.IsZero() {
		return nil, false
	}
	if ll.Quantity < 0 {
		ll.Quantity = 0
	}
	if ll.Hour != nil && (*ll.Hour < 0 || *ll.Hour > 23) {
		ll.Hour = nil
	}

	return &models.Activity{
		UserID:       ll.UserID,
		Date:         ll.Date.UTC().Truncate(24 * time.Hour),
		HourOfDay:    ll.Hour,
		Quantity:     ll.Quantity,
		MaxSize:      ll.MaxSize,
		MaxWeight:    ll.MaxWeight,
		SpeciesID:    ll.Species,
		LocationID:   ll.Location,
		RodID:        ll.Rod,
		FlyID:        ll.Fly,
		FriendIDs:    ll.Friends,
		Weather:      ll.Weather,
		Wind:         ll.Wind,
		Pressure:     ll.Pressure,
		WaterClarity: ll.Clarity,
		WaterLevel:   ll.Level,
		WaterSpeed:   ll.Speed,
		Tide:         ll.Tide,
		Surface:      ll.Surface,
		MoonPhase:    ll.MoonPhase,
		MoonUp:       ll.MoonUp,
		Notes:        ll.Notes,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, true
}
