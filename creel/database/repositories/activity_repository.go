package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/creelhq/creel/creel/database/models"
	"github.com/uptrace/bun"
)

// Hour boundaries used by all time-of-day partitions. Records without a
// logged hour fall outside every partition.
const (
	EarlyHourCutoff = 7
	LateHourCutoff  = 21
)

// Day segment keys returned by SumByDaySegment.
const (
	SegmentMorning   = "morning"
	SegmentAfternoon = "afternoon"
	SegmentEvening   = "evening"
)

// Columns accepted by the per-entity and distinct-per-day aggregates.
var entityColumns = map[string]bool{
	"species_id":  true,
	"location_id": true,
	"rod_id":      true,
	"fly_id":      true,
}

// Columns accepted by ActivityFilter.Conditions and CountWhereLogged.
var conditionColumns = map[string]bool{
	"weather":       true,
	"wind":          true,
	"pressure":      true,
	"water_clarity": true,
	"water_level":   true,
	"water_speed":   true,
	"tide":          true,
	"surface":       true,
}

var ErrUnknownColumn = errors.New("unknown activity column")

type GroupSum struct {
	Key   string  `bun:"key"`
	Total float64 `bun:"total"`
}

type MonthSum struct {
	Month int     `bun:"month"`
	Total float64 `bun:"total"`
}

// DayRollup is one calendar day of activity, pre-aggregated.
type DayRollup struct {
	Date         time.Time `bun:"date"`
	Quantity     float64   `bun:"quantity"`
	SpeciesCount int       `bun:"species_count"`
	Segments     int       `bun:"segments"`
	MaxSize      float64   `bun:"max_size"`
	Skunked      bool      `bun:"skunked"`
}

// ActivityTotals is the single-row aggregate over a user's whole history.
type ActivityTotals struct {
	Trips         int     `bun:"trips"`
	TotalCaught   float64 `bun:"total_caught"`
	FishingDays   int     `bun:"fishing_days"`
	MaxSize       float64 `bun:"max_size"`
	MaxWeight     float64 `bun:"max_weight"`
	SpeciesCount  int     `bun:"species_count"`
	LocationCount int     `bun:"location_count"`
	RodCount      int     `bun:"rod_count"`
	FlyCount      int     `bun:"fly_count"`
	NotesCount    int     `bun:"notes_count"`
	WeighedCount  int     `bun:"weighed_count"`
	MeasuredCount int     `bun:"measured_count"`
	EarlySum      float64 `bun:"early_sum"`
	LateSum       float64 `bun:"late_sum"`
	MoonUpSum     float64 `bun:"moon_up_sum"`
	MoonDownSum   float64 `bun:"moon_down_sum"`
}

// WaterTypeTotals is one water-type partition of the size statistics.
type WaterTypeTotals struct {
	WaterType string  `bun:"water_type"`
	MaxSize   float64 `bun:"max_size"`
	Keepers   int     `bun:"keepers"`
	Trophies  int     `bun:"trophies"`
}

type CompanionTotals struct {
	MaxOnRecord int `bun:"max_on_record"`
	Distinct    int `bun:"distinct_companions"`
}

type MonthDay struct {
	Month time.Month
	Day   int
}

// ActivityFilter is the conjunction of record-level predicates used by the
// existence, sum and distinct-date queries. Zero value matches everything.
type ActivityFilter struct {
	MinQuantity *int
	MinSize     *float64
	DaySegment  *string
	MoonPhases  []string
	Months      []int
	MonthDay    *MonthDay
	// Conditions maps a condition column to its accepted raw values.
	Conditions  map[string][]string
	WithFriends *bool
	WeekendOnly bool
	WeekdayOnly bool
}

type ActivityRepository interface {
	GetAllByUserID(ctx context.Context, userID string) ([]*models.Activity, error)

	// Fixed aggregate queries consumed by the stats aggregator.
	Totals(ctx context.Context, userID string) (*ActivityTotals, error)
	SumByDaySegment(ctx context.Context, userID string) ([]GroupSum, error)
	SumByMoonPhase(ctx context.Context, userID string) ([]GroupSum, error)
	SumByMonth(ctx context.Context, userID string) ([]MonthSum, error)
	DayRollups(ctx context.Context, userID string) ([]DayRollup, error)
	WaterTypeTotals(ctx context.Context, userID string, keeperFresh, trophyFresh, keeperSalt, trophySalt float64) ([]WaterTypeTotals, error)
	MaxSumByEntity(ctx context.Context, userID, column string) (float64, error)
	MaxCountByEntity(ctx context.Context, userID, column string) (int, error)

	// Direct queries for requirement kinds that cannot reduce to a statistic.
	MaxDistinctPerDay(ctx context.Context, userID, column string) (int, error)
	ExistsMatching(ctx context.Context, userID string, f ActivityFilter) (bool, error)
	SumMatching(ctx context.Context, userID string, f ActivityFilter) (float64, error)
	DistinctDatesMatching(ctx context.Context, userID string, f ActivityFilter) ([]time.Time, error)
	CompanionTotals(ctx context.Context, userID string) (*CompanionTotals, error)
	CountWhereLogged(ctx context.Context, userID, column string) (int, error)
	SizeProgression(ctx context.Context, userID string) ([]float64, error)
}

type activityRepository struct {
	db *bun.DB
}

func NewActivityRepository(db *bun.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) GetAllByUserID(ctx context.Context, userID string) ([]*models.Activity, error) {
	var activities []*models.Activity
	err := r.db.NewSelect().
		Model(&activities).
		Where("user_id = ?", userID).
		Order("date ASC", "id ASC").
		Scan(ctx)
	return activities, err
}

func (r *activityRepository) Totals(ctx context.Context, userID string) (*ActivityTotals, error) {
	totals := new(ActivityTotals)
	err := r.db.NewSelect().
		TableExpr("activities AS a").
		ColumnExpr("COUNT(*) AS trips").
		ColumnExpr("COALESCE(SUM(a.quantity), 0) AS total_caught").
		ColumnExpr("COUNT(DISTINCT a.date) AS fishing_days").
		ColumnExpr("COALESCE(MAX(a.max_size), 0) AS max_size").
		ColumnExpr("COALESCE(MAX(a.max_weight), 0) AS max_weight").
		ColumnExpr("COUNT(DISTINCT a.species_id) AS species_count").
		ColumnExpr("COUNT(DISTINCT a.location_id) AS location_count").
		ColumnExpr("COUNT(DISTINCT a.rod_id) AS rod_count").
		ColumnExpr("COUNT(DISTINCT a.fly_id) AS fly_count").
		ColumnExpr("COUNT(*) FILTER (WHERE a.notes <> '') AS notes_count").
		ColumnExpr("COUNT(*) FILTER (WHERE a.max_weight IS NOT NULL) AS weighed_count").
		ColumnExpr("COUNT(*) FILTER (WHERE a.max_size IS NOT NULL) AS measured_count").
		ColumnExpr("COALESCE(SUM(a.quantity) FILTER (WHERE a.hour_of_day < ?), 0) AS early_sum", EarlyHourCutoff).
		ColumnExpr("COALESCE(SUM(a.quantity) FILTER (WHERE a.hour_of_day >= ?), 0) AS late_sum", LateHourCutoff).
		ColumnExpr("COALESCE(SUM(a.quantity) FILTER (WHERE a.moon_up), 0) AS moon_up_sum").
		ColumnExpr("COALESCE(SUM(a.quantity) FILTER (WHERE NOT a.moon_up), 0) AS moon_down_sum").
		Where("a.user_id = ?", userID).
		Scan(ctx, totals)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate activity totals: %w", err)
	}
	return totals, nil
}

const daySegmentExpr = `CASE
	WHEN a.hour_of_day BETWEEN 5 AND 11 THEN 'morning'
	WHEN a.hour_of_day BETWEEN 12 AND 17 THEN 'afternoon'
	WHEN a.hour_of_day BETWEEN 18 AND 23 THEN 'evening'
END`

func (r *activityRepository) SumByDaySegment(ctx context.Context, userID string) ([]GroupSum, error) {
	var sums []GroupSum
	err := r.db.NewSelect().
		TableExpr("activities AS a").
		ColumnExpr(daySegmentExpr+" AS key").
		ColumnExpr("COALESCE(SUM(a.quantity), 0) AS total").
		Where("a.user_id = ?", userID).
		Where("a.hour_of_day IS NOT NULL").
		GroupExpr(daySegmentExpr).
		Scan(ctx, &sums)
	if err != nil {
		return nil, err
	}
	return withoutEmptyKeys(sums), nil
}

func (r *activityRepository) SumByMoonPhase(ctx context.Context, userID string) ([]GroupSum, error) {
	var sums []GroupSum
	err := r.db.NewSelect().
		TableExpr("activities AS a").
		ColumnExpr("a.moon_phase AS key").
		ColumnExpr("COALESCE(SUM(a.quantity), 0) AS total").
		Where("a.user_id = ?", userID).
		Where("a.moon_phase IS NOT NULL").
		GroupExpr("a.moon_phase").
		Scan(ctx, &sums)
	return sums, err
}

func (r *activityRepository) SumByMonth(ctx context.Context, userID string) ([]MonthSum, error) {
	var sums []MonthSum
	err := r.db.NewSelect().
		TableExpr("activities AS a").
		ColumnExpr("EXTRACT(MONTH FROM a.date)::int AS month").
		ColumnExpr("COALESCE(SUM(a.quantity), 0) AS total").
		Where("a.user_id = ?", userID).
		GroupExpr("EXTRACT(MONTH FROM a.date)").
		Scan(ctx, &sums)
	return sums, err
}

func (r *activityRepository) DayRollups(ctx context.Context, userID string) ([]DayRollup, error) {
	var days []DayRollup
	err := r.db.NewSelect().
		TableExpr("activities AS a").
		ColumnExpr("a.date AS date").
		ColumnExpr("COALESCE(SUM(a.quantity), 0) AS quantity").
		ColumnExpr("COUNT(DISTINCT a.species_id) AS species_count").
		ColumnExpr("COUNT(DISTINCT "+daySegmentExpr+") AS segments").
		ColumnExpr("COALESCE(MAX(a.max_size), 0) AS max_size").
		ColumnExpr("BOOL_OR(a.quantity = 0) AS skunked").
		Where("a.user_id = ?", userID).
		GroupExpr("a.date").
		OrderExpr("a.date ASC").
		Scan(ctx, &days)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate day rollups: %w", err)
	}
	return days, nil
}

func (r *activityRepository) WaterTypeTotals(ctx context.Context, userID string, keeperFresh, trophyFresh, keeperSalt, trophySalt float64) ([]WaterTypeTotals, error) {
	var totals []WaterTypeTotals
	err := r.db.NewSelect().
		TableExpr("activities AS a").
		Join("JOIN species AS sp ON sp.id = a.species_id").
		ColumnExpr("sp.water_type AS water_type").
		ColumnExpr("COALESCE(MAX(a.max_size), 0) AS max_size").
		ColumnExpr(`COUNT(*) FILTER (WHERE a.max_size >= CASE sp.water_type
			WHEN 'saltwater' THEN ?::float8 ELSE ?::float8 END) AS keepers`, keeperSalt, keeperFresh).
		ColumnExpr(`COUNT(*) FILTER (WHERE a.max_size >= CASE sp.water_type
			WHEN 'saltwater' THEN ?::float8 ELSE ?::float8 END) AS trophies`, trophySalt, trophyFresh).
		Where("a.user_id = ?", userID).
		GroupExpr("sp.water_type").
		Scan(ctx, &totals)
	return totals, err
}

func (r *activityRepository) MaxSumByEntity(ctx context.Context, userID, column string) (float64, error) {
	if !entityColumns[column] {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	var max float64
	err := r.db.NewSelect().
		ColumnExpr("COALESCE(MAX(t.total), 0)").
		TableExpr("(?) AS t", r.db.NewSelect().
			TableExpr("activities AS a").
			ColumnExpr("SUM(a.quantity) AS total").
			Where("a.user_id = ?", userID).
			Where("a.? IS NOT NULL", bun.Ident(column)).
			GroupExpr("a.?", bun.Ident(column))).
		Scan(ctx, &max)
	return max, err
}

func (r *activityRepository) MaxCountByEntity(ctx context.Context, userID, column string) (int, error) {
	if !entityColumns[column] {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	var max int
	err := r.db.NewSelect().
		ColumnExpr("COALESCE(MAX(t.visits), 0)").
		TableExpr("(?) AS t", r.db.NewSelect().
			TableExpr("activities AS a").
			ColumnExpr("COUNT(DISTINCT a.date) AS visits").
			Where("a.user_id = ?", userID).
			Where("a.? IS NOT NULL", bun.Ident(column)).
			GroupExpr("a.?", bun.Ident(column))).
		Scan(ctx, &max)
	return max, err
}

func (r *activityRepository) MaxDistinctPerDay(ctx context.Context, userID, column string) (int, error) {
	if !entityColumns[column] {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	var max int
	err := r.db.NewSelect().
		ColumnExpr("COALESCE(MAX(t.cnt), 0)").
		TableExpr("(?) AS t", r.db.NewSelect().
			TableExpr("activities AS a").
			ColumnExpr("COUNT(DISTINCT a.?) AS cnt", bun.Ident(column)).
			Where("a.user_id = ?", userID).
			Where("a.? IS NOT NULL", bun.Ident(column)).
			GroupExpr("a.date")).
		Scan(ctx, &max)
	return max, err
}

func (r *activityRepository) ExistsMatching(ctx context.Context, userID string, f ActivityFilter) (bool, error) {
	q := r.db.NewSelect().
		TableExpr("activities AS a").
		Where("a.user_id = ?", userID)
	q, err := applyFilter(q, f)
	if err != nil {
		return false, err
	}
	return q.Exists(ctx)
}

func (r *activityRepository) SumMatching(ctx context.Context, userID string, f ActivityFilter) (float64, error) {
	q := r.db.NewSelect().
		TableExpr("activities AS a").
		ColumnExpr("COALESCE(SUM(a.quantity), 0)").
		Where("a.user_id = ?", userID)
	q, err := applyFilter(q, f)
	if err != nil {
		return 0, err
	}
	var total float64
	if err := q.Scan(ctx, &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *activityRepository) DistinctDatesMatching(ctx context.Context, userID string, f ActivityFilter) ([]time.Time, error) {
	q := r.db.NewSelect().
		TableExpr("activities AS a").
		ColumnExpr("DISTINCT a.date").
		Where("a.user_id = ?", userID).
		OrderExpr("a.date ASC")
	q, err := applyFilter(q, f)
	if err != nil {
		return nil, err
	}
	var dates []time.Time
	if err := q.Scan(ctx, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *activityRepository) CompanionTotals(ctx context.Context, userID string) (*CompanionTotals, error) {
	totals := new(CompanionTotals)
	err := r.db.NewSelect().
		TableExpr("activities AS a").
		ColumnExpr("COALESCE(MAX(COALESCE(array_length(a.friend_ids, 1), 0)), 0) AS max_on_record").
		ColumnExpr("(SELECT COUNT(DISTINCT fid) FROM activities a2, unnest(a2.friend_ids) AS fid WHERE a2.user_id = ?) AS distinct_companions", userID).
		Where("a.user_id = ?", userID).
		Scan(ctx, totals)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &CompanionTotals{}, nil
		}
		return nil, err
	}
	return totals, nil
}

func (r *activityRepository) CountWhereLogged(ctx context.Context, userID, column string) (int, error) {
	if !conditionColumns[column] {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	return r.db.NewSelect().
		TableExpr("activities AS a").
		Where("a.user_id = ?", userID).
		Where("a.? IS NOT NULL", bun.Ident(column)).
		Where("a.? <> ''", bun.Ident(column)).
		Count(ctx)
}

func (r *activityRepository) SizeProgression(ctx context.Context, userID string) ([]float64, error) {
	var sizes []float64
	err := r.db.NewSelect().
		TableExpr("activities AS a").
		ColumnExpr("a.max_size").
		Where("a.user_id = ?", userID).
		Where("a.max_size IS NOT NULL").
		OrderExpr("a.date ASC, a.id ASC").
		Scan(ctx, &sizes)
	return sizes, err
}

func applyFilter(q *bun.SelectQuery, f ActivityFilter) (*bun.SelectQuery, error) {
	if f.MinQuantity != nil {
		q = q.Where("a.quantity >= ?", *f.MinQuantity)
	}
	if f.MinSize != nil {
		q = q.Where("a.max_size >= ?", *f.MinSize)
	}
	if f.DaySegment != nil {
		switch *f.DaySegment {
		case SegmentMorning:
			q = q.Where("a.hour_of_day BETWEEN 5 AND 11")
		case SegmentAfternoon:
			q = q.Where("a.hour_of_day BETWEEN 12 AND 17")
		case SegmentEvening:
			q = q.Where("a.hour_of_day BETWEEN 18 AND 23")
		default:
			return nil, fmt.Errorf("unknown day segment: %s", *f.DaySegment)
		}
	}
	if len(f.MoonPhases) > 0 {
		q = q.Where("a.moon_phase IN (?)", bun.In(f.MoonPhases))
	}
	if len(f.Months) > 0 {
		q = q.Where("EXTRACT(MONTH FROM a.date) IN (?)", bun.In(f.Months))
	}
	if f.MonthDay != nil {
		q = q.Where("EXTRACT(MONTH FROM a.date) = ?", int(f.MonthDay.Month)).
			Where("EXTRACT(DAY FROM a.date) = ?", f.MonthDay.Day)
	}
	for col, vals := range f.Conditions {
		if !conditionColumns[col] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, col)
		}
		q = q.Where("a.? IN (?)", bun.Ident(col), bun.In(vals))
	}
	if f.WithFriends != nil {
		if *f.WithFriends {
			q = q.Where("COALESCE(array_length(a.friend_ids, 1), 0) > 0")
		} else {
			q = q.Where("COALESCE(array_length(a.friend_ids, 1), 0) = 0")
		}
	}
	if f.WeekendOnly {
		q = q.Where("EXTRACT(ISODOW FROM a.date) IN (6, 7)")
	}
	if f.WeekdayOnly {
		q = q.Where("EXTRACT(ISODOW FROM a.date) BETWEEN 1 AND 5")
	}
	return q, nil
}

func withoutEmptyKeys(sums []GroupSum) []GroupSum {
	out := sums[:0]
	for _, s := range sums {
		if s.Key != "" {
			out = append(out, s)
		}
	}
	return out
}
