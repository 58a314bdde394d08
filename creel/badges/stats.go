package badges

import (
	"context"
	"fmt"
	"time"

	"github.com/creelhq/creel/creel/database/models"
	"github.com/creelhq/creel/creel/database/repositories"
)

// Stats is the flat statistics map one evaluation pass is computed against.
// It is built once per sync and treated as immutable for the rest of the
// pass; missing keys read as 0 through Get.
type Stats map[string]float64

func (s Stats) Get(key string) float64 {
	return s[key]
}

// Has reports whether the key was actually computed, as opposed to reading
// a zero default.
func (s Stats) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Statistic keys. These names are stable contract points with the badge
// catalog's requirement_field column; renaming one is a data migration.
const (
	StatTotalCaught   = "total_caught"
	StatTotalTrips    = "total_trips"
	StatFishingDays   = "fishing_days"
	StatBiggestCatch  = "biggest_catch"
	StatHeaviestCatch = "heaviest_catch"
	StatSpeciesCount  = "species_count"
	StatLocationCount = "location_count"
	StatRodCount      = "rod_count"
	StatFlyCount      = "fly_count"

	StatFreshwaterBiggest  = "freshwater_biggest"
	StatSaltwaterBiggest   = "saltwater_biggest"
	StatFreshwaterKeepers  = "freshwater_keepers"
	StatSaltwaterKeepers   = "saltwater_keepers"
	StatFreshwaterTrophies = "freshwater_trophies"
	StatSaltwaterTrophies  = "saltwater_trophies"
	StatTrophyCount        = "trophy_count"

	StatEarlyBirdCatches = "early_bird_catches"
	StatNightOwlCatches  = "night_owl_catches"
	StatMorningCatches   = "morning_catches"
	StatAfternoonCatches = "afternoon_catches"
	StatEveningCatches   = "evening_catches"

	StatFullMoonCatches = "full_moon_catches"
	StatNewMoonCatches  = "new_moon_catches"
	StatWaxingCatches   = "waxing_catches"
	StatWaningCatches   = "waning_catches"
	StatMoonUpCatches   = "moon_up_catches"
	StatMoonDownCatches = "moon_down_catches"
	StatMoonPhaseCount  = "moon_phase_count"

	StatSpringCatches = "spring_catches"
	StatSummerCatches = "summer_catches"
	StatFallCatches   = "fall_catches"
	StatWinterCatches = "winter_catches"
	StatSeasonCount   = "season_count"
	StatMonthCount    = "month_count"

	StatBestDayCatches = "best_day_catches"
	StatBestDaySpecies = "best_day_species"

	StatFishingStreak = "fishing_streak"
	StatCatchStreak   = "catch_streak"
	StatNoSkunkStreak = "no_skunk_streak"
	StatCurrentStreak = "current_streak"

	StatMostVisitsLocation = "most_visits_location"
	StatMostCaughtSpecies  = "most_caught_species"
	StatMostCaughtRod      = "most_caught_rod"
	StatMostCaughtFly      = "most_caught_fly"

	StatAccountAgeDays = "account_age_days"
	StatNotesCount     = "notes_count"
	StatSkunkDays      = "skunk_days"
	StatWeighedCount   = "weighed_count"
	StatMeasuredCount  = "measured_count"
)

// Size thresholds per water-type partition, in the app's length unit.
// Saltwater fish run bigger, so its bar sits higher.
const (
	KeeperSizeFreshwater = 12.0
	TrophySizeFreshwater = 20.0
	KeeperSizeSaltwater  = 18.0
	TrophySizeSaltwater  = 30.0
)

// Moon bucket keys: the eight raw phases collapse into four logical buckets.
const (
	MoonBucketFull   = "full"
	MoonBucketNew    = "new"
	MoonBucketWaxing = "waxing"
	MoonBucketWaning = "waning"
)

var moonBuckets = map[string]string{
	models.MoonPhaseFull:           MoonBucketFull,
	models.MoonPhaseNew:            MoonBucketNew,
	models.MoonPhaseWaxingCrescent: MoonBucketWaxing,
	models.MoonPhaseFirstQuarter:   MoonBucketWaxing,
	models.MoonPhaseWaxingGibbous:  MoonBucketWaxing,
	models.MoonPhaseWaningGibbous:  MoonBucketWaning,
	models.MoonPhaseLastQuarter:    MoonBucketWaning,
	models.MoonPhaseWaningCrescent: MoonBucketWaning,
}

// Season keys, by record month: Mar-May spring, Jun-Aug summer, Sep-Nov
// fall, Dec-Feb winter.
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonFall   = "fall"
	SeasonWinter = "winter"
)

func seasonOfMonth(month int) string {
	switch {
	case month >= 3 && month <= 5:
		return SeasonSpring
	case month >= 6 && month <= 8:
		return SeasonSummer
	case month >= 9 && month <= 11:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// SeasonMonths maps a season to its record months, for requirement kinds
// that filter raw history by season.
var SeasonMonths = map[string][]int{
	SeasonSpring: {3, 4, 5},
	SeasonSummer: {6, 7, 8},
	SeasonFall:   {9, 10, 11},
	SeasonWinter: {12, 1, 2},
}

// Aggregator derives the statistics map from a user's activity history. It
// issues a fixed set of aggregate queries rather than scanning records in
// application code, and must be invoked once per evaluation pass, not once
// per badge.
type Aggregator struct {
	activities repositories.ActivityRepository
	users      repositories.UserRepository
	now        func() time.Time
}

func NewAggregator(activities repositories.ActivityRepository, users repositories.UserRepository) *Aggregator {
	return &Aggregator{
		activities: activities,
		users:      users,
		now:        time.Now,
	}
}

// Compute builds a fresh statistics map for the user. Every key in the
// vocabulary is present in the result, zero-valued when the history has no
// matching records, so downstream comparisons stay total.
func (ag *Aggregator) Compute(ctx context.Context, userID string) (Stats, error) {
	stats := make(Stats, 64)

	totals, err := ag.activities.Totals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}
	stats[StatTotalCaught] = totals.TotalCaught
	stats[StatTotalTrips] = float64(totals.Trips)
	stats[StatFishingDays] = float64(totals.FishingDays)
	stats[StatBiggestCatch] = totals.MaxSize
	stats[StatHeaviestCatch] = totals.MaxWeight
	stats[StatSpeciesCount] = float64(totals.SpeciesCount)
	stats[StatLocationCount] = float64(totals.LocationCount)
	stats[StatRodCount] = float64(totals.RodCount)
	stats[StatFlyCount] = float64(totals.FlyCount)
	stats[StatNotesCount] = float64(totals.NotesCount)
	stats[StatWeighedCount] = float64(totals.WeighedCount)
	stats[StatMeasuredCount] = float64(totals.MeasuredCount)
	stats[StatEarlyBirdCatches] = totals.EarlySum
	stats[StatNightOwlCatches] = totals.LateSum
	stats[StatMoonUpCatches] = totals.MoonUpSum
	stats[StatMoonDownCatches] = totals.MoonDownSum

	if err := ag.addWaterPartition(ctx, userID, stats); err != nil {
		return nil, err
	}
	if err := ag.addDaySegments(ctx, userID, stats); err != nil {
		return nil, err
	}
	if err := ag.addMoonBuckets(ctx, userID, stats); err != nil {
		return nil, err
	}
	if err := ag.addSeasons(ctx, userID, stats); err != nil {
		return nil, err
	}
	if err := ag.addDayDerived(ctx, userID, stats); err != nil {
		return nil, err
	}
	if err := ag.addEntityMaxima(ctx, userID, stats); err != nil {
		return nil, err
	}
	if err := ag.addAccountAge(ctx, userID, stats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (ag *Aggregator) addWaterPartition(ctx context.Context, userID string, stats Stats) error {
	partitions, err := ag.activities.WaterTypeTotals(ctx, userID,
		KeeperSizeFreshwater, TrophySizeFreshwater,
		KeeperSizeSaltwater, TrophySizeSaltwater)
	if err != nil {
		return fmt.Errorf("failed to compute water-type partition: %w", err)
	}

	stats[StatFreshwaterBiggest] = 0
	stats[StatSaltwaterBiggest] = 0
	stats[StatFreshwaterKeepers] = 0
	stats[StatSaltwaterKeepers] = 0
	stats[StatFreshwaterTrophies] = 0
	stats[StatSaltwaterTrophies] = 0

	for _, p := range partitions {
		switch p.WaterType {
		case models.WaterTypeFreshwater:
			stats[StatFreshwaterBiggest] = p.MaxSize
			stats[StatFreshwaterKeepers] = float64(p.Keepers)
			stats[StatFreshwaterTrophies] = float64(p.Trophies)
		case models.WaterTypeSaltwater:
			stats[StatSaltwaterBiggest] = p.MaxSize
			stats[StatSaltwaterKeepers] = float64(p.Keepers)
			stats[StatSaltwaterTrophies] = float64(p.Trophies)
		}
	}
	stats[StatTrophyCount] = stats[StatFreshwaterTrophies] + stats[StatSaltwaterTrophies]
	return nil
}

func (ag *Aggregator) addDaySegments(ctx context.Context, userID string, stats Stats) error {
	sums, err := ag.activities.SumByDaySegment(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to compute day-segment sums: %w", err)
	}

	stats[StatMorningCatches] = 0
	stats[StatAfternoonCatches] = 0
	stats[StatEveningCatches] = 0

	for _, s := range sums {
		switch s.Key {
		case repositories.SegmentMorning:
			stats[StatMorningCatches] = s.Total
		case repositories.SegmentAfternoon:
			stats[StatAfternoonCatches] = s.Total
		case repositories.SegmentEvening:
			stats[StatEveningCatches] = s.Total
		}
	}
	return nil
}

func (ag *Aggregator) addMoonBuckets(ctx context.Context, userID string, stats Stats) error {
	sums, err := ag.activities.SumByMoonPhase(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to compute moon-phase sums: %w", err)
	}

	stats[StatFullMoonCatches] = 0
	stats[StatNewMoonCatches] = 0
	stats[StatWaxingCatches] = 0
	stats[StatWaningCatches] = 0

	buckets := make(map[string]bool, 4)
	for _, s := range sums {
		bucket, ok := moonBuckets[s.Key]
		if !ok {
			continue
		}
		buckets[bucket] = true
		switch bucket {
		case MoonBucketFull:
			stats[StatFullMoonCatches] += s.Total
		case MoonBucketNew:
			stats[StatNewMoonCatches] += s.Total
		case MoonBucketWaxing:
			stats[StatWaxingCatches] += s.Total
		case MoonBucketWaning:
			stats[StatWaningCatches] += s.Total
		}
	}
	stats[StatMoonPhaseCount] = float64(len(buckets))
	return nil
}

func (ag *Aggregator) addSeasons(ctx context.Context, userID string, stats Stats) error {
	sums, err := ag.activities.SumByMonth(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to compute month sums: %w", err)
	}

	stats[StatSpringCatches] = 0
	stats[StatSummerCatches] = 0
	stats[StatFallCatches] = 0
	stats[StatWinterCatches] = 0

	seasons := make(map[string]bool, 4)
	months := 0
	for _, s := range sums {
		months++
		season := seasonOfMonth(s.Month)
		seasons[season] = true
		switch season {
		case SeasonSpring:
			stats[StatSpringCatches] += s.Total
		case SeasonSummer:
			stats[StatSummerCatches] += s.Total
		case SeasonFall:
			stats[StatFallCatches] += s.Total
		case SeasonWinter:
			stats[StatWinterCatches] += s.Total
		}
	}
	stats[StatSeasonCount] = float64(len(seasons))
	stats[StatMonthCount] = float64(months)
	return nil
}

func (ag *Aggregator) addDayDerived(ctx context.Context, userID string, stats Stats) error {
	days, err := ag.activities.DayRollups(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to compute day rollups: %w", err)
	}

	var bestCatches, bestSpecies float64
	var skunkDays int
	allDates := make([]time.Time, 0, len(days))
	catchDates := make([]time.Time, 0, len(days))
	noSkunkDates := make([]time.Time, 0, len(days))

	for _, d := range days {
		if d.Quantity > bestCatches {
			bestCatches = d.Quantity
		}
		if float64(d.SpeciesCount) > bestSpecies {
			bestSpecies = float64(d.SpeciesCount)
		}
		allDates = append(allDates, d.Date)
		if d.Quantity > 0 {
			catchDates = append(catchDates, d.Date)
		}
		if d.Skunked {
			skunkDays++
		} else {
			noSkunkDates = append(noSkunkDates, d.Date)
		}
	}

	stats[StatBestDayCatches] = bestCatches
	stats[StatBestDaySpecies] = bestSpecies
	stats[StatSkunkDays] = float64(skunkDays)
	stats[StatFishingStreak] = float64(LongestRun(allDates))
	stats[StatCatchStreak] = float64(LongestRun(catchDates))
	stats[StatNoSkunkStreak] = float64(LongestRun(noSkunkDates))
	stats[StatCurrentStreak] = float64(CurrentRun(allDates, ag.now()))
	return nil
}

func (ag *Aggregator) addEntityMaxima(ctx context.Context, userID string, stats Stats) error {
	visits, err := ag.activities.MaxCountByEntity(ctx, userID, "location_id")
	if err != nil {
		return fmt.Errorf("failed to compute location visits: %w", err)
	}
	stats[StatMostVisitsLocation] = float64(visits)

	for column, key := range map[string]string{
		"species_id": StatMostCaughtSpecies,
		"rod_id":     StatMostCaughtRod,
		"fly_id":     StatMostCaughtFly,
	} {
		max, err := ag.activities.MaxSumByEntity(ctx, userID, column)
		if err != nil {
			return fmt.Errorf("failed to compute max by %s: %w", column, err)
		}
		stats[key] = max
	}
	return nil
}

func (ag *Aggregator) addAccountAge(ctx context.Context, userID string, stats Stats) error {
	stats[StatAccountAgeDays] = 0

	user, err := ag.users.GetByUserID(ctx, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil
		}
		return fmt.Errorf("failed to load user: %w", err)
	}
	age := ag.now().Sub(user.CreatedAt)
	if age > 0 {
		stats[StatAccountAgeDays] = float64(int(age.Hours() / 24))
	}
	return nil
}
