package badges

import (
	"context"

	"github.com/creelhq/creel/creel/database/models"
)

// Requirement kind constants. This vocabulary is closed: the compiler below
// handles every kind, and anything it does not recognize falls back to the
// generic stat lookup, which in turn fails closed on an unknown field.
const (
	// Scalar threshold kinds, resolved against the statistics map.
	KindStat           = "stat"
	KindCatchCount     = "catch_count"
	KindTripCount      = "trip_count"
	KindMaxSize        = "max_size"
	KindMaxWeight      = "max_weight"
	KindSpeciesCount   = "species_count"
	KindLocationCount  = "location_count"
	KindRodCount       = "rod_count"
	KindFlyCount       = "fly_count"
	KindStreak         = "streak"
	KindCatchStreak    = "catch_streak"
	KindNoSkunkStreak  = "no_skunk_streak"
	KindAccountAge     = "account_age"
	KindLocationVisits = "location_visits"
	KindSpeciesMax     = "species_max"
	KindRodMax         = "rod_max"
	KindFlyMax         = "fly_max"
	KindNotesCount     = "notes_count"
	KindSkunkCount     = "skunk_count"
	KindWeighedCount   = "weighed_count"
	KindCountWhere     = "count_where"

	// Time-window kinds.
	KindTimeOfDay   = "time_of_day"
	KindTimeVariety = "time_variety"

	// Lunar kinds.
	KindMoonPhase    = "moon_phase"
	KindMoonPosition = "moon_position"
	KindMoonVariety  = "moon_variety"

	// Seasonal kinds.
	KindSeason        = "season"
	KindSeasonVariety = "season_variety"
	KindMonthVariety  = "month_variety"
	KindCalendarDate  = "calendar_date"
	KindBirthday      = "birthday"

	// Environmental kinds and their counted variants.
	KindWeather           = "weather"
	KindWind              = "wind"
	KindPressure          = "pressure"
	KindWaterClarity      = "water_clarity"
	KindWaterLevel        = "water_level"
	KindWaterSpeed        = "water_speed"
	KindTide              = "tide"
	KindSurface           = "surface"
	KindWeatherCount      = "weather_count"
	KindWindCount         = "wind_count"
	KindWaterClarityCount = "water_clarity_count"
	KindTideCount         = "tide_count"

	// Social kinds.
	KindFriendDays       = "friend_days"
	KindSoloDays         = "solo_days"
	KindMaxCompanions    = "max_companions"
	KindCompanionVariety = "companion_variety"
	KindFollowers        = "followers"

	// Single-day variety kinds.
	KindDaySpeciesVariety  = "day_species_variety"
	KindDayLocationVariety = "day_location_variety"
	KindDayFlyVariety      = "day_fly_variety"
	KindDayRodVariety      = "day_rod_variety"

	// Consistency kinds over non-daily units.
	KindWeeklyStreak      = "weekly_streak"
	KindConsecutiveMonths = "consecutive_months"
	KindWeekendStreak     = "weekend_streak"
	KindWeekdayCount      = "weekday_count"

	// Conjunction over raw records.
	KindCombo = "combo"

	// Second-level dispatch on the requirement field.
	KindChallenge = "challenge"
)

// Challenge field names for KindChallenge.
const (
	ChallengeOneFlyMastery = "one_fly_mastery"
	ChallengeOneRodMastery = "one_rod_mastery"
	ChallengeHomeWaters    = "home_waters"
	ChallengePersonalBest  = "personal_best"
	ChallengeFullDay       = "full_day"
	ChallengeComeback      = "comeback"
	ChallengeRedemption    = "redemption"
	ChallengeWeatherLogger = "weather_logger"
	ChallengeWaterLogger   = "water_logger"
)

// Stat key each scalar kind reads. A kind may still override the field via
// requirement_field (KindStat and KindCountWhere always do).
var scalarKindFields = map[string]string{
	KindCatchCount:     StatTotalCaught,
	KindTripCount:      StatTotalTrips,
	KindMaxSize:        StatBiggestCatch,
	KindMaxWeight:      StatHeaviestCatch,
	KindSpeciesCount:   StatSpeciesCount,
	KindLocationCount:  StatLocationCount,
	KindRodCount:       StatRodCount,
	KindFlyCount:       StatFlyCount,
	KindStreak:         StatFishingStreak,
	KindCatchStreak:    StatCatchStreak,
	KindNoSkunkStreak:  StatNoSkunkStreak,
	KindAccountAge:     StatAccountAgeDays,
	KindLocationVisits: StatMostVisitsLocation,
	KindSpeciesMax:     StatMostCaughtSpecies,
	KindRodMax:         StatMostCaughtRod,
	KindFlyMax:         StatMostCaughtFly,
	KindNotesCount:     StatNotesCount,
	KindSkunkCount:     StatSkunkDays,
	KindWeighedCount:   StatWeighedCount,
}

// requirement is one compiled badge requirement. Implementations are pure
// predicates: an error is only returned for repository failures, never for
// missing or malformed definition data.
type requirement interface {
	evaluate(ctx context.Context, env *evalEnv) (bool, error)
}

// alwaysFalse is the compiled form of every unsatisfiable definition: unknown
// category, missing threshold, unusable extension data. Keeping it a
// distinct variant makes the fail-closed paths visible at compile time.
type alwaysFalse struct{}

func (alwaysFalse) evaluate(context.Context, *evalEnv) (bool, error) {
	return false, nil
}

// compileRequirement turns a badge definition into its evaluation strategy.
// The dispatch is exhaustive over the kind vocabulary; the default branch is
// the generic stat lookup, not an error.
func compileRequirement(def *models.BadgeDefinition) requirement {
	switch def.RequirementKind {
	case KindCountWhere:
		// The field name already encodes the partition.
		return compileStat(def.RequirementField, def)

	case KindTimeOfDay:
		return compileTimeOfDay(def)
	case KindTimeVariety:
		return compileTimeVariety(def)

	case KindMoonPhase:
		return compileMoonPhase(def)
	case KindMoonPosition:
		return compileMoonPosition(def)
	case KindMoonVariety:
		return compileVarietyCount(StatMoonPhaseCount, def)

	case KindSeason:
		return compileSeason(def)
	case KindSeasonVariety:
		return compileVarietyCount(StatSeasonCount, def)
	case KindMonthVariety:
		return compileVarietyCount(StatMonthCount, def)
	case KindCalendarDate:
		return compileCalendarDate(def)
	case KindBirthday:
		return birthdayRequirement{}

	case KindWeather, KindWind, KindPressure, KindWaterClarity,
		KindWaterLevel, KindWaterSpeed, KindTide, KindSurface:
		return compileEnvironmental(def.RequirementKind, def, false)
	case KindWeatherCount:
		return compileEnvironmental(KindWeather, def, true)
	case KindWindCount:
		return compileEnvironmental(KindWind, def, true)
	case KindWaterClarityCount:
		return compileEnvironmental(KindWaterClarity, def, true)
	case KindTideCount:
		return compileEnvironmental(KindTide, def, true)

	case KindFriendDays:
		return compileCompanionDays(def, true)
	case KindSoloDays:
		return compileCompanionDays(def, false)
	case KindMaxCompanions:
		return companionRequirement{mode: companionMax, op: def.RequirementOp, value: def.RequirementValue}
	case KindCompanionVariety:
		return companionRequirement{mode: companionDistinct, op: def.RequirementOp, value: def.RequirementValue}
	case KindFollowers:
		return followerRequirement{op: def.RequirementOp, value: def.RequirementValue}

	case KindDaySpeciesVariety:
		return compileDayVariety("species_id", def)
	case KindDayLocationVariety:
		return compileDayVariety("location_id", def)
	case KindDayFlyVariety:
		return compileDayVariety("fly_id", def)
	case KindDayRodVariety:
		return compileDayVariety("rod_id", def)

	case KindWeeklyStreak:
		return compileUnitStreak(unitWeek, def)
	case KindConsecutiveMonths:
		return compileUnitStreak(unitMonth, def)
	case KindWeekendStreak:
		return compileUnitStreak(unitWeekend, def)
	case KindWeekdayCount:
		return compileWeekdayCount(def)

	case KindCombo:
		return compileCombo(def)

	case KindChallenge:
		return compileChallenge(def)

	case KindStat:
		return compileStat(def.RequirementField, def)

	default:
		// Unknown kinds degrade to the generic stat lookup, which itself
		// fails closed when the field is absent.
		if field, ok := scalarKindFields[def.RequirementKind]; ok {
			return compileStat(field, def)
		}
		return compileStat(def.RequirementField, def)
	}
}

// compileStat builds the generic scalar-threshold requirement. A blank
// field or a missing threshold on a floor comparison is unsatisfiable.
func compileStat(field string, def *models.BadgeDefinition) requirement {
	if field == "" {
		return alwaysFalse{}
	}
	if !thresholdUsable(def.RequirementOp, def.RequirementValue) {
		return alwaysFalse{}
	}
	return statRequirement{field: field, op: def.RequirementOp, value: def.RequirementValue}
}

// thresholdUsable rejects definitions whose threshold is missing where one
// is required: a zero threshold under ">=" holds for every user, which is
// always a data-entry mistake. "> 0" stays valid since it still demands a
// nonzero statistic.
func thresholdUsable(op string, value float64) bool {
	switch op {
	case "", models.OpGTE:
		return value > 0
	case models.OpGT:
		return value >= 0
	default:
		return true
	}
}
