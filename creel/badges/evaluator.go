package badges

import (
	"context"
	"log/slog"
	"time"

	"github.com/creelhq/creel/creel/database/models"
	"github.com/creelhq/creel/creel/database/repositories"
)

// Evaluator decides whether one badge's requirement is currently satisfied
// for a user. Most kinds read the precomputed statistics map; the rest query
// the activity repository directly for per-record combinations no single
// statistic can express.
type Evaluator struct {
	activities repositories.ActivityRepository
	users      repositories.UserRepository
	now        func() time.Time
}

func NewEvaluator(activities repositories.ActivityRepository, users repositories.UserRepository) *Evaluator {
	return &Evaluator{
		activities: activities,
		users:      users,
		now:        time.Now,
	}
}

type evalEnv struct {
	userID     string
	stats      Stats
	activities repositories.ActivityRepository
	users      repositories.UserRepository
	now        func() time.Time
}

// IsSatisfied evaluates the badge's requirement against the given stats
// snapshot. Missing or malformed specification data yields false; only
// repository failures return an error, aborting the caller's pass.
func (e *Evaluator) IsSatisfied(ctx context.Context, def *models.BadgeDefinition, stats Stats, userID string) (bool, error) {
	if def == nil || !def.Active {
		return false, nil
	}
	env := &evalEnv{
		userID:     userID,
		stats:      stats,
		activities: e.activities,
		users:      e.users,
		now:        e.now,
	}
	satisfied, err := compileRequirement(def).evaluate(ctx, env)
	if err != nil {
		slog.Error("Badge evaluation failed",
			slog.String("type", "db"),
			slog.String("user_id", userID),
			slog.String("badge_id", def.BadgeID),
			slog.Any("error", err))
		return false, err
	}
	return satisfied, nil
}

// compare applies a requirement operator. An empty operator means ">=";
// anything unrecognized is false.
func compare(actual float64, op string, threshold float64) bool {
	switch op {
	case "", models.OpGTE:
		return actual >= threshold
	case models.OpGT:
		return actual > threshold
	case models.OpLTE:
		return actual <= threshold
	case models.OpLT:
		return actual < threshold
	case models.OpEQ:
		return actual == threshold
	default:
		return false
	}
}

// --- scalar threshold ---

type statRequirement struct {
	field string
	op    string
	value float64
}

func (r statRequirement) evaluate(_ context.Context, env *evalEnv) (bool, error) {
	if !env.stats.Has(r.field) {
		return false, nil
	}
	return compare(env.stats.Get(r.field), r.op, r.value), nil
}

// --- time-window kinds ---

var timeOfDayFields = map[string]string{
	"early":     StatEarlyBirdCatches,
	"late":      StatNightOwlCatches,
	"morning":   StatMorningCatches,
	"afternoon": StatAfternoonCatches,
	"evening":   StatEveningCatches,
}

func compileTimeOfDay(def *models.BadgeDefinition) requirement {
	field, ok := timeOfDayFields[metaString(def.RequirementMeta, "time")]
	if !ok {
		return alwaysFalse{}
	}
	return compileStat(field, def)
}

type timeVarietyRequirement struct {
	segments int
}

// compileTimeVariety requires activity in several distinct day segments
// simultaneously, not merely a combined total.
func compileTimeVariety(def *models.BadgeDefinition) requirement {
	segments := int(def.RequirementValue)
	if segments < 2 || segments > 3 {
		return alwaysFalse{}
	}
	return timeVarietyRequirement{segments: segments}
}

func (r timeVarietyRequirement) evaluate(_ context.Context, env *evalEnv) (bool, error) {
	nonzero := 0
	for _, key := range []string{StatMorningCatches, StatAfternoonCatches, StatEveningCatches} {
		if env.stats.Get(key) > 0 {
			nonzero++
		}
	}
	return nonzero >= r.segments, nil
}

// --- lunar kinds ---

var moonBucketFields = map[string]string{
	MoonBucketFull:   StatFullMoonCatches,
	MoonBucketNew:    StatNewMoonCatches,
	MoonBucketWaxing: StatWaxingCatches,
	MoonBucketWaning: StatWaningCatches,
}

func compileMoonPhase(def *models.BadgeDefinition) requirement {
	field, ok := moonBucketFields[metaString(def.RequirementMeta, "phase")]
	if !ok {
		return alwaysFalse{}
	}
	return compileStat(field, def)
}

func compileMoonPosition(def *models.BadgeDefinition) requirement {
	switch metaString(def.RequirementMeta, "position") {
	case "up":
		return compileStat(StatMoonUpCatches, def)
	case "down":
		return compileStat(StatMoonDownCatches, def)
	default:
		return alwaysFalse{}
	}
}

// compileVarietyCount builds the distinct-bucket-count comparison shared by
// the lunar, season and month variety kinds. The operator defaults to exact
// equality here: "all four seasons" is a specific claim, not "at least 4".
func compileVarietyCount(field string, def *models.BadgeDefinition) requirement {
	if def.RequirementValue <= 0 {
		return alwaysFalse{}
	}
	op := def.RequirementOp
	if op == "" {
		op = models.OpEQ
	}
	return statRequirement{field: field, op: op, value: def.RequirementValue}
}

// --- seasonal kinds ---

var seasonFields = map[string]string{
	SeasonSpring: StatSpringCatches,
	SeasonSummer: StatSummerCatches,
	SeasonFall:   StatFallCatches,
	SeasonWinter: StatWinterCatches,
}

func compileSeason(def *models.BadgeDefinition) requirement {
	field, ok := seasonFields[metaString(def.RequirementMeta, "season")]
	if !ok {
		return alwaysFalse{}
	}
	return compileStat(field, def)
}

type calendarDateRequirement struct {
	month time.Month
	day   int
}

func compileCalendarDate(def *models.BadgeDefinition) requirement {
	month := metaInt(def.RequirementMeta, "month")
	day := metaInt(def.RequirementMeta, "day")
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return alwaysFalse{}
	}
	return calendarDateRequirement{month: time.Month(month), day: day}
}

func (r calendarDateRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	one := 1
	return env.activities.ExistsMatching(ctx, env.userID, repositories.ActivityFilter{
		MinQuantity: &one,
		MonthDay:    &repositories.MonthDay{Month: r.month, Day: r.day},
	})
}

// birthdayRequirement matches a catch on the user's stored birth date. Users
// without a birthday on file can never satisfy it.
type birthdayRequirement struct{}

func (birthdayRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	user, err := env.users.GetByUserID(ctx, env.userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return false, nil
		}
		return false, err
	}
	if user.Birthday == nil {
		return false, nil
	}
	return calendarDateRequirement{
		month: user.Birthday.Month(),
		day:   user.Birthday.Day(),
	}.evaluate(ctx, env)
}

// --- environmental kinds ---

type environmentalRequirement struct {
	column  string
	raws    []string
	counted bool
	op      string
	value   float64
}

func compileEnvironmental(kind string, def *models.BadgeDefinition, counted bool) requirement {
	dim, ok := envDimensions[kind]
	if !ok {
		return alwaysFalse{}
	}
	raws := rawValuesFor(kind, metaString(def.RequirementMeta, dim.metaKey))
	if len(raws) == 0 {
		return alwaysFalse{}
	}
	if counted && !thresholdUsable(def.RequirementOp, def.RequirementValue) {
		return alwaysFalse{}
	}
	return environmentalRequirement{
		column:  dim.column,
		raws:    raws,
		counted: counted,
		op:      def.RequirementOp,
		value:   def.RequirementValue,
	}
}

func (r environmentalRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	filter := repositories.ActivityFilter{
		Conditions: map[string][]string{r.column: r.raws},
	}
	if !r.counted {
		one := 1
		filter.MinQuantity = &one
		return env.activities.ExistsMatching(ctx, env.userID, filter)
	}
	total, err := env.activities.SumMatching(ctx, env.userID, filter)
	if err != nil {
		return false, err
	}
	return compare(total, r.op, r.value), nil
}

// --- social kinds ---

type companionDaysRequirement struct {
	withFriends bool
	op          string
	value       float64
}

func compileCompanionDays(def *models.BadgeDefinition, withFriends bool) requirement {
	if !thresholdUsable(def.RequirementOp, def.RequirementValue) {
		return alwaysFalse{}
	}
	return companionDaysRequirement{withFriends: withFriends, op: def.RequirementOp, value: def.RequirementValue}
}

func (r companionDaysRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	with := r.withFriends
	dates, err := env.activities.DistinctDatesMatching(ctx, env.userID, repositories.ActivityFilter{
		WithFriends: &with,
	})
	if err != nil {
		return false, err
	}
	return compare(float64(len(dates)), r.op, r.value), nil
}

type companionMode int

const (
	companionMax companionMode = iota
	companionDistinct
)

type companionRequirement struct {
	mode  companionMode
	op    string
	value float64
}

func (r companionRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	if !thresholdUsable(r.op, r.value) {
		return false, nil
	}
	totals, err := env.activities.CompanionTotals(ctx, env.userID)
	if err != nil {
		return false, err
	}
	actual := totals.MaxOnRecord
	if r.mode == companionDistinct {
		actual = totals.Distinct
	}
	return compare(float64(actual), r.op, r.value), nil
}

type followerRequirement struct {
	op    string
	value float64
}

func (r followerRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	if !thresholdUsable(r.op, r.value) {
		return false, nil
	}
	count, err := env.users.FollowerCount(ctx, env.userID)
	if err != nil {
		return false, err
	}
	return compare(float64(count), r.op, r.value), nil
}

// --- single-day variety kinds ---

type dayVarietyRequirement struct {
	column string
	op     string
	value  float64
}

func compileDayVariety(column string, def *models.BadgeDefinition) requirement {
	if !thresholdUsable(def.RequirementOp, def.RequirementValue) {
		return alwaysFalse{}
	}
	return dayVarietyRequirement{column: column, op: def.RequirementOp, value: def.RequirementValue}
}

func (r dayVarietyRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	max, err := env.activities.MaxDistinctPerDay(ctx, env.userID, r.column)
	if err != nil {
		return false, err
	}
	return compare(float64(max), r.op, r.value), nil
}

// --- consistency kinds over non-daily units ---

type streakUnit int

const (
	unitWeek streakUnit = iota
	unitMonth
	unitWeekend
)

type unitStreakRequirement struct {
	unit  streakUnit
	op    string
	value float64
}

func compileUnitStreak(unit streakUnit, def *models.BadgeDefinition) requirement {
	if !thresholdUsable(def.RequirementOp, def.RequirementValue) {
		return alwaysFalse{}
	}
	return unitStreakRequirement{unit: unit, op: def.RequirementOp, value: def.RequirementValue}
}

func (r unitStreakRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	filter := repositories.ActivityFilter{}
	if r.unit == unitWeekend {
		filter.WeekendOnly = true
	}
	dates, err := env.activities.DistinctDatesMatching(ctx, env.userID, filter)
	if err != nil {
		return false, err
	}

	var run int
	switch r.unit {
	case unitWeek:
		run = longestWeekRun(dates)
	case unitMonth:
		run = longestMonthRun(dates)
	case unitWeekend:
		run = longestWeekendRun(dates)
	}
	return compare(float64(run), r.op, r.value), nil
}

func compileWeekdayCount(def *models.BadgeDefinition) requirement {
	if !thresholdUsable(def.RequirementOp, def.RequirementValue) {
		return alwaysFalse{}
	}
	return weekdayCountRequirement{op: def.RequirementOp, value: def.RequirementValue}
}

type weekdayCountRequirement struct {
	op    string
	value float64
}

func (r weekdayCountRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	dates, err := env.activities.DistinctDatesMatching(ctx, env.userID, repositories.ActivityFilter{
		WeekdayOnly: true,
	})
	if err != nil {
		return false, err
	}
	return compare(float64(len(dates)), r.op, r.value), nil
}

// --- combination kind ---

// Moon buckets back to raw phases, for filters over raw records.
var bucketPhases = map[string][]string{
	MoonBucketFull:   {models.MoonPhaseFull},
	MoonBucketNew:    {models.MoonPhaseNew},
	MoonBucketWaxing: {models.MoonPhaseWaxingCrescent, models.MoonPhaseFirstQuarter, models.MoonPhaseWaxingGibbous},
	MoonBucketWaning: {models.MoonPhaseWaningGibbous, models.MoonPhaseLastQuarter, models.MoonPhaseWaningCrescent},
}

type comboRequirement struct {
	filter repositories.ActivityFilter
}

// compileCombo ANDs sub-conditions from a fixed vocabulary into one
// existence query. Any sub-condition that cannot match (unknown segment,
// phase, season or weather category) makes the whole combo impossible, so
// compilation short-circuits to alwaysFalse before any query runs.
func compileCombo(def *models.BadgeDefinition) requirement {
	meta := def.RequirementMeta
	if len(meta) == 0 {
		return alwaysFalse{}
	}

	one := 1
	filter := repositories.ActivityFilter{MinQuantity: &one}

	if v, ok := meta["time"]; ok {
		segment, _ := v.(string)
		switch segment {
		case repositories.SegmentMorning, repositories.SegmentAfternoon, repositories.SegmentEvening:
			filter.DaySegment = &segment
		default:
			return alwaysFalse{}
		}
	}
	if v, ok := meta["phase"]; ok {
		bucket, _ := v.(string)
		phases, known := bucketPhases[bucket]
		if !known {
			return alwaysFalse{}
		}
		filter.MoonPhases = phases
	}
	if v, ok := meta["season"]; ok {
		season, _ := v.(string)
		months, known := SeasonMonths[season]
		if !known {
			return alwaysFalse{}
		}
		filter.Months = months
	}
	if v, ok := meta["weather"]; ok {
		category, _ := v.(string)
		raws := rawValuesFor(KindWeather, category)
		if len(raws) == 0 {
			return alwaysFalse{}
		}
		filter.Conditions = map[string][]string{"weather": raws}
	}
	if size := metaFloat(meta, "min_size"); size > 0 {
		filter.MinSize = &size
	}
	if qty := metaInt(meta, "min_quantity"); qty > 0 {
		filter.MinQuantity = &qty
	}

	return comboRequirement{filter: filter}
}

func (r comboRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	return env.activities.ExistsMatching(ctx, env.userID, r.filter)
}

// --- challenge kinds ---

type challengeEntityRequirement struct {
	column string
	visits bool
	op     string
	value  float64
}

func (r challengeEntityRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	var actual float64
	if r.visits {
		count, err := env.activities.MaxCountByEntity(ctx, env.userID, r.column)
		if err != nil {
			return false, err
		}
		actual = float64(count)
	} else {
		max, err := env.activities.MaxSumByEntity(ctx, env.userID, r.column)
		if err != nil {
			return false, err
		}
		actual = max
	}
	return compare(actual, r.op, r.value), nil
}

type personalBestRequirement struct {
	op    string
	value float64
}

// evaluate counts personal-best events: every measured catch that strictly
// beats all earlier measurements, the first one included.
func (r personalBestRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	sizes, err := env.activities.SizeProgression(ctx, env.userID)
	if err != nil {
		return false, err
	}
	events := 0
	best := 0.0
	for _, size := range sizes {
		if size > best {
			best = size
			events++
		}
	}
	return compare(float64(events), r.op, r.value), nil
}

type fullDayRequirement struct{}

func (fullDayRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	days, err := env.activities.DayRollups(ctx, env.userID)
	if err != nil {
		return false, err
	}
	for _, d := range days {
		if d.Segments >= 3 {
			return true, nil
		}
	}
	return false, nil
}

// comebackRequirement looks for a skunked day whose NEXT ACTIVITY day
// produced a catch. The follow-up day is the next day the user went out,
// not the next calendar day: a comeback is about returning after failure,
// however long the gap.
type comebackRequirement struct {
	// trophy requires the follow-up day to carry a trophy-quality fish,
	// not merely any catch. Day rollups carry no water type, so the
	// freshwater trophy size is the cutoff; the saltwater one would hide
	// freshwater redemptions.
	trophy bool
}

func (r comebackRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	days, err := env.activities.DayRollups(ctx, env.userID)
	if err != nil {
		return false, err
	}
	for i := 0; i+1 < len(days); i++ {
		if days[i].Quantity != 0 {
			continue
		}
		next := days[i+1]
		if r.trophy {
			if next.MaxSize >= TrophySizeFreshwater {
				return true, nil
			}
		} else if next.Quantity > 0 {
			return true, nil
		}
	}
	return false, nil
}

type conditionLoggerRequirement struct {
	column string
	op     string
	value  float64
}

func (r conditionLoggerRequirement) evaluate(ctx context.Context, env *evalEnv) (bool, error) {
	count, err := env.activities.CountWhereLogged(ctx, env.userID, r.column)
	if err != nil {
		return false, err
	}
	return compare(float64(count), r.op, r.value), nil
}

// compileChallenge is the second closed dispatch, keyed on the requirement
// field rather than the kind.
func compileChallenge(def *models.BadgeDefinition) requirement {
	op, value := def.RequirementOp, def.RequirementValue

	switch def.RequirementField {
	case ChallengeOneFlyMastery, ChallengeOneRodMastery, ChallengeHomeWaters:
		if !thresholdUsable(op, value) {
			return alwaysFalse{}
		}
		switch def.RequirementField {
		case ChallengeOneFlyMastery:
			return challengeEntityRequirement{column: "fly_id", op: op, value: value}
		case ChallengeOneRodMastery:
			return challengeEntityRequirement{column: "rod_id", op: op, value: value}
		default:
			return challengeEntityRequirement{column: "location_id", visits: true, op: op, value: value}
		}
	case ChallengePersonalBest:
		if !thresholdUsable(op, value) {
			return alwaysFalse{}
		}
		return personalBestRequirement{op: op, value: value}
	case ChallengeFullDay:
		return fullDayRequirement{}
	case ChallengeComeback:
		return comebackRequirement{}
	case ChallengeRedemption:
		return comebackRequirement{trophy: true}
	case ChallengeWeatherLogger:
		if !thresholdUsable(op, value) {
			return alwaysFalse{}
		}
		return conditionLoggerRequirement{column: "weather", op: op, value: value}
	case ChallengeWaterLogger:
		if !thresholdUsable(op, value) {
			return alwaysFalse{}
		}
		return conditionLoggerRequirement{column: "water_clarity", op: op, value: value}
	default:
		return alwaysFalse{}
	}
}

// --- unit streak walkers ---

// longestWeekRun scans distinct ISO week starts; weeks are consecutive when
// their Mondays are exactly seven days apart.
func longestWeekRun(dates []time.Time) int {
	weeks := distinctSortedDays(mapDates(dates, weekStart))
	if len(weeks) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(weeks); i++ {
		if weeks[i].Sub(weeks[i-1]) == 7*24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// longestMonthRun walks distinct year-month pairs checking previous+1 month.
func longestMonthRun(dates []time.Time) int {
	months := distinctSortedDays(mapDates(dates, monthStart))
	if len(months) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(months); i++ {
		if months[i-1].AddDate(0, 1, 0).Equal(months[i]) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// longestWeekendRun treats two weekend dates as consecutive when they fall
// within eight days of each other, so a Saturday chains to the following
// Sunday one week later.
func longestWeekendRun(dates []time.Time) int {
	days := distinctSortedDays(dates)
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) <= 8*24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

func mapDates(dates []time.Time, f func(time.Time) time.Time) []time.Time {
	out := make([]time.Time, len(dates))
	for i, d := range dates {
		out[i] = f(d)
	}
	return out
}

func weekStart(t time.Time) time.Time {
	day := truncateDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// --- extension map helpers ---

func metaString(meta map[string]interface{}, key string) string {
	if meta == nil {
		return ""
	}
	s, _ := meta[key].(string)
	return s
}

func metaInt(meta map[string]interface{}, key string) int {
	return int(metaFloat(meta, key))
}

func metaFloat(meta map[string]interface{}, key string) float64 {
	if meta == nil {
		return 0
	}
	switch v := meta[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
