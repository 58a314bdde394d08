package badges

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creelhq/creel/creel/database/models"
)

type defOption func(*models.BadgeDefinition)

func withOp(op string) defOption {
	return func(d *models.BadgeDefinition) { d.RequirementOp = op }
}

func withField(field string) defOption {
	return func(d *models.BadgeDefinition) { d.RequirementField = field }
}

func withMeta(meta map[string]interface{}) defOption {
	return func(d *models.BadgeDefinition) { d.RequirementMeta = meta }
}

func def(kind string, value float64, opts ...defOption) *models.BadgeDefinition {
	d := &models.BadgeDefinition{
		BadgeID:          "test-badge",
		Name:             "Test Badge",
		RequirementKind:  kind,
		RequirementValue: value,
		Active:           true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func TestCompare(t *testing.T) {
	tests := []struct {
		actual    float64
		op        string
		threshold float64
		want      bool
	}{
		{10, "", 10, true},
		{9, "", 10, false},
		{10, models.OpGTE, 10, true},
		{10, models.OpGT, 10, false},
		{11, models.OpGT, 10, true},
		{10, models.OpLTE, 10, true},
		{11, models.OpLTE, 10, false},
		{9, models.OpLT, 10, true},
		{10, models.OpEQ, 10, true},
		{10.5, models.OpEQ, 10, false},
		{10, "~=", 10, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, compare(tt.actual, tt.op, tt.threshold),
			"%v %q %v", tt.actual, tt.op, tt.threshold)
	}
}

func TestIsSatisfiedScalarKinds(t *testing.T) {
	ctx := context.Background()
	ev := NewEvaluator(&fakeActivityRepo{}, &fakeUserRepo{})
	stats := Stats{
		StatTotalCaught:  100,
		StatSpeciesCount: 5,
		StatSkunkDays:    3,
		StatTrophyCount:  0,
	}

	tests := []struct {
		name string
		def  *models.BadgeDefinition
		want bool
	}{
		{"catch count met", def(KindCatchCount, 100), true},
		{"catch count unmet", def(KindCatchCount, 101), false},
		{"species count met", def(KindSpeciesCount, 5), true},
		{"generic stat lookup", def("stat", 3, withField(StatSkunkDays)), true},
		{"unknown kind falls back to field", def("mystery_kind", 5, withField(StatSpeciesCount)), true},
		{"missing stat key is false, not an error", def("stat", 1, withField("no_such_stat")), false},
		{"blank field never satisfies", def("stat", 1), false},
		{"zero threshold with gte never satisfies", def(KindCatchCount, 0), false},
		{"zero threshold with gt demands a nonzero statistic", def(KindCatchCount, 0, withOp(models.OpGT)), true},
		{"zero threshold with gt stays unmet at zero", def("stat", 0, withField(StatTrophyCount), withOp(models.OpGT)), false},
		{"zero threshold with lte is meaningful", def("stat", 0, withField(StatSkunkDays), withOp(models.OpLTE)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.IsSatisfied(ctx, tt.def, stats, "angler")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSatisfiedInactiveBadge(t *testing.T) {
	ev := NewEvaluator(&fakeActivityRepo{}, &fakeUserRepo{})
	d := def(KindCatchCount, 1)
	d.Active = false

	got, err := ev.IsSatisfied(context.Background(), d, Stats{StatTotalCaught: 10}, "angler")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIsSatisfiedMetaKinds(t *testing.T) {
	ctx := context.Background()
	ev := NewEvaluator(&fakeActivityRepo{}, &fakeUserRepo{})
	stats := Stats{
		StatEarlyBirdCatches: 20,
		StatMorningCatches:   15,
		StatAfternoonCatches: 0,
		StatEveningCatches:   5,
		StatFullMoonCatches:  8,
		StatMoonUpCatches:    12,
		StatMoonPhaseCount:   4,
		StatWinterCatches:    30,
		StatSeasonCount:      3,
		StatMonthCount:       7,
	}

	tests := []struct {
		name string
		def  *models.BadgeDefinition
		want bool
	}{
		{"early window", def(KindTimeOfDay, 20, withMeta(map[string]interface{}{"time": "early"})), true},
		{"morning segment", def(KindTimeOfDay, 10, withMeta(map[string]interface{}{"time": "morning"})), true},
		{"unknown segment fails closed", def(KindTimeOfDay, 1, withMeta(map[string]interface{}{"time": "brunch"})), false},
		{"missing meta fails closed", def(KindTimeOfDay, 1), false},
		{"two segments active", def(KindTimeVariety, 2), true},
		{"three segments not all active", def(KindTimeVariety, 3), false},
		{"full moon", def(KindMoonPhase, 8, withMeta(map[string]interface{}{"phase": "full"})), true},
		{"unknown phase fails closed", def(KindMoonPhase, 1, withMeta(map[string]interface{}{"phase": "blood"})), false},
		{"moon up", def(KindMoonPosition, 10, withMeta(map[string]interface{}{"position": "up"})), true},
		{"moon sideways fails closed", def(KindMoonPosition, 1, withMeta(map[string]interface{}{"position": "sideways"})), false},
		{"all moon buckets seen", def(KindMoonVariety, 4), true},
		{"winter catches", def(KindSeason, 25, withMeta(map[string]interface{}{"season": "winter"})), true},
		{"unknown season fails closed", def(KindSeason, 1, withMeta(map[string]interface{}{"season": "monsoon"})), false},
		// Variety counts compare with exact equality by default.
		{"season variety exact match", def(KindSeasonVariety, 3), true},
		{"season variety exact mismatch", def(KindSeasonVariety, 4), false},
		{"month variety with explicit gte", def(KindMonthVariety, 6, withOp(models.OpGTE)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.IsSatisfied(ctx, tt.def, stats, "angler")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSatisfiedCalendarAndBirthday(t *testing.T) {
	ctx := context.Background()
	repo := &fakeActivityRepo{records: []*models.Activity{
		act("angler", "2024-07-04", 2),
		act("angler", "2024-12-25", 0), // skunked, quantity filter excludes it
	}}
	users := &fakeUserRepo{users: map[string]*models.User{
		"angler":    {UserID: "angler", Birthday: ptr(day("1990-07-04"))},
		"birthless": {UserID: "birthless"},
	}}
	ev := NewEvaluator(repo, users)

	tests := []struct {
		name   string
		userID string
		def    *models.BadgeDefinition
		want   bool
	}{
		{"caught on the fourth", "angler", def(KindCalendarDate, 0, withMeta(map[string]interface{}{"month": float64(7), "day": float64(4)})), true},
		{"skunked christmas does not count", "angler", def(KindCalendarDate, 0, withMeta(map[string]interface{}{"month": float64(12), "day": float64(25)})), false},
		{"never fished that date", "angler", def(KindCalendarDate, 0, withMeta(map[string]interface{}{"month": float64(3), "day": float64(1)})), false},
		{"invalid month fails closed", "angler", def(KindCalendarDate, 0, withMeta(map[string]interface{}{"month": float64(13), "day": float64(1)})), false},
		{"birthday catch", "angler", def(KindBirthday, 0), true},
		{"no birthday on file", "birthless", def(KindBirthday, 0), false},
		{"unknown user fails closed", "stranger", def(KindBirthday, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.IsSatisfied(ctx, tt.def, Stats{}, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSatisfiedEnvironmentalKinds(t *testing.T) {
	ctx := context.Background()
	repo := &fakeActivityRepo{records: []*models.Activity{
		act("angler", "2024-06-01", 3, withWeather("rain")),
		act("angler", "2024-06-02", 2, withWeather("drizzle")),
		act("angler", "2024-06-03", 0, withWeather("snow")), // skunked
		act("angler", "2024-06-04", 1, withClarity("muddy")),
		act("angler", "2024-06-05", 4, withTide("incoming")),
	}}
	ev := NewEvaluator(repo, &fakeUserRepo{})

	tests := []struct {
		name string
		def  *models.BadgeDefinition
		want bool
	}{
		{"caught in rain", def(KindWeather, 0, withMeta(map[string]interface{}{"weather": "rain"})), true},
		{"snow trip was skunked", def(KindWeather, 0, withMeta(map[string]interface{}{"weather": "snow"})), false},
		{"unknown category fails closed", def(KindWeather, 0, withMeta(map[string]interface{}{"weather": "hail of frogs"})), false},
		{"rain catches counted", def(KindWeatherCount, 5, withMeta(map[string]interface{}{"weather": "rain"})), true},
		{"rain count threshold unmet", def(KindWeatherCount, 6, withMeta(map[string]interface{}{"weather": "rain"})), false},
		{"muddy water", def(KindWaterClarity, 0, withMeta(map[string]interface{}{"clarity": "muddy"})), true},
		{"incoming tide sum", def(KindTideCount, 4, withMeta(map[string]interface{}{"tide": "incoming"})), true},
		{"counted kind with zero threshold fails closed", def(KindWeatherCount, 0, withMeta(map[string]interface{}{"weather": "rain"})), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.IsSatisfied(ctx, tt.def, Stats{}, "angler")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSatisfiedSocialKinds(t *testing.T) {
	ctx := context.Background()
	repo := &fakeActivityRepo{records: []*models.Activity{
		act("angler", "2024-06-01", 2, withFriends("pat", "sam")),
		act("angler", "2024-06-02", 1, withFriends("pat")),
		act("angler", "2024-06-03", 3),
		act("angler", "2024-06-04", 1, withFriends("lee", "pat", "sam")),
	}}
	users := &fakeUserRepo{followers: map[string]int{"angler": 25}}
	ev := NewEvaluator(repo, users)

	tests := []struct {
		name string
		def  *models.BadgeDefinition
		want bool
	}{
		{"three friend days", def(KindFriendDays, 3), true},
		{"four friend days unmet", def(KindFriendDays, 4), false},
		{"one solo day", def(KindSoloDays, 1), true},
		{"max companions on one trip", def(KindMaxCompanions, 3), true},
		{"distinct companions", def(KindCompanionVariety, 3), true},
		{"distinct companions unmet", def(KindCompanionVariety, 4), false},
		{"follower threshold", def(KindFollowers, 25), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.IsSatisfied(ctx, tt.def, Stats{}, "angler")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSatisfiedDayVarietyKinds(t *testing.T) {
	ctx := context.Background()
	// Grand-slam scenario: two species one day, a third the next day.
	repo := &fakeActivityRepo{records: []*models.Activity{
		act("angler", "2024-07-04", 1, withSpecies(1), withFly(10)),
		act("angler", "2024-07-04", 1, withSpecies(2), withFly(11)),
		act("angler", "2024-07-05", 1, withSpecies(3), withFly(12)),
	}}
	ev := NewEvaluator(repo, &fakeUserRepo{})

	got, err := ev.IsSatisfied(ctx, def(KindDaySpeciesVariety, 3), Stats{}, "angler")
	require.NoError(t, err)
	assert.False(t, got, "species variety is per-day, not across days")

	got, err = ev.IsSatisfied(ctx, def(KindDaySpeciesVariety, 2), Stats{}, "angler")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = ev.IsSatisfied(ctx, def(KindDayFlyVariety, 2), Stats{}, "angler")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsSatisfiedConsistencyKinds(t *testing.T) {
	ctx := context.Background()
	repo := &fakeActivityRepo{records: []*models.Activity{
		// Mondays of three consecutive ISO weeks, plus one the week before.
		act("angler", "2024-06-03", 1),
		act("angler", "2024-06-10", 1),
		act("angler", "2024-06-17", 1),
		act("angler", "2024-05-20", 1),
		// Consecutive Saturdays; the first also lands in the May 27 week.
		act("angler", "2024-06-01", 1),
		act("angler", "2024-06-08", 1),
	}}
	ev := NewEvaluator(repo, &fakeUserRepo{})

	tests := []struct {
		name string
		def  *models.BadgeDefinition
		want bool
	}{
		// Weeks of May 20 through Jun 17 all have activity: a run of 5.
		{"five week streak", def(KindWeeklyStreak, 5), true},
		{"six week streak unmet", def(KindWeeklyStreak, 6), false},
		{"two consecutive months", def(KindConsecutiveMonths, 2), true},
		{"weekend streak", def(KindWeekendStreak, 2), true},
		{"weekday count", def(KindWeekdayCount, 4), true},
		{"weekday count unmet", def(KindWeekdayCount, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.IsSatisfied(ctx, tt.def, Stats{}, "angler")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSatisfiedComboKind(t *testing.T) {
	ctx := context.Background()
	repo := &fakeActivityRepo{records: []*models.Activity{
		act("angler", "2024-12-21", 2, withHour(8), withMoon(models.MoonPhaseFull), withSize(22), withWeather("snow")),
		act("angler", "2024-07-10", 5, withHour(14)),
	}}
	ev := NewEvaluator(repo, &fakeUserRepo{})

	tests := []struct {
		name string
		meta map[string]interface{}
		want bool
	}{
		{"winter morning full moon", map[string]interface{}{"time": "morning", "phase": "full", "season": "winter"}, true},
		{"with size floor", map[string]interface{}{"phase": "full", "min_size": float64(20)}, true},
		{"size floor too high", map[string]interface{}{"phase": "full", "min_size": float64(25)}, false},
		{"weather in the mix", map[string]interface{}{"season": "winter", "weather": "snow"}, true},
		{"season mismatch", map[string]interface{}{"time": "morning", "season": "summer"}, false},
		{"min quantity", map[string]interface{}{"time": "afternoon", "min_quantity": float64(5)}, true},
		{"unknown phase poisons the combo", map[string]interface{}{"time": "morning", "phase": "super"}, false},
		{"empty meta fails closed", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.IsSatisfied(ctx, def(KindCombo, 0, withMeta(tt.meta)), Stats{}, "angler")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSatisfiedChallengeKinds(t *testing.T) {
	ctx := context.Background()
	repo := &fakeActivityRepo{records: []*models.Activity{
		// Personal bests: 10, then 12, then a smaller 8, then 15.
		act("angler", "2024-06-01", 3, withSize(10), withFly(1), withRod(1), withLocation(1), withHour(8)),
		act("angler", "2024-06-02", 0), // skunk
		act("angler", "2024-06-03", 2, withSize(12), withFly(1), withLocation(1), withHour(13)),
		act("angler", "2024-06-04", 1, withSize(8), withFly(1), withLocation(1)),
		// Full day: morning, afternoon, evening on one date.
		act("angler", "2024-06-05", 1, withHour(6), withFly(1), withLocation(1)),
		act("angler", "2024-06-05", 1, withHour(14)),
		act("angler", "2024-06-05", 2, withHour(20), withSize(15)),
	}}
	ev := NewEvaluator(repo, &fakeUserRepo{})

	challenge := func(field string, value float64) *models.BadgeDefinition {
		return def(KindChallenge, value, withField(field))
	}

	tests := []struct {
		name string
		def  *models.BadgeDefinition
		want bool
	}{
		{"one fly mastery", challenge(ChallengeOneFlyMastery, 7), true},
		{"one fly mastery unmet", challenge(ChallengeOneFlyMastery, 8), false},
		{"home waters visits", challenge(ChallengeHomeWaters, 4), true},
		{"home waters visits unmet", challenge(ChallengeHomeWaters, 5), false},
		{"personal bests", challenge(ChallengePersonalBest, 3), true},
		{"personal bests unmet", challenge(ChallengePersonalBest, 4), false},
		{"full day", challenge(ChallengeFullDay, 0), true},
		{"comeback after the skunk", challenge(ChallengeComeback, 0), true},
		{"redemption needs a trophy next day", challenge(ChallengeRedemption, 0), false},
		{"unknown challenge fails closed", challenge("moonwalk", 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.IsSatisfied(ctx, tt.def, Stats{}, "angler")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The follow-up to a skunked day is the next day the user went out, not the
// next calendar day: a comeback months later still counts.
func TestComebackSpansActivityGaps(t *testing.T) {
	ctx := context.Background()
	repo := &fakeActivityRepo{records: []*models.Activity{
		act("angler", "2024-01-15", 0),
		act("angler", "2024-06-20", 2, withSize(21)),
	}}
	ev := NewEvaluator(repo, &fakeUserRepo{})

	comeback, err := ev.IsSatisfied(ctx, def(KindChallenge, 0, withField(ChallengeComeback)), Stats{}, "angler")
	require.NoError(t, err)
	assert.True(t, comeback)

	// 21 clears the freshwater trophy cutoff, which is the one redemption uses.
	redemption, err := ev.IsSatisfied(ctx, def(KindChallenge, 0, withField(ChallengeRedemption)), Stats{}, "angler")
	require.NoError(t, err)
	assert.True(t, redemption)
}

func TestIsSatisfiedPropagatesRepoError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("db down")
	ev := NewEvaluator(&fakeActivityRepo{err: boom}, &fakeUserRepo{})

	_, err := ev.IsSatisfied(ctx, def(KindWeather, 0, withMeta(map[string]interface{}{"weather": "rain"})), Stats{}, "angler")
	assert.ErrorIs(t, err, boom)
}

func TestIsSatisfiedUnknownKindWithoutField(t *testing.T) {
	ev := NewEvaluator(&fakeActivityRepo{}, &fakeUserRepo{})

	got, err := ev.IsSatisfied(context.Background(), def("telepathy", 1), Stats{}, "angler")
	require.NoError(t, err)
	assert.False(t, got)
}
