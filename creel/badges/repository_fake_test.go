package badges

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/creelhq/creel/creel/database/models"
	"github.com/creelhq/creel/creel/database/repositories"
)

// fakeActivityRepo computes every aggregate in memory from a plain record
// slice, mirroring the SQL semantics of the real repository. Setting err
// makes every method fail, for the error-propagation tests.
type fakeActivityRepo struct {
	records []*models.Activity
	// waterTypes maps species ID to water type for the partition query.
	waterTypes map[int64]string
	err        error
}

func (f *fakeActivityRepo) forUser(userID string) []*models.Activity {
	var out []*models.Activity
	for _, a := range f.records {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (f *fakeActivityRepo) GetAllByUserID(_ context.Context, userID string) ([]*models.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.forUser(userID), nil
}

func (f *fakeActivityRepo) Totals(_ context.Context, userID string) (*repositories.ActivityTotals, error) {
	if f.err != nil {
		return nil, f.err
	}
	t := &repositories.ActivityTotals{}
	dates := map[string]bool{}
	species := map[int64]bool{}
	locations := map[int64]bool{}
	rods := map[int64]bool{}
	flies := map[int64]bool{}
	for _, a := range f.forUser(userID) {
		t.Trips++
		t.TotalCaught += float64(a.Quantity)
		dates[dayKey(a.Date)] = true
		if a.MaxSize != nil {
			t.MeasuredCount++
			if *a.MaxSize > t.MaxSize {
				t.MaxSize = *a.MaxSize
			}
		}
		if a.MaxWeight != nil {
			t.WeighedCount++
			if *a.MaxWeight > t.MaxWeight {
				t.MaxWeight = *a.MaxWeight
			}
		}
		if a.SpeciesID != nil {
			species[*a.SpeciesID] = true
		}
		if a.LocationID != nil {
			locations[*a.LocationID] = true
		}
		if a.RodID != nil {
			rods[*a.RodID] = true
		}
		if a.FlyID != nil {
			flies[*a.FlyID] = true
		}
		if a.Notes != "" {
			t.NotesCount++
		}
		if a.HourOfDay != nil {
			if *a.HourOfDay < repositories.EarlyHourCutoff {
				t.EarlySum += float64(a.Quantity)
			}
			if *a.HourOfDay >= repositories.LateHourCutoff {
				t.LateSum += float64(a.Quantity)
			}
		}
		if a.MoonUp != nil {
			if *a.MoonUp {
				t.MoonUpSum += float64(a.Quantity)
			} else {
				t.MoonDownSum += float64(a.Quantity)
			}
		}
	}
	t.FishingDays = len(dates)
	t.SpeciesCount = len(species)
	t.LocationCount = len(locations)
	t.RodCount = len(rods)
	t.FlyCount = len(flies)
	return t, nil
}

func segmentOf(hour *int) string {
	if hour == nil {
		return ""
	}
	switch {
	case *hour >= 5 && *hour <= 11:
		return repositories.SegmentMorning
	case *hour >= 12 && *hour <= 17:
		return repositories.SegmentAfternoon
	case *hour >= 18 && *hour <= 23:
		return repositories.SegmentEvening
	default:
		return ""
	}
}

func (f *fakeActivityRepo) SumByDaySegment(_ context.Context, userID string) ([]repositories.GroupSum, error) {
	if f.err != nil {
		return nil, f.err
	}
	sums := map[string]float64{}
	for _, a := range f.forUser(userID) {
		if seg := segmentOf(a.HourOfDay); seg != "" {
			sums[seg] += float64(a.Quantity)
		}
	}
	return groupSums(sums), nil
}

func (f *fakeActivityRepo) SumByMoonPhase(_ context.Context, userID string) ([]repositories.GroupSum, error) {
	if f.err != nil {
		return nil, f.err
	}
	sums := map[string]float64{}
	for _, a := range f.forUser(userID) {
		if a.MoonPhase != nil {
			sums[*a.MoonPhase] += float64(a.Quantity)
		}
	}
	return groupSums(sums), nil
}

func (f *fakeActivityRepo) SumByMonth(_ context.Context, userID string) ([]repositories.MonthSum, error) {
	if f.err != nil {
		return nil, f.err
	}
	sums := map[int]float64{}
	for _, a := range f.forUser(userID) {
		sums[int(a.Date.Month())] += float64(a.Quantity)
	}
	var out []repositories.MonthSum
	for month, total := range sums {
		out = append(out, repositories.MonthSum{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (f *fakeActivityRepo) DayRollups(_ context.Context, userID string) ([]repositories.DayRollup, error) {
	if f.err != nil {
		return nil, f.err
	}
	type acc struct {
		quantity float64
		species  map[int64]bool
		segments map[string]bool
		maxSize  float64
		skunked  bool
	}
	byDay := map[string]*acc{}
	for _, a := range f.forUser(userID) {
		key := dayKey(a.Date)
		d := byDay[key]
		if d == nil {
			d = &acc{species: map[int64]bool{}, segments: map[string]bool{}}
			byDay[key] = d
		}
		d.quantity += float64(a.Quantity)
		if a.SpeciesID != nil {
			d.species[*a.SpeciesID] = true
		}
		if seg := segmentOf(a.HourOfDay); seg != "" {
			d.segments[seg] = true
		}
		if a.MaxSize != nil && *a.MaxSize > d.maxSize {
			d.maxSize = *a.MaxSize
		}
		if a.Quantity == 0 {
			d.skunked = true
		}
	}
	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]repositories.DayRollup, 0, len(keys))
	for _, k := range keys {
		d := byDay[k]
		date, _ := time.Parse("2006-01-02", k)
		out = append(out, repositories.DayRollup{
			Date:         date,
			Quantity:     d.quantity,
			SpeciesCount: len(d.species),
			Segments:     len(d.segments),
			MaxSize:      d.maxSize,
			Skunked:      d.skunked,
		})
	}
	return out, nil
}

func (f *fakeActivityRepo) WaterTypeTotals(_ context.Context, userID string, keeperFresh, trophyFresh, keeperSalt, trophySalt float64) ([]repositories.WaterTypeTotals, error) {
	if f.err != nil {
		return nil, f.err
	}
	byType := map[string]*repositories.WaterTypeTotals{}
	for _, a := range f.forUser(userID) {
		if a.SpeciesID == nil {
			continue
		}
		wt, ok := f.waterTypes[*a.SpeciesID]
		if !ok {
			continue
		}
		t := byType[wt]
		if t == nil {
			t = &repositories.WaterTypeTotals{WaterType: wt}
			byType[wt] = t
		}
		if a.MaxSize == nil {
			continue
		}
		if *a.MaxSize > t.MaxSize {
			t.MaxSize = *a.MaxSize
		}
		keeper, trophy := keeperFresh, trophyFresh
		if wt == models.WaterTypeSaltwater {
			keeper, trophy = keeperSalt, trophySalt
		}
		if *a.MaxSize >= keeper {
			t.Keepers++
		}
		if *a.MaxSize >= trophy {
			t.Trophies++
		}
	}
	var out []repositories.WaterTypeTotals
	for _, t := range byType {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WaterType < out[j].WaterType })
	return out, nil
}

func (f *fakeActivityRepo) entityRef(a *models.Activity, column string) *int64 {
	switch column {
	case "species_id":
		return a.SpeciesID
	case "location_id":
		return a.LocationID
	case "rod_id":
		return a.RodID
	case "fly_id":
		return a.FlyID
	default:
		return nil
	}
}

func (f *fakeActivityRepo) MaxSumByEntity(_ context.Context, userID, column string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	sums := map[int64]float64{}
	for _, a := range f.forUser(userID) {
		if id := f.entityRef(a, column); id != nil {
			sums[*id] += float64(a.Quantity)
		}
	}
	var max float64
	for _, total := range sums {
		if total > max {
			max = total
		}
	}
	return max, nil
}

func (f *fakeActivityRepo) MaxCountByEntity(_ context.Context, userID, column string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	dates := map[int64]map[string]bool{}
	for _, a := range f.forUser(userID) {
		if id := f.entityRef(a, column); id != nil {
			if dates[*id] == nil {
				dates[*id] = map[string]bool{}
			}
			dates[*id][dayKey(a.Date)] = true
		}
	}
	var max int
	for _, d := range dates {
		if len(d) > max {
			max = len(d)
		}
	}
	return max, nil
}

func (f *fakeActivityRepo) MaxDistinctPerDay(_ context.Context, userID, column string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	byDay := map[string]map[int64]bool{}
	for _, a := range f.forUser(userID) {
		if id := f.entityRef(a, column); id != nil {
			key := dayKey(a.Date)
			if byDay[key] == nil {
				byDay[key] = map[int64]bool{}
			}
			byDay[key][*id] = true
		}
	}
	var max int
	for _, ids := range byDay {
		if len(ids) > max {
			max = len(ids)
		}
	}
	return max, nil
}

func conditionValue(a *models.Activity, column string) *string {
	switch column {
	case "weather":
		return a.Weather
	case "wind":
		return a.Wind
	case "pressure":
		return a.Pressure
	case "water_clarity":
		return a.WaterClarity
	case "water_level":
		return a.WaterLevel
	case "water_speed":
		return a.WaterSpeed
	case "tide":
		return a.Tide
	case "surface":
		return a.Surface
	default:
		return nil
	}
}

func matchFilter(a *models.Activity, f repositories.ActivityFilter) (bool, error) {
	if f.MinQuantity != nil && a.Quantity < *f.MinQuantity {
		return false, nil
	}
	if f.MinSize != nil && (a.MaxSize == nil || *a.MaxSize < *f.MinSize) {
		return false, nil
	}
	if f.DaySegment != nil {
		switch *f.DaySegment {
		case repositories.SegmentMorning, repositories.SegmentAfternoon, repositories.SegmentEvening:
			if segmentOf(a.HourOfDay) != *f.DaySegment {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unknown day segment: %s", *f.DaySegment)
		}
	}
	if len(f.MoonPhases) > 0 {
		if a.MoonPhase == nil || !containsString(f.MoonPhases, *a.MoonPhase) {
			return false, nil
		}
	}
	if len(f.Months) > 0 && !containsInt(f.Months, int(a.Date.Month())) {
		return false, nil
	}
	if f.MonthDay != nil {
		if a.Date.Month() != f.MonthDay.Month || a.Date.Day() != f.MonthDay.Day {
			return false, nil
		}
	}
	for col, vals := range f.Conditions {
		v := conditionValue(a, col)
		if v == nil || !containsString(vals, *v) {
			return false, nil
		}
	}
	if f.WithFriends != nil {
		if *f.WithFriends != (len(a.FriendIDs) > 0) {
			return false, nil
		}
	}
	if f.WeekendOnly || f.WeekdayOnly {
		wd := a.Date.Weekday()
		weekend := wd == time.Saturday || wd == time.Sunday
		if f.WeekendOnly && !weekend {
			return false, nil
		}
		if f.WeekdayOnly && weekend {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakeActivityRepo) ExistsMatching(_ context.Context, userID string, filter repositories.ActivityFilter) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.forUser(userID) {
		ok, err := matchFilter(a, filter)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeActivityRepo) SumMatching(_ context.Context, userID string, filter repositories.ActivityFilter) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var total float64
	for _, a := range f.forUser(userID) {
		ok, err := matchFilter(a, filter)
		if err != nil {
			return 0, err
		}
		if ok {
			total += float64(a.Quantity)
		}
	}
	return total, nil
}

func (f *fakeActivityRepo) DistinctDatesMatching(_ context.Context, userID string, filter repositories.ActivityFilter) ([]time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]bool{}
	var dates []time.Time
	for _, a := range f.forUser(userID) {
		ok, err := matchFilter(a, filter)
		if err != nil {
			return nil, err
		}
		if ok && !seen[dayKey(a.Date)] {
			seen[dayKey(a.Date)] = true
			dates = append(dates, truncateDay(a.Date))
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func (f *fakeActivityRepo) CompanionTotals(_ context.Context, userID string) (*repositories.CompanionTotals, error) {
	if f.err != nil {
		return nil, f.err
	}
	t := &repositories.CompanionTotals{}
	distinct := map[string]bool{}
	for _, a := range f.forUser(userID) {
		if len(a.FriendIDs) > t.MaxOnRecord {
			t.MaxOnRecord = len(a.FriendIDs)
		}
		for _, id := range a.FriendIDs {
			distinct[id] = true
		}
	}
	t.Distinct = len(distinct)
	return t, nil
}

func (f *fakeActivityRepo) CountWhereLogged(_ context.Context, userID, column string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, a := range f.forUser(userID) {
		if v := conditionValue(a, column); v != nil && *v != "" {
			count++
		}
	}
	return count, nil
}

func (f *fakeActivityRepo) SizeProgression(_ context.Context, userID string) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	var sizes []float64
	for _, a := range f.forUser(userID) {
		if a.MaxSize != nil {
			sizes = append(sizes, *a.MaxSize)
		}
	}
	return sizes, nil
}

// fakeUserRepo is an in-memory user store keyed by user ID.
type fakeUserRepo struct {
	users     map[string]*models.User
	followers map[string]int
	err       error
}

func (f *fakeUserRepo) GetByUserID(_ context.Context, userID string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetAllUserIDs(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]string, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	if f.users == nil {
		f.users = map[string]*models.User{}
	}
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserRepo) FollowerCount(_ context.Context, userID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.followers[userID], nil
}

// fakeBadgeRepo serves a fixed catalog.
type fakeBadgeRepo struct {
	defs []*models.BadgeDefinition
	err  error
}

func (f *fakeBadgeRepo) GetByBadgeID(_ context.Context, badgeID string) (*models.BadgeDefinition, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.defs {
		if d.BadgeID == badgeID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeBadgeRepo) GetActiveBadges(_ context.Context) ([]*models.BadgeDefinition, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.BadgeDefinition
	for _, d := range f.defs {
		if d.Active {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeBadgeRepo) GetAllBadges(_ context.Context) ([]*models.BadgeDefinition, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.defs, nil
}

func (f *fakeBadgeRepo) CreateBadge(_ context.Context, badge *models.BadgeDefinition) error {
	if f.err != nil {
		return f.err
	}
	f.defs = append(f.defs, badge)
	return nil
}

func (f *fakeBadgeRepo) UpdateBadge(_ context.Context, badge *models.BadgeDefinition) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range f.defs {
		if d.BadgeID == badge.BadgeID {
			f.defs[i] = badge
		}
	}
	return nil
}

// fakeUserBadgeRepo stores awards keyed by user and badge IDs.
type fakeUserBadgeRepo struct {
	awards map[string]*models.UserBadge
	err    error
}

func awardKey(userID, badgeID string) string {
	return userID + "/" + badgeID
}

func (f *fakeUserBadgeRepo) GetByUserID(_ context.Context, userID string) ([]*models.UserBadge, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.UserBadge
	for _, a := range f.awards {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BadgeID < out[j].BadgeID })
	return out, nil
}

func (f *fakeUserBadgeRepo) Get(_ context.Context, userID, badgeID string) (*models.UserBadge, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.awards[awardKey(userID, badgeID)], nil
}

func (f *fakeUserBadgeRepo) Create(_ context.Context, award *models.UserBadge) error {
	if f.err != nil {
		return f.err
	}
	if f.awards == nil {
		f.awards = map[string]*models.UserBadge{}
	}
	key := awardKey(award.UserID, award.BadgeID)
	if _, exists := f.awards[key]; exists {
		return nil
	}
	f.awards[key] = award
	return nil
}

func (f *fakeUserBadgeRepo) Delete(_ context.Context, userID, badgeID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.awards, awardKey(userID, badgeID))
	return nil
}

func (f *fakeUserBadgeRepo) MarkNotified(_ context.Context, userID, badgeID string) error {
	if f.err != nil {
		return f.err
	}
	if a, ok := f.awards[awardKey(userID, badgeID)]; ok {
		a.Notified = true
	}
	return nil
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func groupSums(sums map[string]float64) []repositories.GroupSum {
	var out []repositories.GroupSum
	for key, total := range sums {
		out = append(out, repositories.GroupSum{Key: key, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func containsString(vals []string, v string) bool {
	for _, s := range vals {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(vals []int, v int) bool {
	for _, i := range vals {
		if i == v {
			return true
		}
	}
	return false
}
