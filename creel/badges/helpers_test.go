package badges

import (
	"time"

	"github.com/creelhq/creel/creel/database/models"
)

// day parses a YYYY-MM-DD test date.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func days(ss ...string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i] = day(s)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

type actOption func(*models.Activity)

func withHour(h int) actOption {
	return func(a *models.Activity) { a.HourOfDay = ptr(h) }
}

func withSize(s float64) actOption {
	return func(a *models.Activity) { a.MaxSize = ptr(s) }
}

func withWeight(w float64) actOption {
	return func(a *models.Activity) { a.MaxWeight = ptr(w) }
}

func withSpecies(id int64) actOption {
	return func(a *models.Activity) { a.SpeciesID = ptr(id) }
}

func withLocation(id int64) actOption {
	return func(a *models.Activity) { a.LocationID = ptr(id) }
}

func withRod(id int64) actOption {
	return func(a *models.Activity) { a.RodID = ptr(id) }
}

func withFly(id int64) actOption {
	return func(a *models.Activity) { a.FlyID = ptr(id) }
}

func withFriends(ids ...string) actOption {
	return func(a *models.Activity) { a.FriendIDs = ids }
}

func withWeather(w string) actOption {
	return func(a *models.Activity) { a.Weather = ptr(w) }
}

func withClarity(c string) actOption {
	return func(a *models.Activity) { a.WaterClarity = ptr(c) }
}

func withTide(t string) actOption {
	return func(a *models.Activity) { a.Tide = ptr(t) }
}

func withMoon(phase string) actOption {
	return func(a *models.Activity) { a.MoonPhase = ptr(phase) }
}

func withMoonUp(up bool) actOption {
	return func(a *models.Activity) { a.MoonUp = ptr(up) }
}

func withNotes(n string) actOption {
	return func(a *models.Activity) { a.Notes = n }
}

var nextActID int64

// act builds one activity record for the fake repository.
func act(userID, date string, quantity int, opts ...actOption) *models.Activity {
	nextActID++
	a := &models.Activity{
		ID:       nextActID,
		UserID:   userID,
		Date:     day(date),
		Quantity: quantity,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
