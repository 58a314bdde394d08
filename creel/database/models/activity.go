package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Activity is one logged fishing trip/catch event. The engine only ever
// reads these; they are created and edited by the logging subsystem.
type Activity struct {
	bun.BaseModel `bun:"table:activities,alias:a"`

	ID     int64     `bun:"id,pk,autoincrement"`
	UserID string    `bun:"user_id,notnull"`
	Date   time.Time `bun:"date,notnull,type:date"`

	// HourOfDay is 0-23 when the user logged a time, nil otherwise.
	HourOfDay *int `bun:"hour_of_day"`

	// Quantity is the number of fish caught on this record. 0 means skunked.
	Quantity int      `bun:"quantity,notnull,default:0"`
	MaxSize  *float64 `bun:"max_size"`
	MaxWeight *float64 `bun:"max_weight"`

	SpeciesID  *int64 `bun:"species_id"`
	LocationID *int64 `bun:"location_id"`
	RodID      *int64 `bun:"rod_id"`
	FlyID      *int64 `bun:"fly_id"`

	// FriendIDs are the user IDs of companions on this trip.
	FriendIDs []string `bun:"friend_ids,array"`

	// Raw condition values as recorded; category grouping happens in the
	// badge engine's vocabularies, not here.
	Weather      *string `bun:"weather"`
	Wind         *string `bun:"wind"`
	Pressure     *string `bun:"pressure"`
	WaterClarity *string `bun:"water_clarity"`
	WaterLevel   *string `bun:"water_level"`
	WaterSpeed   *string `bun:"water_speed"`
	Tide         *string `bun:"tide"`
	Surface      *string `bun:"surface"`

	// Derived by the astronomical calculator when the record is saved.
	MoonPhase *string `bun:"moon_phase"`
	MoonUp    *bool   `bun:"moon_up"`

	Notes string `bun:"notes"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Species water type constants.
const (
	WaterTypeFreshwater = "freshwater"
	WaterTypeSaltwater  = "saltwater"
)

// Raw moon phases as the astronomical calculator emits them.
const (
	MoonPhaseNew            = "new"
	MoonPhaseWaxingCrescent = "waxing_crescent"
	MoonPhaseFirstQuarter   = "first_quarter"
	MoonPhaseWaxingGibbous  = "waxing_gibbous"
	MoonPhaseFull           = "full"
	MoonPhaseWaningGibbous  = "waning_gibbous"
	MoonPhaseLastQuarter    = "last_quarter"
	MoonPhaseWaningCrescent = "waning_crescent"
)

type Species struct {
	bun.BaseModel `bun:"table:species,alias:sp"`

	ID        int64  `bun:"id,pk,autoincrement"`
	Name      string `bun:"name,notnull"`
	WaterType string `bun:"water_type,notnull,default:'freshwater'"`
}
