package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BadgeDefinition declares one achievement and the requirement that earns it.
// Which of the requirement fields are meaningful depends on RequirementKind;
// the evaluator treats anything missing or malformed as "not satisfiable".
type BadgeDefinition struct {
	bun.BaseModel `bun:"table:badge_definitions,alias:bd"`

	ID          int64  `bun:"id,pk,autoincrement"`
	BadgeID     string `bun:"badge_id,notnull,unique"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description,notnull"`
	Icon        string `bun:"icon"`
	Category    string `bun:"category,notnull"`
	Rarity      string `bun:"rarity,notnull,default:'common'"`

	RequirementKind      string                 `bun:"requirement_kind,notnull"`
	RequirementField     string                 `bun:"requirement_field"`
	RequirementOp        string                 `bun:"requirement_op"`
	RequirementValue     float64                `bun:"requirement_value,notnull,default:0"`
	RequirementSecondary float64                `bun:"requirement_secondary,notnull,default:0"`
	RequirementMeta      map[string]interface{} `bun:"requirement_meta,type:jsonb"`

	Active    bool      `bun:"active,notnull,default:true"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Badge category constants.
const (
	BadgeCategoryMilestone   = "milestone"
	BadgeCategoryConditions  = "conditions"
	BadgeCategorySeasonal    = "seasonal"
	BadgeCategorySocial      = "social"
	BadgeCategoryConsistency = "consistency"
	BadgeCategoryChallenge   = "challenge"
)

// Rarity tiers, lowest to highest.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Comparison operators accepted in RequirementOp. Empty defaults to ">=".
const (
	OpGTE = ">="
	OpGT  = ">"
	OpLTE = "<="
	OpLT  = "<"
	OpEQ  = "="
)

// UserBadge is the earned relationship between a user and a badge. There is
// at most one row per (user, badge); revoking deletes the row.
type UserBadge struct {
	bun.BaseModel `bun:"table:user_badges,alias:ub"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    string    `bun:"user_id,notnull"`
	BadgeID   string    `bun:"badge_id,notnull"`
	AwardedAt time.Time `bun:"awarded_at,notnull"`

	// StatsSnapshot captures the statistics map at the moment of award.
	StatsSnapshot map[string]float64 `bun:"stats_snapshot,type:jsonb"`

	// Notified is flipped by the presentation layer once the user has seen
	// the award. The engine never touches it after creation.
	Notified bool `bun:"notified,notnull,default:false"`
}
