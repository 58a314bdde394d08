package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       int64  `bun:"id,pk,autoincrement"`
	UserID   string `bun:"user_id,notnull,unique"`
	Username string `bun:"username,notnull"`

	// Birthday, when set, enables the birthday badge (month/day match).
	Birthday *time.Time `bun:"birthday,type:date"`

	Premium        bool      `bun:"premium,notnull,default:false"`
	PremiumExpires time.Time `bun:"premium_expires"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Follow is one follower edge: Follower follows Followee.
type Follow struct {
	bun.BaseModel `bun:"table:follows,alias:f"`

	ID         int64     `bun:"id,pk,autoincrement"`
	FollowerID string    `bun:"follower_id,notnull"`
	FolloweeID string    `bun:"followee_id,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
