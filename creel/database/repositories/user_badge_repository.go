package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/creelhq/creel/creel/database/models"
	"github.com/uptrace/bun"
)

type UserBadgeRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]*models.UserBadge, error)
	Get(ctx context.Context, userID, badgeID string) (*models.UserBadge, error)
	Create(ctx context.Context, award *models.UserBadge) error
	Delete(ctx context.Context, userID, badgeID string) error
	MarkNotified(ctx context.Context, userID, badgeID string) error
}

type userBadgeRepository struct {
	db *bun.DB
}

func NewUserBadgeRepository(db *bun.DB) UserBadgeRepository {
	return &userBadgeRepository{db: db}
}

func (r *userBadgeRepository) GetByUserID(ctx context.Context, userID string) ([]*models.UserBadge, error) {
	var awards []*models.UserBadge
	err := r.db.NewSelect().
		Model(&awards).
		Where("user_id = ?", userID).
		Order("awarded_at ASC").
		Scan(ctx)

	return awards, err
}

func (r *userBadgeRepository) Get(ctx context.Context, userID, badgeID string) (*models.UserBadge, error) {
	award := new(models.UserBadge)
	err := r.db.NewSelect().
		Model(award).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return award, nil
}

func (r *userBadgeRepository) Create(ctx context.Context, award *models.UserBadge) error {
	if award.AwardedAt.IsZero() {
		award.AwardedAt = time.Now()
	}

	// The (user_id, badge_id) pair is a set: a concurrent duplicate insert
	// must not produce a second row.
	_, err := r.db.NewInsert().
		Model(award).
		On("CONFLICT (user_id, badge_id) DO NOTHING").
		Exec(ctx)

	return err
}

func (r *userBadgeRepository) Delete(ctx context.Context, userID, badgeID string) error {
	_, err := r.db.NewDelete().
		Model((*models.UserBadge)(nil)).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Exec(ctx)

	return err
}

func (r *userBadgeRepository) MarkNotified(ctx context.Context, userID, badgeID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.UserBadge)(nil)).
		Set("notified = ?", true).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Exec(ctx)

	return err
}
