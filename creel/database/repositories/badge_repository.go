package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/creelhq/creel/creel/database/models"
	"github.com/uptrace/bun"
)

type BadgeRepository interface {
	GetByBadgeID(ctx context.Context, badgeID string) (*models.BadgeDefinition, error)
	GetActiveBadges(ctx context.Context) ([]*models.BadgeDefinition, error)
	GetAllBadges(ctx context.Context) ([]*models.BadgeDefinition, error)
	CreateBadge(ctx context.Context, badge *models.BadgeDefinition) error
	UpdateBadge(ctx context.Context, badge *models.BadgeDefinition) error
}

type badgeRepository struct {
	db *bun.DB
}

func NewBadgeRepository(db *bun.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) GetByBadgeID(ctx context.Context, badgeID string) (*models.BadgeDefinition, error) {
	badge := new(models.BadgeDefinition)
	err := r.db.NewSelect().
		Model(badge).
		Where("badge_id = ?", badgeID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("badge not found: %s", badgeID)
		}
		return nil, err
	}

	return badge, nil
}

func (r *badgeRepository) GetActiveBadges(ctx context.Context) ([]*models.BadgeDefinition, error) {
	var badges []*models.BadgeDefinition
	err := r.db.NewSelect().
		Model(&badges).
		Where("active = ?", true).
		Order("category ASC", "badge_id ASC").
		Scan(ctx)

	return badges, err
}

func (r *badgeRepository) GetAllBadges(ctx context.Context) ([]*models.BadgeDefinition, error) {
	var badges []*models.BadgeDefinition
	err := r.db.NewSelect().
		Model(&badges).
		Order("category ASC", "badge_id ASC").
		Scan(ctx)

	return badges, err
}

func (r *badgeRepository) CreateBadge(ctx context.Context, badge *models.BadgeDefinition) error {
	badge.CreatedAt = time.Now()
	badge.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(badge).Exec(ctx)
	return err
}

func (r *badgeRepository) UpdateBadge(ctx context.Context, badge *models.BadgeDefinition) error {
	badge.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(badge).
		WherePK().
		Exec(ctx)
	return err
}
