package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/creelhq/creel/creel/database/models"
	"github.com/uptrace/bun"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.User, error)
	GetAllUserIDs(ctx context.Context) ([]string, error)
	Create(ctx context.Context, user *models.User) error
	FollowerCount(ctx context.Context, userID string) (int, error)
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("user_id = ?", userID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetAllUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Column("user_id").
		Order("user_id ASC").
		Scan(ctx, &ids)

	return ids, err
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	return err
}

func (r *userRepository) FollowerCount(ctx context.Context, userID string) (int, error) {
	return r.db.NewSelect().
		Model((*models.Follow)(nil)).
		Where("followee_id = ?", userID).
		Count(ctx)
}
