package repository

import (
	"context"
	"errors"

	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/pkg/pg"
	"gorm.io/gorm"
)

type UserRepository struct {
	*pg.DB
}

func NewUserRepository(db *pg.DB) *UserRepository {
	return &UserRepository{
		db,
	}
}

// Create inserts the user and relies on the unique index on username; a
// duplicate surfaces as ErrUsernameTaken and leaves the table untouched.
func (r *UserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	entity := toUserEntity(u)
	entity.ID = 0

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, translate(err, ErrUserNotFound)
	}

	return toUserModel(entity), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var entity UserEntity
	err := r.Read(ctx).
		Where("username = ?", username).
		First(&entity).
		Error
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return toUserModel(&entity), nil
}
