package repository

import (
	"github.com/zha7nea/callcenter/internal/model"
)

type UserEntity struct {
	ID           int64  `db:"id"            gorm:"primaryKey;autoIncrement;column:id"`
	Username     string `db:"username"      gorm:"column:username;size:80;not null;uniqueIndex"`
	PasswordHash string `db:"password_hash" gorm:"column:password_hash;size:255;not null"`
	Role         string `db:"role"          gorm:"column:role;size:20;not null;default:user"`
}

func (UserEntity) TableName() string {
	return "users"
}

func toUserEntity(m *model.User) *UserEntity {
	if m == nil {
		return nil
	}
	return &UserEntity{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         string(m.Role),
	}
}

func toUserModel(e *UserEntity) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		ID:           e.ID,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Role:         model.Role(e.Role),
	}
}
