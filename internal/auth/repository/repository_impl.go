package repository

import (
	"context"
	"errors"

	"github.com/tallertech/tallertech/internal/auth/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, usuario *domain.Usuario) error {
	return db.WithContext(ctx).Create(usuario).Error
}

func (r *repo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.Usuario, error) {
	var usuario domain.Usuario
	err := db.WithContext(ctx).
		Where("username = ?", username).
		Take(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}
