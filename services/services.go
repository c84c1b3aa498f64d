// Package services implements the catalog operations on top of gorm: the
// resource resolver, the review query engine and the comment/vote mutations.
package services

import (
	"context"

	"gamehub/apperror"
	"gamehub/models"

	"gorm.io/gorm"
)

// Service is stateless apart from the pooled gorm handle and is safe for
// concurrent use by every request.
type Service struct {
	db *gorm.DB
}

func New(gdb *gorm.DB) *Service {
	return &Service{db: gdb}
}

// conn binds a statement to ctx values but not to its cancellation: once a
// query is dispatched it runs to completion.
func (s *Service) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(context.WithoutCancel(ctx))
}

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.conn(ctx).Order("slug").Find(&categories).Error; err != nil {
		return nil, apperror.Normalize(err)
	}
	return categories, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.conn(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, apperror.Normalize(err)
	}
	return users, nil
}
