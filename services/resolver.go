package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gamehub/apperror"
	"gamehub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entity names an id-addressed table for the resolver.
type Entity struct {
	Name string
	Key  string
}

var (
	ReviewEntity  = Entity{Name: "review", Key: "review_id"}
	CommentEntity = Entity{Name: "comment", Key: "comment_id"}
)

// ParseID accepts only positive base-10 integers written as plain digits,
// so signs and whitespace are rejected.
func ParseID(raw string) (int, error) {
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, apperror.New(apperror.InvalidIdentifier)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperror.Wrap(apperror.InvalidIdentifier, err)
	}
	return id, nil
}

// Resolve loads the single T whose key equals rawID. A malformed id fails
// before any query is issued.
func Resolve[T any](ctx context.Context, gdb *gorm.DB, entity Entity, rawID string) (*T, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	var record T
	err = gdb.WithContext(context.WithoutCancel(ctx)).
		Where(clause.Eq{Column: clause.Column{Name: entity.Key}, Value: id}).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(entity.Name)
	}
	if err != nil {
		return nil, apperror.Normalize(err)
	}
	return &record, nil
}

func (s *Service) GetReview(ctx context.Context, rawID string) (*models.Review, error) {
	return Resolve[models.Review](ctx, s.db, ReviewEntity, rawID)
}
