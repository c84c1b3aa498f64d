package services

import (
	"context"
	"sort"

	"gamehub/apperror"
	"gamehub/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	DefaultSortColumn = "created_at"
)

// sortableColumns is the allow-list for sort_by.
var sortableColumns = map[string]clause.Column{
	"title":          {Table: "reviews", Name: "title"},
	"designer":       {Table: "reviews", Name: "designer"},
	"owner":          {Table: "reviews", Name: "owner"},
	"review_img_url": {Table: "reviews", Name: "review_img_url"},
	"review_body":    {Table: "reviews", Name: "review_body"},
	"category":       {Table: "reviews", Name: "category"},
	"created_at":     {Table: "reviews", Name: "created_at"},
	"votes":          {Table: "reviews", Name: "votes"},
	"comment_count":  {Name: "comment_count"},
}

// SortableColumns returns the allowed sort_by values in alphabetical order.
func SortableColumns() []string {
	cols := make([]string, 0, len(sortableColumns))
	for name := range sortableColumns {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}

// ReviewQuery carries the optional listing parameters. A nil field is
// absent; a non-nil field is present even when it holds "".
type ReviewQuery struct {
	Category *string
	SortBy   *string
	Order    *string
}

type reviewPlan struct {
	category *string
	orderBy  clause.OrderByColumn
}

// plan validates the query once and resolves defaults. Category existence
// is checked against storage later.
func (q ReviewQuery) plan() (reviewPlan, error) {
	name := DefaultSortColumn
	if q.SortBy != nil {
		name = *q.SortBy
	}
	column, ok := sortableColumns[name]
	if !ok {
		return reviewPlan{}, apperror.New(apperror.InvalidSortColumn)
	}

	desc := true
	if q.Order != nil {
		switch *q.Order {
		case OrderAsc:
			desc = false
		case OrderDesc:
		default:
			return reviewPlan{}, apperror.New(apperror.InvalidSortDirection)
		}
	}

	return reviewPlan{
		category: q.Category,
		orderBy:  clause.OrderByColumn{Column: column, Desc: desc},
	}, nil
}

func (s *Service) reviewsWithCount(ctx context.Context, p reviewPlan) *gorm.DB {
	tx := s.conn(ctx).Model(&models.Review{}).
		Select("reviews.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.review_id = reviews.review_id").
		Group("reviews.review_id")

	if p.category != nil {
		tx = tx.Where("reviews.category = ?", *p.category)
	}

	return tx.
		Order(p.orderBy).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "reviews", Name: "review_id"}})
}

func (s *Service) categoryExists(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := s.conn(ctx).Model(&models.Category{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

// ListReviews returns reviews with their comment_count, optionally narrowed
// to one category and ordered by an allow-listed column.
func (s *Service) ListReviews(ctx context.Context, q ReviewQuery) ([]models.ReviewWithCount, error) {
	p, err := q.plan()
	if err != nil {
		return nil, err
	}

	reviews := []models.ReviewWithCount{}
	if p.category == nil {
		if err := s.reviewsWithCount(ctx, p).Scan(&reviews).Error; err != nil {
			return nil, apperror.Normalize(err)
		}
		return reviews, nil
	}

	var (
		exists bool
		g      errgroup.Group
	)
	g.Go(func() error {
		var err error
		exists, err = s.categoryExists(ctx, *p.category)
		return err
	})
	g.Go(func() error {
		return s.reviewsWithCount(ctx, p).Scan(&reviews).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.Normalize(err)
	}

	if !exists {
		return nil, apperror.New(apperror.CategoryNotFound)
	}
	if len(reviews) == 0 {
		return nil, apperror.New(apperror.NoReviewsForCategory)
	}
	return reviews, nil
}
