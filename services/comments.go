package services

import (
	"context"
	"errors"
	"strings"

	"gamehub/apperror"
	"gamehub/models"
	"gamehub/utils"

	"github.com/go-playground/validator/v10"
)

// ListComments returns the comments of a review, newest first.
func (s *Service) ListComments(ctx context.Context, rawReviewID string) ([]models.Comment, error) {
	review, err := s.GetReview(ctx, rawReviewID)
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	err = s.conn(ctx).
		Where("review_id = ?", review.ReviewID).
		Order("created_at DESC").
		Order("comment_id").
		Find(&comments).Error
	if err != nil {
		return nil, apperror.Normalize(err)
	}
	if len(comments) == 0 {
		return nil, apperror.NotFound("comments")
	}
	return comments, nil
}

// PostComment attaches a comment to an existing review on behalf of an
// existing user.
func (s *Service) PostComment(ctx context.Context, rawReviewID string, input models.NewCommentInput) (*models.Comment, error) {
	review, err := s.GetReview(ctx, rawReviewID)
	if err != nil {
		return nil, err
	}

	if err := validateComment(input); err != nil {
		return nil, err
	}

	var authors int64
	if err := s.conn(ctx).Model(&models.User{}).Where("username = ?", input.Username).Count(&authors).Error; err != nil {
		return nil, apperror.Normalize(err)
	}
	if authors == 0 {
		return nil, apperror.New(apperror.UnknownAuthor)
	}

	comment := models.Comment{
		ReviewID: review.ReviewID,
		Author:   input.Username,
		Body:     input.Body,
		Votes:    0,
	}
	if err := s.insertComment(ctx, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// insertComment stores comment. The foreign keys still guard against the
// review or the author being removed after they were checked; a translated
// violation does not say which one failed, so the review is looked up again.
func (s *Service) insertComment(ctx context.Context, comment *models.Comment) error {
	err := s.conn(ctx).Create(comment).Error
	if err == nil {
		return nil
	}

	appErr := apperror.Normalize(err)
	if appErr.Kind == apperror.UnknownAuthor {
		var reviews int64
		if cerr := s.conn(ctx).Model(&models.Review{}).Where("review_id = ?", comment.ReviewID).Count(&reviews).Error; cerr == nil && reviews == 0 {
			missing := apperror.NotFound(ReviewEntity.Name)
			missing.Err = err
			return missing
		}
	}
	return appErr
}

func validateComment(input models.NewCommentInput) error {
	err := utils.ValidateStruct(input)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "body" {
				return apperror.Wrap(apperror.EmptyBody, err)
			}
		}
		return apperror.Wrap(apperror.UnknownAuthor, err)
	}
	if err != nil {
		return apperror.Normalize(err)
	}

	if strings.TrimSpace(input.Body) == "" {
		return apperror.New(apperror.EmptyBody)
	}
	return nil
}

// DeleteComment removes a single comment by id.
func (s *Service) DeleteComment(ctx context.Context, rawCommentID string) error {
	comment, err := Resolve[models.Comment](ctx, s.db, CommentEntity, rawCommentID)
	if err != nil {
		return err
	}
	if err := s.conn(ctx).Delete(&models.Comment{}, comment.CommentID).Error; err != nil {
		return apperror.Normalize(err)
	}
	return nil
}
