package services

import (
	"context"
	"encoding/json"

	"gamehub/apperror"
	"gamehub/models"

	"gorm.io/gorm"
)

const incVotesKey = "inc_votes"

// ParseVoteDelta extracts inc_votes from a decoded JSON object. Any other
// key is rejected even when inc_votes itself is valid.
func ParseVoteDelta(payload map[string]json.RawMessage) (int, error) {
	for key := range payload {
		if key != incVotesKey {
			return 0, apperror.New(apperror.UnexpectedField)
		}
	}

	raw, ok := payload[incVotesKey]
	if !ok {
		return 0, apperror.New(apperror.MissingField)
	}

	var delta *int
	if err := json.Unmarshal(raw, &delta); err != nil || delta == nil {
		return 0, apperror.Wrap(apperror.InvalidVoteDelta, err)
	}
	return *delta, nil
}

// ApplyVoteDelta adds inc_votes to a review's votes and returns the updated
// review. Review existence is checked before the payload.
func (s *Service) ApplyVoteDelta(ctx context.Context, rawReviewID string, payload map[string]json.RawMessage) (*models.Review, error) {
	review, err := s.GetReview(ctx, rawReviewID)
	if err != nil {
		return nil, err
	}

	delta, err := ParseVoteDelta(payload)
	if err != nil {
		return nil, err
	}

	var updated models.Review
	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Review{}).
			Where("review_id = ?", review.ReviewID).
			UpdateColumn("votes", gorm.Expr("votes + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound(ReviewEntity.Name)
		}
		return tx.Where("review_id = ?", review.ReviewID).Take(&updated).Error
	})
	if err != nil {
		return nil, apperror.Normalize(err)
	}
	return &updated, nil
}
