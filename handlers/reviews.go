package handlers

import (
	"encoding/json"
	"net/http"

	"gamehub/monitoring"
	"gamehub/services"

	"github.com/gin-gonic/gin"
)

func optionalQuery(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok {
		return &v
	}
	return nil
}

// GetReviews handles GET /api/reviews?category=&sort_by=&order=
func (h *Handler) GetReviews(c *gin.Context) {
	query := services.ReviewQuery{
		Category: optionalQuery(c, "category"),
		SortBy:   optionalQuery(c, "sort_by"),
		Order:    optionalQuery(c, "order"),
	}

	reviews, err := h.svc.ListReviews(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// GetReviewByID handles GET /api/reviews/:review_id
func (h *Handler) GetReviewByID(c *gin.Context) {
	review, err := h.svc.GetReview(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

// PatchReview handles PATCH /api/reviews/:review_id with {"inc_votes": n}
func (h *Handler) PatchReview(c *gin.Context) {
	payload := map[string]json.RawMessage{}
	if err := bindJSON(c, &payload); err != nil {
		h.rejectBody(c, err)
		return
	}

	review, err := h.svc.ApplyVoteDelta(c.Request.Context(), c.Param("review_id"), payload)
	if err != nil {
		_ = c.Error(err)
		return
	}

	monitoring.VotesApplied.Inc()
	c.JSON(http.StatusOK, gin.H{"review": review})
}
