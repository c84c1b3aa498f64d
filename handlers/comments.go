package handlers

import (
	"net/http"

	"gamehub/models"
	"gamehub/monitoring"

	"github.com/gin-gonic/gin"
)

// GetComments handles GET /api/reviews/:review_id/comments
func (h *Handler) GetComments(c *gin.Context) {
	comments, err := h.svc.ListComments(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostComment handles POST /api/reviews/:review_id/comments and responds
// with the created comment itself.
func (h *Handler) PostComment(c *gin.Context) {
	var input models.NewCommentInput
	if err := bindJSON(c, &input); err != nil {
		h.rejectBody(c, err)
		return
	}

	comment, err := h.svc.PostComment(c.Request.Context(), c.Param("review_id"), input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	monitoring.CommentsCreated.Inc()
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.svc.DeleteComment(c.Request.Context(), c.Param("comment_id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
