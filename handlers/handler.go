package handlers

import (
	"errors"
	"io"

	"gamehub/apperror"
	"gamehub/services"

	"github.com/gin-gonic/gin"
)

// Handler exposes the catalog service over HTTP. Failures are attached with
// c.Error and rendered by middleware.ErrorResponder.
type Handler struct {
	svc *services.Service
}

func New(svc *services.Service) *Handler {
	return &Handler{svc: svc}
}

// bindJSON decodes the request body into dst. An empty body leaves dst
// untouched and is not an error.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperror.Wrap(apperror.MalformedBody, err)
	}
	return nil
}

// rejectBody reports a malformed body, unless the addressed review is itself
// missing or invalid, which takes precedence.
func (h *Handler) rejectBody(c *gin.Context, bindErr error) {
	if _, err := h.svc.GetReview(c.Request.Context(), c.Param("review_id")); err != nil {
		_ = c.Error(err)
		return
	}
	_ = c.Error(bindErr)
}
