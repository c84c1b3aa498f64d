package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUsers handles GET /api/users
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
