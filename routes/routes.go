package routes

import (
	"gamehub/handlers"
	"gamehub/middleware"
	"gamehub/monitoring"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint of the catalog API on router.
func SetupRoutes(router *gin.Engine, h *handlers.Handler) {
	router.NoRoute(middleware.NotFoundRoute)

	router.GET("/", h.GetInitial)
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("", h.GetAPI)
		api.GET("/categories", h.GetCategories)
		api.GET("/users", h.GetUsers)

		api.GET("/reviews", h.GetReviews)
		api.GET("/reviews/:review_id", h.GetReviewByID)
		api.PATCH("/reviews/:review_id", h.PatchReview)
		api.GET("/reviews/:review_id/comments", h.GetComments)
		api.POST("/reviews/:review_id/comments", h.PostComment)

		api.DELETE("/comments/:comment_id", h.DeleteComment)
	}
}

// NewRouter builds a gin engine with the standard middleware chain and all
// routes. Callers add environment-specific middleware (CORS) via extra.
func NewRouter(h *handlers.Handler, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(extra...)
	router.Use(
		middleware.RemovePoweredBy(),
		middleware.SecurityHeaders(),
		monitoring.PrometheusMiddleware(),
		middleware.RequestLogger(),
		middleware.ErrorResponder(),
	)
	SetupRoutes(router, h)
	return router
}
