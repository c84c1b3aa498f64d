package handlers

import (
	"net/http"

	"gamehub/services"

	"github.com/gin-gonic/gin"
)

// Endpoints describes every route for GET /api.
var Endpoints = gin.H{
	"GET /api": gin.H{
		"description": "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/categories": gin.H{
		"description": "serves an object containing an array of all categories",
		"queries":     []string{},
		"exampleResponse": gin.H{
			"categories": []gin.H{
				{"slug": "social deduction", "description": "Players attempt to uncover each other's hidden role"},
			},
		},
	},
	"GET /api/reviews": gin.H{
		"description": "serves an object containing an array of reviews with their comment_count",
		"queries":     []string{"category", "sort_by", "order"},
		"sort_by":     services.SortableColumns(),
		"order":       []string{services.OrderAsc, services.OrderDesc},
		"exampleResponse": gin.H{
			"reviews": []gin.H{
				{
					"review_id":      3,
					"title":          "Ultimate Werewolf",
					"designer":       "Akihisa Okui",
					"owner":          "bainesface",
					"review_img_url": "https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg?w=700&h=700",
					"review_body":    "We couldn't find the werewolf!",
					"category":       "social deduction",
					"created_at":     "2021-01-18T10:01:41.251Z",
					"votes":          5,
					"comment_count":  3,
				},
			},
		},
	},
	"GET /api/reviews/:review_id": gin.H{
		"description": "serves an object containing the review of that review_id",
		"exampleResponse": gin.H{
			"review": gin.H{
				"review_id":      1,
				"title":          "Agricola",
				"designer":       "Uwe Rosenberg",
				"owner":          "mallionaire",
				"review_img_url": "https://images.pexels.com/photos/974314/pexels-photo-974314.jpeg?w=700&h=700",
				"review_body":    "Farmyard fun!",
				"category":       "euro game",
				"created_at":     "2021-01-18T10:00:20.514Z",
				"votes":          1,
			},
		},
	},
	"GET /api/reviews/:review_id/comments": gin.H{
		"description": "serves an object containing an array of the comments on that review, newest first",
		"exampleResponse": gin.H{
			"comments": []gin.H{
				{
					"comment_id": 5,
					"votes":      13,
					"created_at": "2021-01-18T10:24:05.410Z",
					"author":     "mallionaire",
					"body":       "Now this is a story all about how, board games turned my life upside down",
					"review_id":  2,
				},
			},
		},
	},
	"POST /api/reviews/:review_id/comments": gin.H{
		"description":    "posts a comment to the review of that review_id and serves the created comment",
		"exampleRequest": gin.H{"username": "dav3rid", "body": "example body"},
		"exampleResponse": gin.H{
			"comment_id": 7,
			"votes":      0,
			"created_at": "2023-02-09T12:23:15.35Z",
			"author":     "dav3rid",
			"body":       "example body",
			"review_id":  2,
		},
	},
	"PATCH /api/reviews/:review_id": gin.H{
		"description":    "adds inc_votes to the votes of the review of that review_id and serves the updated review",
		"exampleRequest": gin.H{"inc_votes": 1},
		"exampleResponse": gin.H{
			"review": gin.H{
				"review_id": 1,
				"title":     "Agricola",
				"votes":     2,
			},
		},
	},
	"DELETE /api/comments/:comment_id": gin.H{
		"description": "deletes the comment of that comment_id and responds with no content",
	},
	"GET /api/users": gin.H{
		"description": "serves an object containing an array of all users",
		"exampleResponse": gin.H{
			"users": []gin.H{
				{"username": "mallionaire", "name": "haz", "avatar_url": "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			},
		},
	},
}

// GetAPI handles GET /api
func (h *Handler) GetAPI(c *gin.Context) {
	c.JSON(http.StatusOK, Endpoints)
}

// GetInitial handles GET /
func (h *Handler) GetInitial(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "go to path /api to see description of available endpoints"})
}
