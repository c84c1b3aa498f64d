package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamehub/db/dbtest"
	"gamehub/handlers"
	"gamehub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(handlers.New(services.New(dbtest.New(t))))
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	}
	return w, decoded
}

func TestGetCategories(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	categories := body["categories"].([]interface{})
	assert.Len(t, categories, 4)
	for _, raw := range categories {
		category := raw.(map[string]interface{})
		assert.IsType(t, "", category["slug"])
		assert.IsType(t, "", category["description"])
	}
}

func TestGetUsers(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	users := body["users"].([]interface{})
	assert.Len(t, users, 4)
	for _, raw := range users {
		user := raw.(map[string]interface{})
		assert.Contains(t, user, "username")
		assert.Contains(t, user, "name")
		assert.Contains(t, user, "avatar_url")
	}
}

func TestGetReviews(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodGet, "/api/reviews", "")
	require.Equal(t, http.StatusOK, w.Code)

	reviews := body["reviews"].([]interface{})
	require.Len(t, reviews, 13)
	for _, raw := range reviews {
		review := raw.(map[string]interface{})
		for _, key := range []string{"owner", "title", "category", "review_img_url", "created_at", "designer", "review_body"} {
			assert.IsType(t, "", review[key], key)
		}
		assert.IsType(t, float64(0), review["review_id"])
		assert.IsType(t, float64(0), review["votes"])
		assert.IsType(t, float64(0), review["comment_count"], "comment_count is never null")
	}
	assert.Equal(t, "2021-01-25T11:16:54.963Z", reviews[0].(map[string]interface{})["created_at"])
}

func TestGetReviewsQueries(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodGet, "/api/reviews?category=dexterity", "")
	require.Equal(t, http.StatusOK, w.Code)
	reviews := body["reviews"].([]interface{})
	require.NotEmpty(t, reviews)
	for _, raw := range reviews {
		assert.Equal(t, "dexterity", raw.(map[string]interface{})["category"])
	}

	w, body = do(t, r, http.MethodGet, "/api/reviews?category=social%20deduction&sort_by=votes&order=asc", "")
	require.Equal(t, http.StatusOK, w.Code)
	reviews = body["reviews"].([]interface{})
	require.Len(t, reviews, 11)
	assert.Equal(t, float64(100), reviews[len(reviews)-1].(map[string]interface{})["votes"])

	w, body = do(t, r, http.MethodGet, "/api/reviews?sort_by=comment_count", "")
	require.Equal(t, http.StatusOK, w.Code)
	reviews = body["reviews"].([]interface{})
	assert.Equal(t, float64(3), reviews[0].(map[string]interface{})["comment_count"])
	assert.Equal(t, float64(0), reviews[len(reviews)-1].(map[string]interface{})["comment_count"])
}

func TestGetReviewsFailures(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path   string
		status int
		msg    string
	}{
		{"/api/reviews?category=nonexistent", http.StatusNotFound, "category does not exist"},
		{"/api/reviews?category=children%27s%20games", http.StatusNotFound, "no reviews found for this category"},
		{"/api/reviews?sort_by=price", http.StatusBadRequest, "invalid sort_by query"},
		{"/api/reviews?sort_by=votes&order=sideways", http.StatusBadRequest, "invalid order query"},
		{"/api/reviews?order=DESC", http.StatusBadRequest, "invalid order query"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, body := do(t, r, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, body["msg"])
		})
	}
}

func TestGetReviewByID(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodGet, "/api/reviews/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	review := body["review"].(map[string]interface{})
	assert.Equal(t, float64(1), review["review_id"])
	assert.Equal(t, "Agricola", review["title"])
	assert.Equal(t, float64(1), review["votes"])
	assert.Equal(t, "euro game", review["category"])
	assert.Equal(t, "mallionaire", review["owner"])

	for _, id := range []string{"banana", "+1", "-1", "0"} {
		w, body = do(t, r, http.MethodGet, "/api/reviews/"+id, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Equal(t, "Bad request", body["msg"], id)
	}

	w, body = do(t, r, http.MethodGet, "/api/reviews/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "review not found", body["msg"])
}

func TestPatchReviewVotes(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPatch, "/api/reviews/1", `{"inc_votes": 50}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(51), body["review"].(map[string]interface{})["votes"])

	w, body = do(t, r, http.MethodPatch, "/api/reviews/1", `{"inc_votes": -1}`)
	require.Equal(t, http.StatusOK, w.Code)
	review := body["review"].(map[string]interface{})
	assert.Equal(t, float64(50), review["votes"])
	assert.Equal(t, "Agricola", review["title"])
}

func TestPatchReviewFailures(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		msg    string
	}{
		{"empty object", "/api/reviews/1", `{}`, http.StatusBadRequest, "Bad request: inc_votes is required"},
		{"no body", "/api/reviews/1", ``, http.StatusBadRequest, "Bad request: inc_votes is required"},
		{"extra field", "/api/reviews/1", `{"inc_votes": 1, "name": "Mitch"}`, http.StatusBadRequest, "Bad request: only inc_votes may be updated"},
		{"non numeric", "/api/reviews/1", `{"inc_votes": "cat"}`, http.StatusBadRequest, "Bad request: inc_votes must be an integer"},
		{"malformed json", "/api/reviews/1", `{"inc_votes":`, http.StatusBadRequest, "Bad request: malformed JSON body"},
		{"invalid id", "/api/reviews/banana", `{"inc_votes": 1}`, http.StatusBadRequest, "Bad request"},
		{"unknown id", "/api/reviews/9999", `{"inc_votes": 1}`, http.StatusNotFound, "review not found"},
		{"unknown id wins over bad payload", "/api/reviews/9999", `{"votes": 1}`, http.StatusNotFound, "review not found"},
		{"unknown id wins over malformed json", "/api/reviews/9999", `[`, http.StatusNotFound, "review not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, r, http.MethodPatch, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, body["msg"])
		})
	}

	_, body := do(t, r, http.MethodGet, "/api/reviews/1", "")
	assert.Equal(t, float64(1), body["review"].(map[string]interface{})["votes"])
}

func TestGetComments(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodGet, "/api/reviews/2/comments", "")
	require.Equal(t, http.StatusOK, w.Code)
	comments := body["comments"].([]interface{})
	require.Len(t, comments, 3)
	for _, raw := range comments {
		comment := raw.(map[string]interface{})
		assert.Equal(t, float64(2), comment["review_id"])
		for _, key := range []string{"comment_id", "votes", "created_at", "author", "body"} {
			assert.Contains(t, comment, key)
		}
	}

	w, _ = do(t, r, http.MethodGet, "/api/reviews/1/comments", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/reviews/9999/comments", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/reviews/nope/comments", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostComment(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPost, "/api/reviews/1/comments", `{"username": "dav3rid", "body": "im a builder this game is lit"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(7), body["comment_id"])
	assert.Equal(t, float64(1), body["review_id"])
	assert.Equal(t, "dav3rid", body["author"])
	assert.Equal(t, "im a builder this game is lit", body["body"])
	assert.Equal(t, float64(0), body["votes"])
	assert.IsType(t, "", body["created_at"])

	_, reviews := do(t, r, http.MethodGet, "/api/reviews?category=euro%20game", "")
	review := reviews["reviews"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(1), review["comment_count"])
}

func TestPostCommentFailures(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		msg    string
	}{
		{"unknown author", "/api/reviews/1/comments", `{"username": "ghost", "body": "boo"}`, http.StatusBadRequest, "username does not exist"},
		{"empty body", "/api/reviews/1/comments", `{"username": "dav3rid", "body": ""}`, http.StatusBadRequest, "Bad request: body must not be empty"},
		{"no payload", "/api/reviews/1/comments", ``, http.StatusBadRequest, "Bad request: body must not be empty"},
		{"wrong types", "/api/reviews/1/comments", `{"username": 4, "body": 5}`, http.StatusBadRequest, "Bad request: malformed JSON body"},
		{"invalid id", "/api/reviews/x/comments", `{"username": "dav3rid", "body": "hi"}`, http.StatusBadRequest, "Bad request"},
		{"unknown review", "/api/reviews/9999/comments", `{"username": "dav3rid", "body": "hi"}`, http.StatusNotFound, "review not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, body["msg"])
		})
	}
}

func TestDeleteComment(t *testing.T) {
	r := newTestRouter(t)

	w, _ := do(t, r, http.MethodDelete, "/api/comments/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	w, body := do(t, r, http.MethodDelete, "/api/comments/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "comment not found", body["msg"])

	w, _ = do(t, r, http.MethodDelete, "/api/comments/first", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIDocumentationAndFallbacks(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, route := range []string{"GET /api/reviews", "PATCH /api/reviews/:review_id", "POST /api/reviews/:review_id/comments"} {
		assert.Contains(t, body, route)
	}

	reviewsDoc := body["GET /api/reviews"].(map[string]interface{})
	sortBy := reviewsDoc["sort_by"].([]interface{})
	assert.Contains(t, sortBy, "comment_count")
	assert.Contains(t, sortBy, "votes")
	assert.Len(t, sortBy, 9)

	w, body = do(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body["message"], "/api")

	w, body = do(t, r, http.MethodGet, "/api/not-a-route", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "path not found", body["msg"])
}
