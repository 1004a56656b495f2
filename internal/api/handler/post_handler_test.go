package handler

import (
	"Pulseboard/internal/api/dto"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostService struct {
	posts  []*dto.PostDTO
	err    error
	userID uint64
	query  *dto.PostQueryDTO
}

func (s *stubPostService) ListPosts(_ context.Context, userID uint64, query *dto.PostQueryDTO) ([]*dto.PostDTO, error) {
	s.userID = userID
	s.query = query
	return s.posts, s.err
}

func newPostRouter(stub *stubPostService, userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/posts", injectUser(userID), NewPostHandler(stub).ListPosts)
	return r
}

func TestListPostsSanitizesQueryParams(t *testing.T) {
	stub := &stubPostService{}
	r := newPostRouter(stub, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/posts?platform=all&mediaType=Nope&sortField=evil&sortOrder=ASC&startDate=2024-1-1&endDate=2024-02-10&q=camp'--", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.query)

	// all → 不过滤；非法值 → 回退
	assert.Nil(t, stub.query.Platform)
	assert.Nil(t, stub.query.MediaType)
	assert.Nil(t, stub.query.StartDate)
	assert.Nil(t, stub.query.Search)
	assert.Equal(t, "posted_at", stub.query.SortField)
	assert.Equal(t, "desc", stub.query.SortOrder)

	require.NotNil(t, stub.query.EndDate)
	assert.Equal(t, "2024-02-10", *stub.query.EndDate)
}

func TestListPostsValidFilters(t *testing.T) {
	stub := &stubPostService{}
	r := newPostRouter(stub, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/posts?platform=instagram&mediaType=reel&sortField=likes&sortOrder=asc&q=summer+camp", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.query)
	require.NotNil(t, stub.query.Platform)
	assert.Equal(t, "instagram", *stub.query.Platform)
	require.NotNil(t, stub.query.MediaType)
	assert.Equal(t, "reel", *stub.query.MediaType)
	assert.Equal(t, "likes", stub.query.SortField)
	assert.Equal(t, "asc", stub.query.SortOrder)
	require.NotNil(t, stub.query.Search)
	assert.Equal(t, "summer camp", *stub.query.Search)
}

// owner 只能来自会话：查询串里伪造的 user_id 不影响数据归属
func TestListPostsOwnerComesFromSessionOnly(t *testing.T) {
	stub := &stubPostService{}
	r := newPostRouter(stub, 42)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts?user_id=999&ownerId=999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint64(42), stub.userID)
}
