package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// ListPosts 当前用户的帖子列表。owner 永远取自会话里的 user_id，查询参数无法指定
func (h *PostHandler) ListPosts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	query := buildPostQuery(c)
	posts, err := h.postSvc.ListPosts(c.Request.Context(), userID, query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// buildPostQuery 把原始查询参数规范化为类型化过滤条件，非法值回退为"不过滤"或默认排序
func buildPostQuery(c *gin.Context) *dto.PostQueryDTO {
	platform := util.SanitizeString(c.Query("platform"), consts.PlatformFilters)
	if platform != nil && *platform == consts.FilterAll {
		platform = nil
	}
	mediaType := util.SanitizeString(c.Query("mediaType"), consts.MediaTypeFilters)
	if mediaType != nil && *mediaType == consts.FilterAll {
		mediaType = nil
	}

	sortField := consts.DefaultSortField
	if field := util.SanitizeString(c.Query("sortField"), consts.PostSortFields); field != nil {
		sortField = *field
	}

	return &dto.PostQueryDTO{
		Platform:  platform,
		MediaType: mediaType,
		StartDate: util.SanitizeDate(c.Query("startDate")),
		EndDate:   util.SanitizeDate(c.Query("endDate")),
		Search:    util.SanitizeString(c.Query("q"), nil),
		SortField: sortField,
		SortOrder: util.SanitizeSortOrder(c.Query("sortOrder")),
	}
}
