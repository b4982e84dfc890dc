package channel

import (
	"strconv"

	"campusboard/internal/dto"
	"campusboard/internal/middleware"
	"campusboard/internal/response"

	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	service  *ChannelService
	sessions *session.Store
}

// Feed 频道首页
func (h *ChannelHandler) Feed(c *gin.Context) {
	result, err := h.service.Feed()
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	result.Flash = h.sessions.PopFlash(middleware.CurrentSessionID(c))

	dto.SuccessResponse(c, result)
}

// SearchPosts 按标题检索帖子
func (h *ChannelHandler) SearchPosts(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.service.SearchPosts(req.Search)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// AllChannels 全部频道列表
func (h *ChannelHandler) AllChannels(c *gin.Context) {
	result, err := h.service.AllChannels()
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// SearchChannels 按名称检索频道
func (h *ChannelHandler) SearchChannels(c *gin.Context) {
	var req ChannelSearchRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.service.SearchChannels(req.ChannelSearch)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// Create 创建频道
func (h *ChannelHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req CreateChannelRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.service.Create(userID, &req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	if result.Flash != "" {
		h.sessions.SetFlash(middleware.CurrentSessionID(c), "success", result.Flash)
	}

	dto.SuccessResponse(c, result)
}

// Detail 频道详情
func (h *ChannelHandler) Detail(c *gin.Context) {
	id, ok := parseChannelID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	result, err := h.service.Detail(id, userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// Delete 删除频道（仅作者），其下帖子评论一并删除
func (h *ChannelHandler) Delete(c *gin.Context) {
	id, ok := parseChannelID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	result, err := h.service.Delete(id, userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	if result.Flash != "" {
		h.sessions.SetFlash(middleware.CurrentSessionID(c), "success", result.Flash)
	}

	dto.SuccessResponse(c, result)
}

// parseChannelID 解析路径中的频道ID
func parseChannelID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的频道ID"),
		))
		return 0, false
	}
	return uint(id), true
}
