package post

import (
	"strconv"

	"campusboard/internal/dto"
	"campusboard/internal/middleware"
	"campusboard/internal/response"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	service  *PostService
	sessions *session.Store
}

// Create 发帖
func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.service.Create(userID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	if result.Flash != "" {
		h.sessions.SetFlash(middleware.CurrentSessionID(c), "success", result.Flash)
	}

	dto.SuccessResponse(c, result)
}

// Detail 帖子详情页
func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	result, err := h.service.Detail(id, userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	result.Flash = h.sessions.PopFlash(middleware.CurrentSessionID(c))

	dto.SuccessResponse(c, result)
}

// Edit 编辑页取数
func (h *PostHandler) Edit(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	p, err := h.service.GetForEdit(id, userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, p)
}

// Update 编辑帖子
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	var req EditRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.service.Update(id, userID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	if result.Flash != "" {
		h.sessions.SetFlash(middleware.CurrentSessionID(c), "success", result.Flash)
	}

	dto.SuccessResponse(c, result)
}

// Delete 删除帖子
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parsePostID(c)
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

// parsePostID 解析路径中的帖子ID
func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的帖子ID"),
		))
		return 0, false
	}
	return uint(id), true
}
