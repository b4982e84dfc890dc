package note

import (
	"strconv"

	"campusboard/internal/dto"
	"campusboard/internal/middleware"
	"campusboard/internal/response"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	service  *NoteService
	sessions *session.Store
}

// List 笔记列表页
func (h *NoteHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	notes, err := h.service.List(userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, ListResponse{
		Notes: notes,
		Flash: h.sessions.PopFlash(middleware.CurrentSessionID(c)),
	})
}

// Search 按标题检索自己的笔记
func (h *NoteHandler) Search(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	notes, err := h.service.Search(userID, req.Search)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, ListResponse{Notes: notes})
}

// Get 查看单条笔记
func (h *NoteHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := h.service.Get(id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, n)
}

// Edit 编辑页取数；非所有者闪现提示并跳回列表
func (h *NoteHandler) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	n, err := h.service.GetForEdit(id, userID)
	if err != nil {
		if err.Code == response.Forbidden {
			h.sessions.SetFlash(middleware.CurrentSessionID(c), "error", err.Msg)
		}
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, n)
}

// Create 创建笔记
func (h *NoteHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req NoteRequest
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

// Update 更新笔记
func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	var req NoteRequest
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

// Delete 删除笔记
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
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

// parseID 解析路径中的笔记ID
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的笔记ID"),
		))
		return 0, false
	}
	return uint(id), true
}
