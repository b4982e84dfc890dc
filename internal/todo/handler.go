package todo

import (
	"strconv"

	"campusboard/internal/dto"
	"campusboard/internal/middleware"
	"campusboard/internal/response"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	service  *TodoService
	sessions *session.Store
}

// List 待办列表页
func (h *TodoHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	todos, err := h.service.List(userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, ListResponse{
		Todos: todos,
		Flash: h.sessions.PopFlash(middleware.CurrentSessionID(c)),
	})
}

// Search 按标题检索自己的待办
func (h *TodoHandler) Search(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	todos, err := h.service.Search(userID, req.Search)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, ListResponse{Todos: todos})
}

// Get 查看单条待办
func (h *TodoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.service.Get(id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, t)
}

// Edit 编辑页取数；非所有者闪现提示并跳回列表
func (h *TodoHandler) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	t, err := h.service.GetForEdit(id, userID)
	if err != nil {
		if err.Code == response.Forbidden {
			h.sessions.SetFlash(middleware.CurrentSessionID(c), "error", err.Msg)
		}
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, t)
}

// Create 创建待办
func (h *TodoHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req TodoRequest
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

// Update 更新待办
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	var req TodoRequest
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

// Delete 删除待办
func (h *TodoHandler) Delete(c *gin.Context) {
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

// parseID 解析路径中的待办ID
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的待办ID"),
		))
		return 0, false
	}
	return uint(id), true
}
