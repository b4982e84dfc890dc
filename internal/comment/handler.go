package comment

import (
	"strconv"

	"campusboard/internal/dto"
	"campusboard/internal/middleware"
	"campusboard/internal/response"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service  *CommentService
	sessions *session.Store
}

// Create 发表评论
func (h *CommentHandler) Create(c *gin.Context) {
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

// Delete 删除评论
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的评论ID"),
		))
		return
	}
	userID := middleware.CurrentUserID(c)

	result, bizErr := h.service.Delete(uint(id), userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	if result.Flash != "" {
		h.sessions.SetFlash(middleware.CurrentSessionID(c), "success", result.Flash)
	}

	dto.SuccessResponse(c, result)
}
