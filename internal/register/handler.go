package register

import (
	"campusboard/internal/dto"

	"github.com/gin-gonic/gin"
)

type RegisterHandler struct {
	service *RegisterService
}

func (h *RegisterHandler) handle(c *gin.Context) {
	// 解析参数（表单或 JSON）
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	// 调用注册服务
	result, err := h.service.Register(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}
