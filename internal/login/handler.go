package login

import (
	"campusboard/config"
	"campusboard/internal/dto"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	service *LoginService
}

func (h *LoginHandler) handle(c *gin.Context) {
	// 解析参数（表单或 JSON）
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	// 调用登录服务
	result, err := h.service.Login(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	// 设置会话 Cookie
	sessConf := config.Conf.Session
	c.SetCookie(
		sessConf.CookieName,
		result.SessionToken,
		3600*sessConf.TTLHours,
		"/",
		"",
		sessConf.Secure,
		true,
	)

	dto.SuccessResponse(c, gin.H{
		"redirect_url": result.RedirectURL,
	})
}
