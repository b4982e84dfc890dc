package login

import (
	"campusboard/config"
	"campusboard/internal/dto"

	"github.com/gin-gonic/gin"
)

type LogoutHandler struct {
	service *LoginService
}

// Logout 用户退出登录：销毁 Redis 会话并清除 Cookie
func (h *LogoutHandler) Logout(c *gin.Context) {
	cookieName := config.Conf.Session.CookieName

	token, _ := c.Cookie(cookieName)
	if err := h.service.Logout(token); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	// 清除会话 Cookie
	c.SetCookie(
		cookieName,
		"",
		-1, // 立即过期
		"/",
		"",
		false,
		true,
	)

	dto.SuccessResponse(c, gin.H{
		"flash":        "You are logged out",
		"redirect_url": "/users/login",
	})
}
