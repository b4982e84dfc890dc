package middleware

import (
	"fmt"
	"net/http"

	"campusboard/config"
	"campusboard/internal/response"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
)

// resolveSession 从 cookie 中解析会话令牌并到 Redis 查询会话
func resolveSession(c *gin.Context, store *session.Store) (string, *session.Data, error) {
	cookieName := config.Conf.Session.CookieName
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return "", nil, fmt.Errorf("未提供会话令牌")
	}

	data, err := store.Get(token)
	if err != nil {
		return "", nil, fmt.Errorf("会话无效或已过期")
	}

	return token, data, nil
}

// SessionAuth 会话认证中间件（必需认证）
// 未登录时返回 401 并附带登录页跳转地址
func SessionAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, data, err := resolveSession(c, store)
		if err != nil {
			// 未登录统一回登录页
			c.JSON(http.StatusUnauthorized, response.CustomResponse(
				response.WithCode(response.Unauthorized),
				response.WithMessage("Please log in to view that resource"),
				response.WithData(gin.H{"redirect_url": "/users/login"}),
			))
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("session_id", token)
		c.Set("user_id", data.UserID)
		c.Set("name", data.Name)
		c.Set("email", data.Email)
		c.Set("usertype", data.UserType)
		c.Next()
	}
}

// OptionalSessionAuth 可选的会话认证中间件（不强制要求登录，但如果有会话则解析）
func OptionalSessionAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, data, err := resolveSession(c, store)
		if err == nil && data != nil {
			c.Set("session_id", token)
			c.Set("user_id", data.UserID)
			c.Set("name", data.Name)
			c.Set("email", data.Email)
			c.Set("usertype", data.UserType)
		}
		c.Next()
	}
}

// CurrentUserID 读取认证中间件写入的用户ID
func CurrentUserID(c *gin.Context) uint {
	userID, _ := c.Get("user_id")
	uid, _ := userID.(uint)
	return uid
}

// CurrentSessionID 读取认证中间件写入的会话令牌
func CurrentSessionID(c *gin.Context) string {
	sid, _ := c.Get("session_id")
	token, _ := sid.(string)
	return token
}
