package account

import (
	"campusboard/internal/dto"
	"campusboard/internal/middleware"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	service  *AccountService
	sessions *session.Store
}

// Dashboard 个人主页
func (h *AccountHandler) Dashboard(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	name := c.GetString("name")

	result, err := h.service.Dashboard(userID, name)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	result.Flash = h.sessions.PopFlash(middleware.CurrentSessionID(c))

	dto.SuccessResponse(c, result)
}

// Directory 用户目录
func (h *AccountHandler) Directory(c *gin.Context) {
	result, err := h.service.Directory()
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// Search 按姓名检索用户
func (h *AccountHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.service.SearchUsers(req.Search)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// Filter 目录条件筛选
func (h *AccountHandler) Filter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.service.Filter(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// Profile 资料页取数（当前用户）
func (h *AccountHandler) Profile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	u, err := h.service.GetProfile(userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, u)
}

// UpdateProfile 更新资料；成功后同步刷新会话里的用户信息
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.service.UpdateProfile(userID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	// 姓名、邮箱可能已变，会话数据跟着更新
	token := middleware.CurrentSessionID(c)
	_ = h.sessions.Refresh(token, session.Data{
		UserID:   u.ID,
		Name:     u.Name,
		Email:    u.Email,
		UserType: u.UserType,
	})
	h.sessions.SetFlash(token, "success", "New profile settings updated")

	dto.SuccessResponse(c, MutationResponse{
		Flash:       "New profile settings updated",
		RedirectURL: "/users/dashboard",
	})
}
