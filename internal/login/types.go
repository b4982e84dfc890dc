package login

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`       // 邮箱
	Password string `json:"password" form:"password" binding:"required"` // 密码
}

// LoginResponse 登录响应
type LoginResponse struct {
	SessionToken string `json:"-"`
	RedirectURL  string `json:"redirect_url"`
}
