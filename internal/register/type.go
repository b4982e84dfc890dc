package register

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name      string `json:"name" form:"name" binding:"required"`           // 姓名
	Email     string `json:"email" form:"email" binding:"required,email"`   // 邮箱
	Password  string `json:"password" form:"password" binding:"required"`   // 密码
	Password2 string `json:"password2" form:"password2" binding:"required"` // 确认密码
}

// RegisterResponse 注册响应
// 校验失败时回显表单字段（密码除外）并携带逐项错误信息
type RegisterResponse struct {
	Errors      []string `json:"errors,omitempty"`
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Flash       string   `json:"flash,omitempty"`
	RedirectURL string   `json:"redirect_url,omitempty"`
}
