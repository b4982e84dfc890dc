package todo

import (
	todoModel "campusboard/internal/model/todo"
	"campusboard/internal/session"
)

// TodoRequest 创建/更新待办请求
type TodoRequest struct {
	Title   string `json:"title" form:"title"`
	Details string `json:"details" form:"details"`
	DueDate string `json:"duedate" form:"duedate"`
	Status  string `json:"status" form:"status"`
}

// SearchRequest 标题检索请求
type SearchRequest struct {
	Search string `json:"search" form:"search" binding:"required"`
}

// ListResponse 列表页响应
type ListResponse struct {
	Todos []todoModel.Todo `json:"todos"`
	Flash *session.Flash   `json:"flash,omitempty"`
}

// FormResponse 表单校验失败时的回显
type FormResponse struct {
	Errors  []string `json:"errors"`
	Title   string   `json:"title"`
	Details string   `json:"details"`
	DueDate string   `json:"duedate,omitempty"`
}

// MutationResponse 写操作响应，redirect-after-write
type MutationResponse struct {
	Form        *FormResponse `json:"form,omitempty"`
	Flash       string        `json:"flash,omitempty"`
	RedirectURL string        `json:"redirect_url,omitempty"`
}
