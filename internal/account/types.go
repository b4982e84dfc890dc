package account

import (
	noteModel "campusboard/internal/model/note"
	todoModel "campusboard/internal/model/todo"
	userModel "campusboard/internal/model/user"
	"campusboard/internal/session"
)

// DashboardResponse 个人主页：最新待办与笔记
type DashboardResponse struct {
	Name  string           `json:"name"`
	Todos []todoModel.Todo `json:"todos"`
	Notes []noteModel.Note `json:"notes"`
	Flash *session.Flash   `json:"flash,omitempty"`
}

// DirectoryResponse 用户目录
type DirectoryResponse struct {
	Users []userModel.User `json:"users"`
}

// SearchRequest 按姓名检索请求
type SearchRequest struct {
	Search string `json:"search" form:"search" binding:"required"`
}

// FilterRequest 目录筛选；各字段取 "All" 表示不过滤
type FilterRequest struct {
	UserType  string `json:"usertype" form:"usertype"`
	StudyTime string `json:"studytime" form:"studytime"`
	Campus    string `json:"campus" form:"campus"`
	Cohort    string `json:"cohort" form:"cohort"`
}

// ProfileRequest 资料更新请求
type ProfileRequest struct {
	Name      string `json:"name" form:"name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	UserType  string `json:"usertype" form:"usertype"`
	Phone     string `json:"phone" form:"phone"`
	Campus    string `json:"campus" form:"campus"`
	Cohort    string `json:"cohort" form:"cohort"`
	StudyTime string `json:"studytime" form:"studytime"`
}

// MutationResponse 写操作响应
type MutationResponse struct {
	Flash       string `json:"flash,omitempty"`
	RedirectURL string `json:"redirect_url"`
}
