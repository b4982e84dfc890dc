package note

import (
	noteModel "campusboard/internal/model/note"
	"campusboard/internal/session"
)

// NoteRequest 创建/更新笔记请求
type NoteRequest struct {
	Title   string `json:"title" form:"title"`
	Details string `json:"details" form:"details"`
}

// SearchRequest 标题检索请求
type SearchRequest struct {
	Search string `json:"search" form:"search" binding:"required"`
}

// ListResponse 列表页响应
type ListResponse struct {
	Notes []noteModel.Note `json:"notes"`
	Flash *session.Flash   `json:"flash,omitempty"`
}

// FormResponse 表单校验失败时的回显
type FormResponse struct {
	Errors  []string `json:"errors"`
	Title   string   `json:"title"`
	Details string   `json:"details"`
}

// MutationResponse 写操作响应，redirect-after-write
type MutationResponse struct {
	Form        *FormResponse `json:"form,omitempty"`
	Flash       string        `json:"flash,omitempty"`
	RedirectURL string        `json:"redirect_url,omitempty"`
}
