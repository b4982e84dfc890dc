package post

import (
	channelModel "campusboard/internal/model/channel"
	"campusboard/internal/session"
)

// CreateRequest 发帖请求
type CreateRequest struct {
	ChannelID uint   `json:"channel_id" form:"channel_id" binding:"required"`
	Title     string `json:"title" form:"title"`
	Content   string `json:"content" form:"content"`
}

// EditRequest 编辑帖子请求
type EditRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

// CommentView 帖子详情页里的单条评论
type CommentView struct {
	channelModel.Comment
	SameUser bool `json:"same_user"`
}

// DetailResponse 帖子详情：帖子 + 评论
type DetailResponse struct {
	Post     *channelModel.Post `json:"post"`
	SameUser bool               `json:"same_user"`
	Comments []CommentView      `json:"comments"`
	Flash    *session.Flash     `json:"flash,omitempty"`
}

// FormResponse 校验失败时回显的表单
type FormResponse struct {
	Errors  []string `json:"errors,omitempty"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
}

// MutationResponse 写操作响应
type MutationResponse struct {
	Form        *FormResponse `json:"form,omitempty"`
	Flash       string        `json:"flash,omitempty"`
	RedirectURL string        `json:"redirect_url,omitempty"`
}
