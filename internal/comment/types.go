package comment

// CreateRequest 发表评论请求
type CreateRequest struct {
	PostID  uint   `json:"post_id" form:"post_id" binding:"required"`
	Content string `json:"content" form:"content"`
}

// MutationResponse 写操作响应；删除时带上父帖定位用于回跳
type MutationResponse struct {
	Errors      []string `json:"errors,omitempty"`
	ChannelID   uint     `json:"channel_id,omitempty"`
	PostID      uint     `json:"post_id,omitempty"`
	Flash       string   `json:"flash,omitempty"`
	RedirectURL string   `json:"redirect_url,omitempty"`
}
