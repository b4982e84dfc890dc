package channel

import (
	channelModel "campusboard/internal/model/channel"
	"campusboard/internal/session"
)

// CreateChannelRequest 创建频道请求
type CreateChannelRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

// SearchRequest 帖子标题检索请求
type SearchRequest struct {
	Search string `json:"search" form:"search" binding:"required"`
}

// ChannelSearchRequest 频道名称检索请求
type ChannelSearchRequest struct {
	ChannelSearch string `json:"channelsearch" form:"channelsearch" binding:"required"`
}

// PostWithCount 帖子及其评论数（评论数在读取时计算，不落库）
type PostWithCount struct {
	channelModel.Post
	CommentsCount int64 `json:"comments_count"`
}

// FeedResponse 频道首页：最新频道 + 帖子流
type FeedResponse struct {
	Posts           []PostWithCount        `json:"posts"`
	PopularChannels []channelModel.Channel `json:"popular_channels"`
	SearchNothing   bool                   `json:"search_nothing,omitempty"`
	Flash           *session.Flash         `json:"flash,omitempty"`
}

// ListResponse 全部频道列表
type ListResponse struct {
	AllChannels []channelModel.Channel `json:"all_channels"`
}

// DetailResponse 频道详情：频道 + 其下帖子
type DetailResponse struct {
	Channel  *channelModel.Channel `json:"channel"`
	Posts    []PostWithCount       `json:"posts"`
	SameUser bool                  `json:"same_user"`
}

// MutationResponse 写操作响应
type MutationResponse struct {
	Flash       string `json:"flash,omitempty"`
	RedirectURL string `json:"redirect_url"`
}
