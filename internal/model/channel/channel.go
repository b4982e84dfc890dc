// Package channel 频道/帖子/评论模型
package channel

import (
	"time"

	"gorm.io/gorm"

	userModel "campusboard/internal/model/user"
)

// Channel 频道表
type Channel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	AuthorID  uint      `gorm:"not null;index;comment:创建者ID" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	// 关联（可选，用于预加载）
	Author *userModel.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Channel) TableName() string {
	return "channels"
}

// Post 帖子表，属于一个频道
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ChannelID uint      `gorm:"not null;index;comment:频道ID" json:"channel_id"`
	AuthorID  uint      `gorm:"not null;index;comment:作者ID" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联（可选，用于预加载）
	Channel *Channel        `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
	Author  *userModel.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

// Comment 评论表，属于一个帖子
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	PostID    uint      `gorm:"not null;index;comment:帖子ID" json:"post_id"`
	AuthorID  uint      `gorm:"not null;index;comment:作者ID" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	// 关联（可选，用于预加载）
	Post   *Post           `gorm:"foreignKey:PostID" json:"-"`
	Author *userModel.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate GORM钩子：创建前的验证
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.Content == "" {
		return gorm.ErrInvalidData
	}
	return nil
}
