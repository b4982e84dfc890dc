// Package note 笔记模型
package note

import "time"

// Note 笔记表
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Details   string    `gorm:"type:text;not null" json:"details"`
	UserID    uint      `gorm:"not null;index;comment:所属用户ID" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
