// Package todo 待办事项模型
package todo

import "time"

// 待办状态
const (
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Todo 待办事项表
type Todo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Details   string    `gorm:"type:text;not null" json:"details"`
	Status    string    `gorm:"type:varchar(20);not null;default:'In Progress'" json:"status"`
	DueDate   string    `gorm:"type:varchar(50)" json:"due_date"`
	UserID    uint      `gorm:"not null;index;comment:所属用户ID" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Todo) TableName() string {
	return "todos"
}
