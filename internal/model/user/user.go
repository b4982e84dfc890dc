// Package user 用户模型
package user

import "time"

// 用户角色可选值
const (
	TypeStudent          = "Student"
	TypeTeacherAssistant = "Teacher Assistant"
	TypeTeacher          = "Teacher"
)

// User 用户表
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	UserType     string    `gorm:"type:varchar(50);comment:角色 Student/Teacher Assistant/Teacher" json:"usertype"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	Campus       string    `gorm:"type:varchar(100)" json:"campus"`
	Cohort       string    `gorm:"type:varchar(100)" json:"cohort"`
	StudyTime    string    `gorm:"type:varchar(50)" json:"studytime"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
