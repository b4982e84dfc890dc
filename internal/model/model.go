package model

import (
	"gorm.io/gorm"

	"campusboard/internal/model/channel"
	"campusboard/internal/model/note"
	"campusboard/internal/model/todo"
	"campusboard/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 个人事项模型
		&todo.Todo{},
		&note.Note{},
		// 频道相关模型
		&channel.Channel{},
		&channel.Post{},
		&channel.Comment{},
	)
	if err != nil {
		return err
	}
	return nil
}
