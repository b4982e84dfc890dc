package todo

import (
	"gorm.io/gorm"

	todoModel "campusboard/internal/model/todo"
)

// TodoRepository 待办数据访问层
type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// ListByUser 当前用户的全部待办，按创建时间倒序
func (r *TodoRepository) ListByUser(userID uint) ([]todoModel.Todo, error) {
	var todos []todoModel.Todo
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// ListRecentByUser 当前用户最近的待办（个人主页聚合用）
func (r *TodoRepository) ListRecentByUser(userID uint, limit int) ([]todoModel.Todo, error) {
	var todos []todoModel.Todo
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// GetByID 按ID查找
func (r *TodoRepository) GetByID(id uint) (*todoModel.Todo, error) {
	var t todoModel.Todo
	err := r.db.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create 创建待办
func (r *TodoRepository) Create(t *todoModel.Todo) error {
	return r.db.Create(t).Error
}

// UpdateOwned 按 ID+所有者 更新；非所有者命中 0 行
func (r *TodoRepository) UpdateOwned(id, userID uint, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&todoModel.Todo{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteOwned 按 ID+所有者 删除；非所有者命中 0 行
func (r *TodoRepository) DeleteOwned(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&todoModel.Todo{})
	return result.RowsAffected, result.Error
}
