package note

import (
	"gorm.io/gorm"

	noteModel "campusboard/internal/model/note"
)

// NoteRepository 笔记数据访问层
type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// ListByUser 当前用户的全部笔记，按创建时间倒序
func (r *NoteRepository) ListByUser(userID uint) ([]noteModel.Note, error) {
	var notes []noteModel.Note
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// ListRecentByUser 当前用户最近的笔记（个人主页聚合用）
func (r *NoteRepository) ListRecentByUser(userID uint, limit int) ([]noteModel.Note, error) {
	var notes []noteModel.Note
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// GetByID 按ID查找
func (r *NoteRepository) GetByID(id uint) (*noteModel.Note, error) {
	var n noteModel.Note
	err := r.db.First(&n, id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create 创建笔记
func (r *NoteRepository) Create(n *noteModel.Note) error {
	return r.db.Create(n).Error
}

// UpdateOwned 按 ID+所有者 更新；非所有者命中 0 行
func (r *NoteRepository) UpdateOwned(id, userID uint, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&noteModel.Note{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteOwned 按 ID+所有者 删除；非所有者命中 0 行
func (r *NoteRepository) DeleteOwned(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&noteModel.Note{})
	return result.RowsAffected, result.Error
}
