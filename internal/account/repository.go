package account

import (
	userModel "campusboard/internal/model/user"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetUser(id uint) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers 目录全量用户，按姓名排序
func (r *AccountRepository) ListUsers() ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.Order("name ASC").Find(&users).Error
	return users, err
}

// FilterUsers 条件筛选；fields 里只放真正要过滤的列
func (r *AccountRepository) FilterUsers(fields map[string]interface{}) ([]userModel.User, error) {
	var users []userModel.User
	q := r.db.Order("name ASC")
	if len(fields) > 0 {
		q = q.Where(fields)
	}
	err := q.Find(&users).Error
	return users, err
}

// EmailTakenByOther 邮箱是否已被其他用户占用
func (r *AccountRepository) EmailTakenByOther(email string, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&userModel.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error
	return count > 0, err
}

// UpdateProfile 更新当前用户资料，返回命中行数
func (r *AccountRepository) UpdateProfile(userID uint, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&userModel.User{}).
		Where("id = ?", userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}
