package post

import (
	"errors"

	channelModel "campusboard/internal/model/channel"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) ChannelExists(channelID uint) (bool, error) {
	var count int64
	err := r.db.Model(&channelModel.Channel{}).
		Where("id = ?", channelID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) Create(p *channelModel.Post) error {
	return r.db.Create(p).Error
}

// GetByID 帖子详情，带频道与作者
func (r *PostRepository) GetByID(id uint) (*channelModel.Post, error) {
	var p channelModel.Post
	err := r.db.Preload("Channel").Preload("Author").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListComments 帖子下的评论，带作者，按时间正序
func (r *PostRepository) ListComments(postID uint) ([]channelModel.Comment, error) {
	var comments []channelModel.Comment
	err := r.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// UpdateOwned 仅更新作者本人的帖子，返回命中行数
func (r *PostRepository) UpdateOwned(id, authorID uint, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&channelModel.Post{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteCascadeOwned 作者本人删除帖子，同一事务内删除其评论。
// 返回被删帖子（用于回跳频道），不命中返回 nil。
func (r *PostRepository) DeleteCascadeOwned(id, authorID uint) (*channelModel.Post, error) {
	var deleted *channelModel.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var p channelModel.Post
		err := tx.Where("id = ? AND author_id = ?", id, authorID).First(&p).Error
		if err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).
			Delete(&channelModel.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&channelModel.Post{}, id).Error; err != nil {
			return err
		}
		deleted = &p
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return deleted, nil
}
