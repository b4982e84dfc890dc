package comment

import (
	channelModel "campusboard/internal/model/channel"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// GetPost 评论所属的帖子
func (r *CommentRepository) GetPost(postID uint) (*channelModel.Post, error) {
	var p channelModel.Post
	if err := r.db.First(&p, postID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CommentRepository) Create(cm *channelModel.Comment) error {
	return r.db.Create(cm).Error
}

// GetOwned 作者本人的评论
func (r *CommentRepository) GetOwned(id, authorID uint) (*channelModel.Comment, error) {
	var cm channelModel.Comment
	err := r.db.Where("id = ? AND author_id = ?", id, authorID).First(&cm).Error
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// DeleteOwned 仅删除作者本人的评论，返回命中行数
func (r *CommentRepository) DeleteOwned(id, authorID uint) (int64, error) {
	res := r.db.Where("id = ? AND author_id = ?", id, authorID).
		Delete(&channelModel.Comment{})
	return res.RowsAffected, res.Error
}
