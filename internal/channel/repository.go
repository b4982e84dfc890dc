package channel

import (
	"errors"

	channelModel "campusboard/internal/model/channel"

	"gorm.io/gorm"
)

type ChannelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// ListRecent 按创建时间倒序取最新频道
func (r *ChannelRepository) ListRecent(limit int) ([]channelModel.Channel, error) {
	var channels []channelModel.Channel
	err := r.db.Order("created_at DESC").Limit(limit).Find(&channels).Error
	return channels, err
}

// ListAll 全部频道，倒序
func (r *ChannelRepository) ListAll() ([]channelModel.Channel, error) {
	var channels []channelModel.Channel
	err := r.db.Order("created_at DESC").Find(&channels).Error
	return channels, err
}

func (r *ChannelRepository) GetByID(id uint) (*channelModel.Channel, error) {
	var ch channelModel.Channel
	if err := r.db.First(&ch, id).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *ChannelRepository) Create(ch *channelModel.Channel) error {
	return r.db.Create(ch).Error
}

// ListPosts 帖子流，带频道与作者，倒序。limit <= 0 表示不限制
func (r *ChannelRepository) ListPosts(limit int) ([]channelModel.Post, error) {
	var posts []channelModel.Post
	q := r.db.Preload("Channel").Preload("Author").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&posts).Error
	return posts, err
}

// ListPostsByChannel 某频道下的帖子，倒序
func (r *ChannelRepository) ListPostsByChannel(channelID uint) ([]channelModel.Post, error) {
	var posts []channelModel.Post
	err := r.db.Preload("Channel").Preload("Author").
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// CountCommentsByPostIDs 按帖子分组统计评论数，一次查询出全部
func (r *ChannelRepository) CountCommentsByPostIDs(postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}
	type row struct {
		PostID uint
		Total  int64
	}
	var rows []row
	err := r.db.Model(&channelModel.Comment{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, rw := range rows {
		counts[rw.PostID] = rw.Total
	}
	return counts, nil
}

// DeleteCascadeOwned 作者本人删除频道，单事务内级联删除帖子与评论。
// 返回是否真的删到了频道（频道不存在或非作者时为 false）。
func (r *ChannelRepository) DeleteCascadeOwned(channelID, authorID uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&channelModel.Post{}).
			Where("channel_id = ?", channelID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).
				Delete(&channelModel.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("channel_id = ?", channelID).
				Delete(&channelModel.Post{}).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ? AND author_id = ?", channelID, authorID).
			Delete(&channelModel.Channel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		deleted = true
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return deleted, err
}
