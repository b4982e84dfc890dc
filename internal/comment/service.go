package comment

import (
	"errors"
	"fmt"
	"strings"

	channelModel "campusboard/internal/model/channel"
	"campusboard/internal/response"

	"gorm.io/gorm"
)

type CommentService struct {
	repo *CommentRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{repo: NewCommentRepository(db)}
}

// Create 在帖子下发表评论；帖子不存在则拒绝
func (s *CommentService) Create(userID uint, req CreateRequest) (MutationResponse, *response.BusinessError) {
	// 1. 参数校验
	if strings.TrimSpace(req.Content) == "" {
		return MutationResponse{
			Errors: []string{"Please add a comment"},
		}, nil
	}

	// 2. 帖子必须存在
	p, err := s.repo.GetPost(req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MutationResponse{}, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("帖子不存在"),
			)
		}
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("发表评论失败"),
			response.WithError(err),
		)
	}

	// 3. 创建
	cm := &channelModel.Comment{
		Content:  req.Content,
		PostID:   p.ID,
		AuthorID: userID,
	}
	if err := s.repo.Create(cm); err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("发表评论失败"),
			response.WithError(err),
		)
	}

	return MutationResponse{
		ChannelID:   p.ChannelID,
		PostID:      p.ID,
		Flash:       "Comment added",
		RedirectURL: fmt.Sprintf("/post/%d", p.ID),
	}, nil
}

// Delete 删除评论；仅作者可操作，回跳目标取自父帖
func (s *CommentService) Delete(id, userID uint) (MutationResponse, *response.BusinessError) {
	// 1. 作者范围内取评论，顺带拿到父帖定位
	cm, err := s.repo.GetOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MutationResponse{}, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("评论不存在"),
			)
		}
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除评论失败"),
			response.WithError(err),
		)
	}

	p, err := s.repo.GetPost(cm.PostID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除评论失败"),
			response.WithError(err),
		)
	}

	// 2. 删除
	rows, err := s.repo.DeleteOwned(id, userID)
	if err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除评论失败"),
			response.WithError(err),
		)
	}
	if rows == 0 {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("评论不存在"),
		)
	}

	result := MutationResponse{
		PostID: cm.PostID,
		Flash:  "Comment deleted",
	}
	if p != nil {
		result.ChannelID = p.ChannelID
		result.RedirectURL = fmt.Sprintf("/post/%d", p.ID)
	}
	return result, nil
}
