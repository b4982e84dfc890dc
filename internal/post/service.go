package post

import (
	"errors"
	"fmt"
	"strings"

	channelModel "campusboard/internal/model/channel"
	"campusboard/internal/response"

	"gorm.io/gorm"
)

type PostService struct {
	repo *PostRepository
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{repo: NewPostRepository(db)}
}

// Create 在频道下发帖；校验失败回显表单且不落库
func (s *PostService) Create(userID uint, req CreateRequest) (MutationResponse, *response.BusinessError) {
	// 1. 参数校验
	if errs := validatePostFields(req.Title, req.Content); len(errs) > 0 {
		return MutationResponse{
			Form: &FormResponse{
				Errors:  errs,
				Title:   req.Title,
				Content: req.Content,
			},
		}, nil
	}

	// 2. 频道必须存在
	exists, err := s.repo.ChannelExists(req.ChannelID)
	if err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建帖子失败"),
			response.WithError(err),
		)
	}
	if !exists {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("频道不存在"),
		)
	}

	// 3. 创建
	p := &channelModel.Post{
		Title:     req.Title,
		Content:   req.Content,
		ChannelID: req.ChannelID,
		AuthorID:  userID,
	}
	if err := s.repo.Create(p); err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建帖子失败"),
			response.WithError(err),
		)
	}

	return MutationResponse{
		Flash:       "Post added",
		RedirectURL: fmt.Sprintf("/post/%d", p.ID),
	}, nil
}

// Detail 帖子详情，含评论及各自的 same_user 标记
func (s *PostService) Detail(postID, userID uint) (*DetailResponse, *response.BusinessError) {
	// 1. 查帖子
	p, err := s.repo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("帖子不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取帖子失败"),
			response.WithError(err),
		)
	}

	// 2. 查评论
	comments, err := s.repo.ListComments(postID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取评论失败"),
			response.WithError(err),
		)
	}
	views := make([]CommentView, 0, len(comments))
	for _, cm := range comments {
		views = append(views, CommentView{
			Comment:  cm,
			SameUser: cm.AuthorID == userID,
		})
	}

	return &DetailResponse{
		Post:     p,
		SameUser: p.AuthorID == userID,
		Comments: views,
	}, nil
}

// GetForEdit 编辑页取数；作者范围内查询，不命中按不存在处理
func (s *PostService) GetForEdit(postID, userID uint) (*channelModel.Post, *response.BusinessError) {
	p, err := s.repo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("帖子不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取帖子失败"),
			response.WithError(err),
		)
	}
	if p.AuthorID != userID {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("帖子不存在"),
		)
	}
	return p, nil
}

// Update 编辑帖子；仅作者可操作
func (s *PostService) Update(postID, userID uint, req EditRequest) (MutationResponse, *response.BusinessError) {
	// 1. 参数校验
	if errs := validatePostFields(req.Title, req.Content); len(errs) > 0 {
		return MutationResponse{
			Form: &FormResponse{
				Errors:  errs,
				Title:   req.Title,
				Content: req.Content,
			},
		}, nil
	}

	// 2. 作者范围内更新
	rows, err := s.repo.UpdateOwned(postID, userID, map[string]interface{}{
		"title":   req.Title,
		"content": req.Content,
	})
	if err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新帖子失败"),
			response.WithError(err),
		)
	}
	if rows == 0 {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("帖子不存在"),
		)
	}

	return MutationResponse{
		Flash:       "Post edited",
		RedirectURL: fmt.Sprintf("/post/%d", postID),
	}, nil
}

// Delete 删除帖子及其评论；仅作者可操作
func (s *PostService) Delete(postID, userID uint) (MutationResponse, *response.BusinessError) {
	deleted, err := s.repo.DeleteCascadeOwned(postID, userID)
	if err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除帖子失败"),
			response.WithError(err),
		)
	}
	if deleted == nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("帖子不存在"),
		)
	}

	return MutationResponse{
		Flash:       "Post deleted",
		RedirectURL: fmt.Sprintf("/channel/%d", deleted.ChannelID),
	}, nil
}

// validatePostFields 标题与内容均为必填
func validatePostFields(title, content string) []string {
	var errs []string
	if strings.TrimSpace(title) == "" {
		errs = append(errs, "Please add title")
	}
	if strings.TrimSpace(content) == "" {
		errs = append(errs, "Please add some content")
	}
	return errs
}
