package channel

import (
	"errors"
	"fmt"

	channelModel "campusboard/internal/model/channel"
	"campusboard/internal/response"
	"campusboard/internal/textmatch"

	"gorm.io/gorm"
)

const (
	feedChannelLimit     = 10
	searchCandidateLimit = 100
)

type ChannelService struct {
	repo *ChannelRepository
}

func NewChannelService(db *gorm.DB) *ChannelService {
	return &ChannelService{repo: NewChannelRepository(db)}
}

// withCounts 给帖子列表补上评论数
func (s *ChannelService) withCounts(posts []channelModel.Post) ([]PostWithCount, *response.BusinessError) {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	counts, err := s.repo.CountCommentsByPostIDs(ids)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}
	out := make([]PostWithCount, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostWithCount{Post: p, CommentsCount: counts[p.ID]})
	}
	return out, nil
}

// Feed 频道首页：最新 10 个频道 + 全部帖子流
func (s *ChannelService) Feed() (*FeedResponse, *response.BusinessError) {
	// 1. 最新频道
	channels, err := s.repo.ListRecent(feedChannelLimit)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}

	// 2. 帖子流及评论数
	posts, err := s.repo.ListPosts(0)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}
	withCounts, bizErr := s.withCounts(posts)
	if bizErr != nil {
		return nil, bizErr
	}

	return &FeedResponse{Posts: withCounts, PopularChannels: channels}, nil
}

// SearchPosts 按标题检索帖子，无命中时置 search_nothing
func (s *ChannelService) SearchPosts(query string) (*FeedResponse, *response.BusinessError) {
	channels, err := s.repo.ListRecent(feedChannelLimit)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}

	posts, err := s.repo.ListPosts(searchCandidateLimit)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}

	matcher := textmatch.NewMatcher(query)
	matched := make([]channelModel.Post, 0)
	for _, p := range posts {
		if matcher.Match(p.Title) {
			matched = append(matched, p)
		}
	}

	withCounts, bizErr := s.withCounts(matched)
	if bizErr != nil {
		return nil, bizErr
	}
	return &FeedResponse{
		Posts:           withCounts,
		PopularChannels: channels,
		SearchNothing:   len(matched) == 0,
	}, nil
}

// AllChannels 全部频道列表
func (s *ChannelService) AllChannels() (*ListResponse, *response.BusinessError) {
	channels, err := s.repo.ListAll()
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}
	return &ListResponse{AllChannels: channels}, nil
}

// SearchChannels 按名称检索频道
func (s *ChannelService) SearchChannels(query string) (*ListResponse, *response.BusinessError) {
	channels, err := s.repo.ListAll()
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}
	matcher := textmatch.NewMatcher(query)
	matched := make([]channelModel.Channel, 0)
	for _, ch := range channels {
		if matcher.Match(ch.Name) {
			matched = append(matched, ch)
		}
	}
	return &ListResponse{AllChannels: matched}, nil
}

// Create 创建频道，成功后跳转到新频道详情页
func (s *ChannelService) Create(userID uint, req *CreateChannelRequest) (*MutationResponse, *response.BusinessError) {
	ch := &channelModel.Channel{
		Name:     req.Name,
		AuthorID: userID,
	}
	if err := s.repo.Create(ch); err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}
	return &MutationResponse{
		Flash:       "Channel added",
		RedirectURL: fmt.Sprintf("/channel/%d", ch.ID),
	}, nil
}

// Detail 频道详情；频道不存在返回 NotFound
func (s *ChannelService) Detail(channelID, userID uint) (*DetailResponse, *response.BusinessError) {
	// 1. 查频道
	ch, err := s.repo.GetByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("频道不存在"),
			)
		}
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}

	// 2. 频道下的帖子及评论数
	posts, err := s.repo.ListPostsByChannel(channelID)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}
	withCounts, bizErr := s.withCounts(posts)
	if bizErr != nil {
		return nil, bizErr
	}

	return &DetailResponse{
		Channel:  ch,
		Posts:    withCounts,
		SameUser: ch.AuthorID == userID,
	}, nil
}

// Delete 作者删除频道，级联删除其下帖子与评论
func (s *ChannelService) Delete(channelID, userID uint) (*MutationResponse, *response.BusinessError) {
	deleted, err := s.repo.DeleteCascadeOwned(channelID, userID)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorCode(response.Fail), response.WithError(err))
	}
	if !deleted {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("频道不存在"),
		)
	}
	return &MutationResponse{
		Flash:       "Channel removed",
		RedirectURL: "/channel",
	}, nil
}
