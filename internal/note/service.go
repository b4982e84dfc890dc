package note

import (
	"errors"
	"strings"

	noteModel "campusboard/internal/model/note"
	"campusboard/internal/response"
	"campusboard/internal/textmatch"

	"gorm.io/gorm"
)

type NoteService struct {
	repo *NoteRepository
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{
		repo: NewNoteRepository(db),
	}
}

// List 当前用户的笔记列表
func (s *NoteService) List(userID uint) ([]noteModel.Note, *response.BusinessError) {
	notes, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取笔记列表失败"),
			response.WithError(err),
		)
	}
	return notes, nil
}

// Search 在当前用户的笔记中按标题检索（内存过滤）
func (s *NoteService) Search(userID uint, query string) ([]noteModel.Note, *response.BusinessError) {
	notes, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	m := textmatch.NewMatcher(query)
	matched := make([]noteModel.Note, 0, len(notes))
	for _, n := range notes {
		if m.Match(n.Title) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// Get 查看单条笔记
func (s *NoteService) Get(id uint) (*noteModel.Note, *response.BusinessError) {
	n, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("笔记不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取笔记失败"),
			response.WithError(err),
		)
	}
	return n, nil
}

// GetForEdit 编辑页取数，所有者不符则拒绝
func (s *NoteService) GetForEdit(id, userID uint) (*noteModel.Note, *response.BusinessError) {
	n, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("Not authorized"),
		)
	}
	return n, nil
}

// Create 创建笔记；校验失败回显表单且不落库
func (s *NoteService) Create(userID uint, req NoteRequest) (MutationResponse, *response.BusinessError) {
	if errs := validateFields(req); len(errs) > 0 {
		return MutationResponse{
			Form: &FormResponse{
				Errors:  errs,
				Title:   req.Title,
				Details: req.Details,
			},
		}, nil
	}

	n := &noteModel.Note{
		Title:   req.Title,
		Details: req.Details,
		UserID:  userID,
	}
	if err := s.repo.Create(n); err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建笔记失败"),
			response.WithError(err),
		)
	}

	return MutationResponse{
		Flash:       "Note added",
		RedirectURL: "/notes",
	}, nil
}

// Update 更新笔记；仅所有者可操作，不命中按不存在处理
func (s *NoteService) Update(id, userID uint, req NoteRequest) (MutationResponse, *response.BusinessError) {
	if errs := validateFields(req); len(errs) > 0 {
		return MutationResponse{
			Form: &FormResponse{
				Errors:  errs,
				Title:   req.Title,
				Details: req.Details,
			},
		}, nil
	}

	rows, err := s.repo.UpdateOwned(id, userID, map[string]interface{}{
		"title":   req.Title,
		"details": req.Details,
	})
	if err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新笔记失败"),
			response.WithError(err),
		)
	}
	if rows == 0 {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("笔记不存在"),
		)
	}

	return MutationResponse{
		Flash:       "Note updated",
		RedirectURL: "/notes",
	}, nil
}

// Delete 删除笔记；仅所有者可操作
func (s *NoteService) Delete(id, userID uint) (MutationResponse, *response.BusinessError) {
	rows, err := s.repo.DeleteOwned(id, userID)
	if err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除笔记失败"),
			response.WithError(err),
		)
	}
	if rows == 0 {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("笔记不存在"),
		)
	}

	return MutationResponse{
		Flash:       "Note removed",
		RedirectURL: "/notes",
	}, nil
}

// validateFields 标题与详情均为必填
func validateFields(req NoteRequest) []string {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "Please add title")
	}
	if strings.TrimSpace(req.Details) == "" {
		errs = append(errs, "Please add some details")
	}
	return errs
}
