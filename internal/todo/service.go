package todo

import (
	"errors"
	"strings"

	todoModel "campusboard/internal/model/todo"
	"campusboard/internal/response"
	"campusboard/internal/textmatch"

	"gorm.io/gorm"
)

type TodoService struct {
	repo *TodoRepository
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{
		repo: NewTodoRepository(db),
	}
}

// List 当前用户的待办列表
func (s *TodoService) List(userID uint) ([]todoModel.Todo, *response.BusinessError) {
	todos, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取待办列表失败"),
			response.WithError(err),
		)
	}
	return todos, nil
}

// Search 在当前用户的待办中按标题检索（内存过滤）
func (s *TodoService) Search(userID uint, query string) ([]todoModel.Todo, *response.BusinessError) {
	todos, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	m := textmatch.NewMatcher(query)
	matched := make([]todoModel.Todo, 0, len(todos))
	for _, t := range todos {
		if m.Match(t.Title) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Get 查看单条待办
func (s *TodoService) Get(id uint) (*todoModel.Todo, *response.BusinessError) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("待办不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取待办失败"),
			response.WithError(err),
		)
	}
	return t, nil
}

// GetForEdit 编辑页取数，所有者不符则拒绝
func (s *TodoService) GetForEdit(id, userID uint) (*todoModel.Todo, *response.BusinessError) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("Not authorized"),
		)
	}
	return t, nil
}

// Create 创建待办；校验失败回显表单且不落库
func (s *TodoService) Create(userID uint, req TodoRequest) (MutationResponse, *response.BusinessError) {
	// 1. 参数校验
	if errs := validateFields(req); len(errs) > 0 {
		return MutationResponse{
			Form: &FormResponse{
				Errors:  errs,
				Title:   req.Title,
				Details: req.Details,
				DueDate: req.DueDate,
			},
		}, nil
	}

	// 2. 创建
	t := &todoModel.Todo{
		Title:   req.Title,
		Details: req.Details,
		DueDate: req.DueDate,
		Status:  todoModel.StatusInProgress,
		UserID:  userID,
	}
	if err := s.repo.Create(t); err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建待办失败"),
			response.WithError(err),
		)
	}

	return MutationResponse{
		Flash:       "Todo added",
		RedirectURL: "/todos",
	}, nil
}

// Update 更新待办；仅所有者可操作，不命中按不存在处理
func (s *TodoService) Update(id, userID uint, req TodoRequest) (MutationResponse, *response.BusinessError) {
	// 1. 参数校验
	if errs := validateFields(req); len(errs) > 0 {
		return MutationResponse{
			Form: &FormResponse{
				Errors:  errs,
				Title:   req.Title,
				Details: req.Details,
				DueDate: req.DueDate,
			},
		}, nil
	}

	// 2. 组装更新字段
	fields := map[string]interface{}{
		"title":    req.Title,
		"details":  req.Details,
		"due_date": req.DueDate,
	}
	if status := strings.TrimSpace(req.Status); status != "" {
		if status != todoModel.StatusInProgress && status != todoModel.StatusCompleted {
			return MutationResponse{}, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("无效的待办状态"),
			)
		}
		fields["status"] = status
	}

	// 3. 所有者范围内更新
	rows, err := s.repo.UpdateOwned(id, userID, fields)
	if err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新待办失败"),
			response.WithError(err),
		)
	}
	if rows == 0 {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("待办不存在"),
		)
	}

	return MutationResponse{
		Flash:       "Todo updated",
		RedirectURL: "/todos",
	}, nil
}

// Delete 删除待办；仅所有者可操作
func (s *TodoService) Delete(id, userID uint) (MutationResponse, *response.BusinessError) {
	rows, err := s.repo.DeleteOwned(id, userID)
	if err != nil {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除待办失败"),
			response.WithError(err),
		)
	}
	if rows == 0 {
		return MutationResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("待办不存在"),
		)
	}

	return MutationResponse{
		Flash:       "Todo removed",
		RedirectURL: "/todos",
	}, nil
}

// validateFields 标题与详情均为必填
func validateFields(req TodoRequest) []string {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "Please add title")
	}
	if strings.TrimSpace(req.Details) == "" {
		errs = append(errs, "Please add some details")
	}
	return errs
}
