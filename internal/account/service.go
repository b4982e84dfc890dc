package account

import (
	"errors"
	"strings"

	noteModel "campusboard/internal/model/note"
	todoModel "campusboard/internal/model/todo"
	userModel "campusboard/internal/model/user"
	"campusboard/internal/note"
	"campusboard/internal/response"
	"campusboard/internal/textmatch"
	"campusboard/internal/todo"

	"gorm.io/gorm"
)

const dashboardLimit = 10

type AccountService struct {
	repo  *AccountRepository
	todos *todo.TodoRepository
	notes *note.NoteRepository
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{
		repo:  NewAccountRepository(db),
		todos: todo.NewTodoRepository(db),
		notes: note.NewNoteRepository(db),
	}
}

// Dashboard 个人主页：最新 10 条待办与 10 条笔记
func (s *AccountService) Dashboard(userID uint, name string) (*DashboardResponse, *response.BusinessError) {
	todos, err := s.todos.ListRecentByUser(userID, dashboardLimit)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取主页数据失败"),
			response.WithError(err),
		)
	}
	notes, err := s.notes.ListRecentByUser(userID, dashboardLimit)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取主页数据失败"),
			response.WithError(err),
		)
	}
	if todos == nil {
		todos = []todoModel.Todo{}
	}
	if notes == nil {
		notes = []noteModel.Note{}
	}

	return &DashboardResponse{Name: name, Todos: todos, Notes: notes}, nil
}

// GetProfile 当前用户资料
func (s *AccountService) GetProfile(userID uint) (*userModel.User, *response.BusinessError) {
	u, err := s.repo.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取用户资料失败"),
			response.WithError(err),
		)
	}
	return u, nil
}

// Directory 用户目录
func (s *AccountService) Directory() (*DirectoryResponse, *response.BusinessError) {
	users, err := s.repo.ListUsers()
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取用户目录失败"),
			response.WithError(err),
		)
	}
	return &DirectoryResponse{Users: users}, nil
}

// SearchUsers 按姓名检索（内存过滤）
func (s *AccountService) SearchUsers(query string) (*DirectoryResponse, *response.BusinessError) {
	result, err := s.Directory()
	if err != nil {
		return nil, err
	}

	m := textmatch.NewMatcher(query)
	matched := make([]userModel.User, 0, len(result.Users))
	for _, u := range result.Users {
		if m.Match(u.Name) {
			matched = append(matched, u)
		}
	}
	return &DirectoryResponse{Users: matched}, nil
}

// Filter 目录条件筛选；字段为空或为 "All" 时不参与过滤
func (s *AccountService) Filter(req FilterRequest) (*DirectoryResponse, *response.BusinessError) {
	fields := map[string]interface{}{}
	addFilter(fields, "user_type", req.UserType)
	addFilter(fields, "study_time", req.StudyTime)
	addFilter(fields, "campus", req.Campus)
	addFilter(fields, "cohort", req.Cohort)

	users, err := s.repo.FilterUsers(fields)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("筛选用户失败"),
			response.WithError(err),
		)
	}
	return &DirectoryResponse{Users: users}, nil
}

// UpdateProfile 更新当前用户资料，返回更新后的用户
func (s *AccountService) UpdateProfile(userID uint, req ProfileRequest) (*userModel.User, *response.BusinessError) {
	// 1. 角色校验
	if req.UserType != "" &&
		req.UserType != userModel.TypeStudent &&
		req.UserType != userModel.TypeTeacherAssistant &&
		req.UserType != userModel.TypeTeacher {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的用户角色"),
		)
	}

	// 2. 邮箱不能撞别人的
	taken, err := s.repo.EmailTakenByOther(req.Email, userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新资料失败"),
			response.WithError(err),
		)
	}
	if taken {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Duplicate),
			response.WithErrorMessage("A user with the same email already exists"),
		)
	}

	// 3. 更新
	rows, err := s.repo.UpdateProfile(userID, map[string]interface{}{
		"name":       req.Name,
		"email":      req.Email,
		"user_type":  req.UserType,
		"phone":      req.Phone,
		"campus":     req.Campus,
		"cohort":     req.Cohort,
		"study_time": req.StudyTime,
	})
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新资料失败"),
			response.WithError(err),
		)
	}
	if rows == 0 {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	u, err := s.repo.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新资料失败"),
			response.WithError(err),
		)
	}
	return u, nil
}

// addFilter "All" 与空串均为不过滤哨兵
func addFilter(fields map[string]interface{}, column, value string) {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, "All") {
		return
	}
	fields[column] = v
}
