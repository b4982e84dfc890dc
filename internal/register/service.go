package register

import (
	"errors"

	"campusboard/internal/model/user"
	"campusboard/internal/response"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 密码最短长度
const minPasswordLength = 4

type RegisterService struct {
	db *gorm.DB
}

func NewRegisterService(db *gorm.DB) *RegisterService {
	return &RegisterService{db: db}
}

// Register 账号密码注册
func (s *RegisterService) Register(req RegisterRequest) (RegisterResponse, *response.BusinessError) {
	// 1. 参数校验；校验失败在本地处理：回显表单 + 逐项错误
	if errs := s.validateRequest(req); len(errs) > 0 {
		return RegisterResponse{
			Errors: errs,
			Name:   req.Name,
			Email:  req.Email,
		}, nil
	}

	// 2. 检查邮箱是否已被注册
	var existingUser user.User
	err := s.db.Where("email = ?", req.Email).First(&existingUser).Error
	if err == nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Duplicate),
			response.WithErrorMessage("A user with the same email already exists"),
		)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("注册失败"),
			response.WithError(err),
		)
	}

	// 3. 密码加密，明文不落库
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
			response.WithError(err),
		)
	}

	// 4. 创建用户；email 上有唯一索引，并发下的重复注册也会失败
	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.db.Create(&newUser).Error; err != nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Duplicate),
			response.WithErrorMessage("A user with the same email already exists"),
			response.WithError(err),
		)
	}

	// 5. 返回结果，注册完成后去登录页
	return RegisterResponse{
		Flash:       "You are now registered and can log in",
		RedirectURL: "/users/login",
	}, nil
}

// 参数校验
func (s *RegisterService) validateRequest(req RegisterRequest) []string {
	var errs []string

	if req.Password != req.Password2 {
		errs = append(errs, "Passwords do not match!")
	}
	if len(req.Password) < minPasswordLength {
		errs = append(errs, "Password must be at least 4 characters")
	}

	return errs
}
