package login

import (
	"errors"

	"campusboard/internal/model/user"
	"campusboard/internal/response"
	"campusboard/internal/session"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginService struct {
	db       *gorm.DB
	sessions *session.Store
}

func NewLoginService(db *gorm.DB, sessions *session.Store) *LoginService {
	return &LoginService{db: db, sessions: sessions}
}

// Login 邮箱密码登录，成功则建立会话
func (s *LoginService) Login(req LoginRequest) (LoginResponse, *response.BusinessError) {
	// 1. 查询用户
	var foundUser user.User
	result := s.db.Where("email = ?", req.Email).First(&foundUser)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// 邮箱不存在和密码错误返回同一提示，不暴露账号是否存在
			return LoginResponse{}, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("Email or password incorrect"),
			)
		}
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("登录失败"),
			response.WithError(result.Error),
		)
	}

	// 2. 校验密码
	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("Email or password incorrect"),
		)
	}

	// 3. 建立会话
	token, err := s.sessions.Create(session.Data{
		UserID:   foundUser.ID,
		Name:     foundUser.Name,
		Email:    foundUser.Email,
		UserType: foundUser.UserType,
	})
	if err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("建立会话失败"),
			response.WithError(err),
		)
	}

	// 4. 返回结果，登录完成后去个人主页
	return LoginResponse{
		SessionToken: token,
		RedirectURL:  "/users/dashboard",
	}, nil
}

// Logout 销毁会话
func (s *LoginService) Logout(token string) *response.BusinessError {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(token); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("登出失败"),
			response.WithError(err),
		)
	}
	return nil
}
