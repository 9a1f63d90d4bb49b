package service

import (
	"context"
	"errors"
	"time"

	"LearnHub/config"
	"LearnHub/dao"
	"LearnHub/dao/cache"
	"LearnHub/models"
	"LearnHub/pkg/encrypt"
	"LearnHub/pkg/jwt"
	"LearnHub/pkg/snowflake"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrUserExists  = errors.New("User already exists!")
	ErrLoginFailed = errors.New("login Unsuccessful")
	ErrNoJwtSecret = errors.New("jwt secret not configured")
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

type UserRegisterOpt struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResult struct {
	User      *models.User
	SessionID string
	Token     string
}

type AuthService struct {
	UsersRepo *dao.Users
	Sessions  *cache.SessionStorage
	Config    *config.Config
}

// Register 注册用户
func (s *AuthService) Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error) {
	if s.UsersRepo.IsUsernameExist(ctx, opt.Username) {
		return nil, ErrUserExists
	}

	hash, err := encrypt.HashPassword(opt.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:             snowflake.GenUserID(),
		Username:       opt.Username,
		Name:           opt.Name,
		Password:       hash,
		CourseEnrolled: datatypes.NewJSONSlice([]string{}),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credential pair, opens a session in redis and
// mints the access token that carries (userID, sessionID).
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoginFailed
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, ErrLoginFailed
	}

	if s.Config.Jwt == nil || s.Config.Jwt.Secret == "" {
		return nil, ErrNoJwtSecret
	}

	sid := uuid.NewString()
	if err := s.Sessions.Bind(ctx, sid, user.ID, user.Name); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID,
		sid,
		"access",
		s.tokenTTL(),
	)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, SessionID: sid, Token: token}, nil
}

// Logout 销毁会话，令牌随之失效
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.UnBind(ctx, sessionID)
}

func (s *AuthService) tokenTTL() time.Duration {
	minutes := s.Config.Jwt.ExpiresMinutes
	if minutes <= 0 {
		minutes = 60 * 24
	}
	return time.Duration(minutes) * time.Minute
}
