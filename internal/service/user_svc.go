package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/middleware"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== UserService 用户服务 ====================

// UserService 用户服务
type UserService struct {
	userRepo   repository.UserRepository
	searchRepo repository.SearchHistoryRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, searchRepo repository.SearchHistoryRepository) *UserService {
	return &UserService{userRepo: userRepo, searchRepo: searchRepo}
}

// ==================== 认证相关 ====================

// Register 用户注册
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserInfo, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	// bcrypt cost 与旧版一致
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleCustomer
	}

	user := &model.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      role,
		FullName:  req.FullName,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	info := s.toUserInfo(user)
	return &info, nil
}

// Login 用户登录，成功返回 JWT
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token}, nil
}

// ==================== 资料相关 ====================

// GetByID 查询用户
func (s *UserService) GetByID(ctx context.Context, id int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	info := s.toUserInfo(user)
	return &info, nil
}

// UpdateProfile 更新用户名和邮箱，角色不可改
func (s *UserService) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) error {
	return s.userRepo.UpdateProfile(ctx, id, req.Username, req.Email)
}

func (s *UserService) toUserInfo(user *model.User) dto.UserInfo {
	return dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		FullName:  user.FullName,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}

// ==================== 搜索历史 ====================

// RecordSearch 记录一次搜索
func (s *UserService) RecordSearch(ctx context.Context, req *dto.CreateSearchHistoryRequest) (*model.SearchHistory, error) {
	history := &model.SearchHistory{
		UserID:     req.UserID,
		Keyword:    req.Keyword,
		SearchedAt: time.Now(),
	}
	if err := s.searchRepo.Create(ctx, history); err != nil {
		return nil, err
	}
	return history, nil
}

// ListSearchHistory 按时间倒序列出用户搜索历史
func (s *UserService) ListSearchHistory(ctx context.Context, userID int64) ([]model.SearchHistory, error) {
	return s.searchRepo.ListByUser(ctx, userID)
}
