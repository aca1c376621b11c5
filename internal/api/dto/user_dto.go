package dto

import "time"

// ==================== 认证 ====================

// RegisterRequest 注册请求
// Role 由前端传入: khach_hang / chu_cua_hang
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string `json:"token"`
}

// ==================== 用户资料 ====================

// UpdateProfileRequest 资料更新（只允许改用户名和邮箱，角色注册后不可变）
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
}

// UserInfo 用户信息（不含密码哈希）
type UserInfo struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ==================== 搜索历史 ====================

// CreateSearchHistoryRequest 记录一次搜索
type CreateSearchHistoryRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	Keyword string `json:"keyword" binding:"required"`
}
