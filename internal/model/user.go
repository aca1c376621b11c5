package model

import "time"

// ==================== 角色常量 ====================

// 系统角色: khach_hang (顾客), chu_cua_hang (店主)
// 注册时由前端传入，创建后不再变更
const (
	RoleCustomer   = "khach_hang"
	RoleStoreOwner = "chu_cua_hang"
)

// ==================== User 用户 ====================

// User 用户账号（顾客 / 店主共用一张表，靠 Role 区分）
type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email     string `gorm:"size:100" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"` // bcrypt 哈希
	Role      string `gorm:"size:20;default:'khach_hang'" json:"role"`
	FullName  string `gorm:"size:100" json:"full_name"`
	Phone     string `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `json:"created_at"`

	// 关联
	Stores []Store `gorm:"foreignKey:UserID" json:"-"`
	Orders []Order `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsStoreOwner 是否店主
func (u *User) IsStoreOwner() bool {
	return u.Role == RoleStoreOwner
}

// ==================== SearchHistory 搜索历史 ====================

// SearchHistory 用户搜索记录
type SearchHistory struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"index;not null" json:"user_id"`
	Keyword    string    `gorm:"size:255;not null" json:"keyword"`
	SearchedAt time.Time `gorm:"index" json:"searched_at"`
}

func (SearchHistory) TableName() string {
	return "search_histories"
}
