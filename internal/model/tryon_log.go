package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 试穿任务状态 ====================

const (
	TryOnStatusPending   = "pending"
	TryOnStatusSucceeded = "succeeded"
	TryOnStatusFailed    = "failed"
)

// ==================== TryOnLog AI 试穿调用记录 ====================

// TryOnLog 每次调用第三方试穿接口记一行，RawResponse 存原始返回（JSONB）
// 方便排查第三方接口抽风和统计调用量
type TryOnLog struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64  `gorm:"index" json:"user_id"`
	ProductID int64  `gorm:"index" json:"product_id"`
	Status    string `gorm:"size:32;index;default:pending" json:"status"`
	ResultURL string `gorm:"size:1000" json:"result_url"`
	ErrorMsg  string `gorm:"type:text" json:"error_msg,omitempty"`

	RawResponse datatypes.JSON `gorm:"type:jsonb" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TryOnLog) TableName() string {
	return "try_on_logs"
}
