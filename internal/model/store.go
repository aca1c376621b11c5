package model

import "time"

// ==================== Store 店铺 ====================

// Store 店铺，归属于一个店主用户
// 注意：API 层不限制一个用户只能开一家店，前端仪表盘默认取第一家
type Store struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"index;not null" json:"user_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"size:500" json:"address"`
	CreatedAt   time.Time `json:"created_at"`

	// 关联
	Products []Product `gorm:"foreignKey:StoreID" json:"-"`
}

func (Store) TableName() string {
	return "stores"
}
