package model

import "time"

// ==================== Review 商品评价 ====================

// Review 商品评价，1-5 星，正文可空
// 插入后由 ReviewService 单独跑聚合查询重算商品平均分
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index;not null" json:"user_id"`
	ProductID int64     `gorm:"index;not null" json:"product_id"`
	Stars     int       `gorm:"not null" json:"stars"` // 1-5
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
