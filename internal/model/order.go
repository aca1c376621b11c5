package model

import "time"

// ==================== 订单状态常量 ====================

// OrderStatus 订单状态（英文，下单 / 状态更新走这一套）
const (
	OrderStatusPending    = "pending"    // 待处理
	OrderStatusProcessing = "processing" // 处理中
	OrderStatusCompleted  = "completed"  // 已完成（计入营收）
	OrderStatusCancelled  = "cancelled"  // 已取消
)

// 越南语状态变体。历史遗留：旧版前端和客户汇总查询里还在用，
// 语言是否统一尚无定论，两套并存，不要清理
const (
	OrderStatusChoDuyet  = "cho_duyet" // pending
	OrderStatusDangGiao  = "đang giao" // processing/shipping
	OrderStatusHoanThanh = "hoàn thành" // completed
	OrderStatusDaHuy     = "đã huỷ"    // cancelled
)

// ==================== Order 订单主表 ====================

// Order 订单
// TotalAmount 由客户端计算并原样入库，服务端不做重算校验
type Order struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"index;not null" json:"user_id"`
	PlacedAt    time.Time `gorm:"index" json:"placed_at"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	Status      string    `gorm:"size:32;index;default:pending" json:"status"`

	// 关联
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// IsCompleted 是否计入营收
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// ==================== OrderItem 订单明细 ====================

// OrderItem 订单明细行，Price 是下单时刻的单价快照
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"index;not null" json:"order_id"`
	ProductID int64   `gorm:"index;not null" json:"product_id"`
	Size      string  `gorm:"size:20" json:"size"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
