package dto

// ==================== 下单 ====================

// OrderItemRequest 订单明细行
// Price 是客户端报的下单时单价，服务端不回查商品表校验
type OrderItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

// CreateOrderRequest 下单请求
// TotalAmount 客户端算好传上来，原样入库
type CreateOrderRequest struct {
	UserID      int64              `json:"user_id" binding:"required"`
	TotalAmount float64            `json:"total_amount"`
	Status      string             `json:"status"`
	Items       []OrderItemRequest `json:"items" binding:"required"`
}

// ==================== 状态更新 ====================

// UpdateOrderStatusRequest 状态更新请求，状态串不做枚举校验
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ==================== 查询 ====================

// DateRangeRequest 按日期区间查订单
type DateRangeRequest struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}
