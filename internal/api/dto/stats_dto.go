package dto

// RevenueResponse 营收合计
type RevenueResponse struct {
	Revenue float64 `json:"revenue"`
}

// WeeklySummaryRow 一周的订单统计
// WeekStart 为该 ISO 周周一的日期（yyyy-MM-dd）
type WeeklySummaryRow struct {
	WeekStart  string  `json:"week_start"`
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}
