package repository

import (
	"context"
	"time"

	"github.com/phamkimtung/nhom8web/internal/model"

	"gorm.io/gorm"
)

// ==================== StatsRepository 报表仓库 ====================

// StoreCustomer 店铺客户行
type StoreCustomer struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CustomerOrderRow 客户在某店铺的历史订单行（订单 + 明细 + 商品名拍平）
type CustomerOrderRow struct {
	OrderID     int64     `json:"order_id"`
	PlacedAt    time.Time `json:"placed_at"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Size        string    `json:"size"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
}

// CustomerSummary 客户订单汇总行
// 状态计数沿用旧版越南语状态串，历史数据就是这么存的
type CustomerSummary struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TotalOrders int64  `json:"total_orders"`
	Shipping    int64  `json:"shipping"`
	Completed   int64  `json:"completed"`
	Cancelled   int64  `json:"cancelled"`
}

// StatsRepository 报表仓库接口
// 报表都是读时聚合，不落中间表
type StatsRepository interface {
	RevenueTotal(ctx context.Context) (float64, error)
	StoreCustomers(ctx context.Context, storeID int64) ([]StoreCustomer, error)
	StoreCustomerCount(ctx context.Context, storeID int64) (int64, error)
	CustomerOrdersForStore(ctx context.Context, storeID, customerID int64) ([]CustomerOrderRow, error)
	CustomerSummaries(ctx context.Context) ([]CustomerSummary, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository 创建报表仓库
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// RevenueTotal 营收 = completed 状态订单金额合计
func (r *statsRepository) RevenueTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", model.OrderStatusCompleted).
		Scan(&total).Error
	return total, err
}

func (r *statsRepository) StoreCustomers(ctx context.Context, storeID int64) ([]StoreCustomer, error) {
	var customers []StoreCustomer
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Distinct("users.id, users.username, users.email").
		Joins("JOIN orders ON orders.user_id = users.id").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.store_id = ?", storeID).
		Scan(&customers).Error
	return customers, err
}

func (r *statsRepository) StoreCustomerCount(ctx context.Context, storeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Distinct("users.id").
		Joins("JOIN orders ON orders.user_id = users.id").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.store_id = ?", storeID).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) CustomerOrdersForStore(ctx context.Context, storeID, customerID int64) ([]CustomerOrderRow, error) {
	var rows []CustomerOrderRow
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select(`orders.id AS order_id, orders.placed_at, orders.total_amount, orders.status,
			order_items.product_id, products.name AS product_name,
			order_items.size, order_items.quantity, order_items.price`).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.user_id = ? AND products.store_id = ?", customerID, storeID).
		Order("orders.placed_at DESC").
		Scan(&rows).Error
	return rows, err
}

// CustomerSummaries 客户维度订单汇总
// CASE WHEN 里的状态串是越南语变体，和英文枚举并存（历史遗留，勿改）
func (r *statsRepository) CustomerSummaries(ctx context.Context) ([]CustomerSummary, error) {
	var summaries []CustomerSummary
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select(`users.id, users.full_name, users.email, users.phone,
			COUNT(orders.id) AS total_orders,
			COUNT(CASE WHEN orders.status = ? THEN 1 END) AS shipping,
			COUNT(CASE WHEN orders.status = ? THEN 1 END) AS completed,
			COUNT(CASE WHEN orders.status = ? THEN 1 END) AS cancelled`,
			model.OrderStatusDangGiao, model.OrderStatusHoanThanh, model.OrderStatusDaHuy).
		Joins("LEFT JOIN orders ON orders.user_id = users.id").
		Where("users.role = ?", model.RoleCustomer).
		Group("users.id, users.full_name, users.email, users.phone").
		Order("users.full_name ASC").
		Scan(&summaries).Error
	return summaries, err
}
