package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== OrderService 订单服务 ====================

// OrderService 订单服务
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, orderItemRepo: orderItemRepo}
}

// ==================== 下单 ====================

// Create 下单：先插订单头，再逐条插明细
// 与旧版后端行为一致：
//   - 不开事务，明细插到一半失败时，已插入的行会留下
//   - 不校验库存，也不扣减库存
//   - TotalAmount 信任客户端传值，不重算
func (s *OrderService) Create(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error) {
	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := &model.Order{
		UserID:      req.UserID,
		PlacedAt:    time.Now(),
		TotalAmount: req.TotalAmount,
		Status:      status,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("tạo đơn hàng thất bại: %w", err)
	}

	for _, item := range req.Items {
		orderItem := &model.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if err := s.orderItemRepo.Create(ctx, orderItem); err != nil {
			return nil, fmt.Errorf("tạo chi tiết đơn hàng thất bại: %w", err)
		}
	}

	return order, nil
}

// ==================== 查询 ====================

// GetByID 订单详情（含明细）
func (s *OrderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.GetByIDWithItems(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListAll 全量订单（商家仪表盘）
func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

// ListByUser 用户历史订单
func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// ListByDateRange 按下单日期区间查订单，end 取到当天最后一秒
func (s *OrderService) ListByDateRange(ctx context.Context, startDate, endDate string) ([]model.Order, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("ngày bắt đầu không hợp lệ: %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("ngày kết thúc không hợp lệ: %w", err)
	}
	endOfDay := end.Add(24*time.Hour - time.Second)

	return s.orderRepo.ListByDateRange(ctx, start, endOfDay)
}

// ==================== 状态更新 ====================

// UpdateStatus 直接写入客户端给的状态串
// 不做状态机校验，任何状态都能跳到任何状态；也不触发库存回补
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	return s.orderRepo.UpdateStatus(ctx, id, status)
}
