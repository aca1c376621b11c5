package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== 测试辅助 ====================

func openSvcTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

func newOrderSvc(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
	)
}

// ==================== 下单 ====================

func TestOrderCreate_HeaderOmitsItemsAssociation(t *testing.T) {
	db := openSvcTestDB(t, &model.Order{}, &model.OrderItem{})
	svc := newOrderSvc(db)

	order, err := svc.Create(context.Background(), &dto.CreateOrderRequest{
		UserID:      1,
		TotalAmount: 240000,
		Items: []dto.OrderItemRequest{
			{ProductID: 1, Size: "M", Quantity: 1, Price: 120000},
			{ProductID: 2, Size: "L", Quantity: 1, Price: 120000},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	assert.Len(t, items, 2)
}

func TestOrderCreate_PartialWriteWhenItemInsertFails(t *testing.T) {
	db := openSvcTestDB(t, &model.Order{}, &model.OrderItem{})
	svc := newOrderSvc(db)

	// 用触发器模拟第三条明细插入失败（比如数据库约束炸了）
	require.NoError(t, db.Exec(`
		CREATE TRIGGER reject_negative_qty
		BEFORE INSERT ON order_items
		WHEN NEW.quantity < 0
		BEGIN
			SELECT RAISE(ABORT, 'quantity must be positive');
		END
	`).Error)

	_, err := svc.Create(context.Background(), &dto.CreateOrderRequest{
		UserID:      1,
		TotalAmount: 360000,
		Items: []dto.OrderItemRequest{
			{ProductID: 1, Size: "M", Quantity: 1, Price: 120000},
			{ProductID: 2, Size: "M", Quantity: 1, Price: 120000},
			{ProductID: 3, Size: "M", Quantity: -1, Price: 120000},
		},
	})
	require.Error(t, err)

	// 没有事务回滚：订单头和前两条明细留在库里
	var orderCount, itemCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&model.OrderItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(1), orderCount)
	assert.Equal(t, int64(2), itemCount)
}

func TestOrderCreate_DefaultStatusPending(t *testing.T) {
	db := openSvcTestDB(t, &model.Order{}, &model.OrderItem{})
	svc := newOrderSvc(db)

	order, err := svc.Create(context.Background(), &dto.CreateOrderRequest{
		UserID:      5,
		TotalAmount: 99,
		Items:       []dto.OrderItemRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)

	// 客户端指定状态时原样入库，哪怕是越南语变体
	order, err = svc.Create(context.Background(), &dto.CreateOrderRequest{
		UserID:      5,
		TotalAmount: 99,
		Status:      model.OrderStatusHoanThanh,
		Items:       []dto.OrderItemRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "hoàn thành", order.Status)
}

// ==================== 日期区间 ====================

func TestOrderListByDateRange_EndDateInclusive(t *testing.T) {
	db := openSvcTestDB(t, &model.Order{}, &model.OrderItem{})
	svc := newOrderSvc(db)

	// 结束日当天 23:59 的订单也要查得到
	lastMinute := time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC)
	require.NoError(t, db.Create(&model.Order{UserID: 1, TotalAmount: 10, Status: "pending", PlacedAt: lastMinute}).Error)

	orders, err := svc.ListByDateRange(context.Background(), "2025-05-01", "2025-05-31")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderListByDateRange_BadDate(t *testing.T) {
	db := openSvcTestDB(t, &model.Order{}, &model.OrderItem{})
	svc := newOrderSvc(db)

	_, err := svc.ListByDateRange(context.Background(), "31-05-2025", "2025-05-31")
	assert.Error(t, err)
}
