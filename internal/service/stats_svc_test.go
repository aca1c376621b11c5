package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== 测试辅助 ====================

func setupStatsSvc(t *testing.T) (*StatsService, *gorm.DB) {
	db := openSvcTestDB(t,
		&model.User{}, &model.Store{}, &model.Product{},
		&model.Order{}, &model.OrderItem{},
	)
	svc := NewStatsService(
		repository.NewStatsRepository(db),
		repository.NewOrderRepository(db),
	)
	return svc, db
}

func seedOrder(t *testing.T, db *gorm.DB, userID int64, total float64, status string, placedAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.Order{
		UserID: userID, TotalAmount: total, Status: status, PlacedAt: placedAt,
	}).Error)
}

// ==================== 营收 ====================

func TestRevenue_CountsOnlyEnglishCompleted(t *testing.T) {
	svc, db := setupStatsSvc(t)
	now := time.Now()

	seedOrder(t, db, 1, 100, model.OrderStatusCompleted, now)
	seedOrder(t, db, 1, 50, model.OrderStatusPending, now)
	// 越南语的"hoàn thành"不计入营收，汇总口径历史上就不一致
	seedOrder(t, db, 1, 70, model.OrderStatusHoanThanh, now)

	resp, err := svc.Revenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.Revenue)
}

func TestRevenue_EmptyIsZero(t *testing.T) {
	svc, _ := setupStatsSvc(t)

	resp, err := svc.Revenue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.Revenue)
}

// ==================== 周报 ====================

func TestWeeklySummary_BucketsByISOWeek(t *testing.T) {
	svc, db := setupStatsSvc(t)
	now := time.Now()

	seedOrder(t, db, 1, 100, model.OrderStatusCompleted, now)
	seedOrder(t, db, 1, 40, model.OrderStatusPending, now)
	seedOrder(t, db, 1, 200, model.OrderStatusCompleted, now.AddDate(0, 0, -7))
	// 窗口外的订单不出现
	seedOrder(t, db, 1, 999, model.OrderStatusCompleted, now.AddDate(0, 0, -30))

	rows, err := svc.WeeklySummary(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 上一周：1 单，营收 200
	assert.Equal(t, int64(1), rows[0].OrderCount)
	assert.Equal(t, 200.0, rows[0].Revenue)

	// 本周：2 单，营收只算 completed 的 100
	assert.Equal(t, int64(2), rows[1].OrderCount)
	assert.Equal(t, 100.0, rows[1].Revenue)
}

func TestWeeklySummary_EmptyWeeksPresent(t *testing.T) {
	svc, _ := setupStatsSvc(t)

	rows, err := svc.WeeklySummary(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	for _, row := range rows {
		assert.Zero(t, row.OrderCount)
		assert.Zero(t, row.Revenue)
		assert.NotEmpty(t, row.WeekStart)
	}
}

func TestStartOfISOWeek(t *testing.T) {
	// 2025-06-15 是周日，所属周的周一是 06-09
	sunday := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-09", startOfISOWeek(sunday).Format("2006-01-02"))

	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-09", startOfISOWeek(monday).Format("2006-01-02"))
}

// ==================== 客户汇总 ====================

func TestCustomerSummaries_CountsVietnameseStatuses(t *testing.T) {
	svc, db := setupStatsSvc(t)

	customer := model.User{
		Username: "bich", Password: "x", Role: model.RoleCustomer,
		FullName: "Trần Thị Bích", Email: "bich@example.com",
	}
	require.NoError(t, db.Create(&customer).Error)
	owner := model.User{Username: "shopchu", Password: "x", Role: model.RoleStoreOwner, FullName: "Chủ Shop"}
	require.NoError(t, db.Create(&owner).Error)

	now := time.Now()
	seedOrder(t, db, customer.ID, 10, model.OrderStatusDangGiao, now)
	seedOrder(t, db, customer.ID, 20, model.OrderStatusHoanThanh, now)
	seedOrder(t, db, customer.ID, 30, model.OrderStatusDaHuy, now)
	// 英文 completed 只计入总单数，不进任何一个状态列
	seedOrder(t, db, customer.ID, 40, model.OrderStatusCompleted, now)

	rows, err := svc.CustomerSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1, "chỉ khách hàng mới xuất hiện trong bảng tổng hợp")

	row := rows[0]
	assert.Equal(t, "Trần Thị Bích", row.FullName)
	assert.Equal(t, int64(4), row.TotalOrders)
	assert.Equal(t, int64(1), row.Shipping)
	assert.Equal(t, int64(1), row.Completed)
	assert.Equal(t, int64(1), row.Cancelled)
}

func TestCustomerSummaries_IncludesCustomersWithoutOrders(t *testing.T) {
	svc, db := setupStatsSvc(t)

	customer := model.User{Username: "an", Password: "x", Role: model.RoleCustomer, FullName: "An"}
	require.NoError(t, db.Create(&customer).Error)

	rows, err := svc.CustomerSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].TotalOrders)
}
