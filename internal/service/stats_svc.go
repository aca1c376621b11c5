package service

import (
	"context"
	"time"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== StatsService 报表服务 ====================

// StatsService 报表服务，读时聚合
type StatsService struct {
	statsRepo repository.StatsRepository
	orderRepo repository.OrderRepository
}

// NewStatsService 创建报表服务
func NewStatsService(statsRepo repository.StatsRepository, orderRepo repository.OrderRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo, orderRepo: orderRepo}
}

// ==================== 营收 ====================

// Revenue 营收合计（只算 completed 订单）
func (s *StatsService) Revenue(ctx context.Context) (*dto.RevenueResponse, error) {
	total, err := s.statsRepo.RevenueTotal(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.RevenueResponse{Revenue: total}, nil
}

// ==================== 周报 ====================

// WeeklySummary 最近 weeks 个 ISO 周的订单量和营收
// 拉出窗口内订单后在应用层按周分桶，避免依赖具体数据库的日期函数
func (s *StatsService) WeeklySummary(ctx context.Context, weeks int) ([]dto.WeeklySummaryRow, error) {
	if weeks <= 0 {
		weeks = 7
	}

	now := time.Now()
	currentWeekStart := startOfISOWeek(now)
	windowStart := currentWeekStart.AddDate(0, 0, -7*(weeks-1))

	orders, err := s.orderRepo.ListSince(ctx, windowStart)
	if err != nil {
		return nil, err
	}

	// 预建空桶，没订单的周也要出现在结果里
	rows := make([]dto.WeeklySummaryRow, weeks)
	index := make(map[string]int, weeks)
	for i := 0; i < weeks; i++ {
		ws := windowStart.AddDate(0, 0, 7*i).Format("2006-01-02")
		rows[i] = dto.WeeklySummaryRow{WeekStart: ws}
		index[ws] = i
	}

	for _, o := range orders {
		ws := startOfISOWeek(o.PlacedAt).Format("2006-01-02")
		i, ok := index[ws]
		if !ok {
			continue
		}
		rows[i].OrderCount++
		if o.Status == model.OrderStatusCompleted {
			rows[i].Revenue += o.TotalAmount
		}
	}

	return rows, nil
}

// startOfISOWeek 当周周一零点
func startOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // 周日算第 7 天
	}
	day := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// ==================== 客户汇总 ====================

// CustomerSummaries 客户维度订单汇总（按客户姓名排序）
func (s *StatsService) CustomerSummaries(ctx context.Context) ([]repository.CustomerSummary, error) {
	return s.statsRepo.CustomerSummaries(ctx)
}
