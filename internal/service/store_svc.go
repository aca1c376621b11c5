package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== StoreService 店铺服务 ====================

// StoreService 店铺服务
type StoreService struct {
	storeRepo repository.StoreRepository
	statsRepo repository.StatsRepository
}

// NewStoreService 创建店铺服务
func NewStoreService(storeRepo repository.StoreRepository, statsRepo repository.StatsRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo, statsRepo: statsRepo}
}

// Create 开店
func (s *StoreService) Create(ctx context.Context, req *dto.CreateStoreRequest) (*model.Store, error) {
	store := &model.Store{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		CreatedAt:   time.Now(),
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// GetByID 查询店铺
func (s *StoreService) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

// ListByUser 用户名下的店铺列表
func (s *StoreService) ListByUser(ctx context.Context, userID int64) ([]model.Store, error) {
	return s.storeRepo.ListByUser(ctx, userID)
}

// Update 整体覆盖店铺信息
func (s *StoreService) Update(ctx context.Context, id int64, req *dto.UpdateStoreRequest) error {
	return s.storeRepo.Update(ctx, id, map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"address":     req.Address,
	})
}

// ==================== 店铺客户 ====================

// Customers 在本店下过单的客户列表
func (s *StoreService) Customers(ctx context.Context, storeID int64) ([]repository.StoreCustomer, error) {
	return s.statsRepo.StoreCustomers(ctx, storeID)
}

// CustomerCount 在本店下过单的客户数
func (s *StoreService) CustomerCount(ctx context.Context, storeID int64) (int64, error) {
	return s.statsRepo.StoreCustomerCount(ctx, storeID)
}

// CustomerOrders 某客户在本店的历史订单（拍平到明细行）
func (s *StoreService) CustomerOrders(ctx context.Context, storeID, customerID int64) ([]repository.CustomerOrderRow, error) {
	return s.statsRepo.CustomerOrdersForStore(ctx, storeID, customerID)
}
