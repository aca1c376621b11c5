package repository

import (
	"context"

	"github.com/phamkimtung/nhom8web/internal/model"

	"gorm.io/gorm"
)

// ==================== StoreRepository 店铺仓库 ====================

// StoreRepository 店铺仓库接口
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Store, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository 创建店铺仓库
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).First(&store, id).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) ListByUser(ctx context.Context, userID int64) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&stores).Error
	return stores, err
}

func (r *storeRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Store{}).Where("id = ?", id).Updates(fields).Error
}
