package repository

import (
	"context"

	"github.com/phamkimtung/nhom8web/internal/model"

	"gorm.io/gorm"
)

// ==================== TryOnLogRepository 试穿调用记录仓库 ====================

// TryOnLogRepository 试穿调用记录仓库接口
type TryOnLogRepository interface {
	Create(ctx context.Context, log *model.TryOnLog) error
	Update(ctx context.Context, log *model.TryOnLog) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.TryOnLog, error)
}

type tryOnLogRepository struct {
	db *gorm.DB
}

// NewTryOnLogRepository 创建试穿调用记录仓库
func NewTryOnLogRepository(db *gorm.DB) TryOnLogRepository {
	return &tryOnLogRepository{db: db}
}

func (r *tryOnLogRepository) Create(ctx context.Context, log *model.TryOnLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *tryOnLogRepository) Update(ctx context.Context, log *model.TryOnLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *tryOnLogRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]model.TryOnLog, error) {
	var logs []model.TryOnLog
	if limit <= 0 {
		limit = 20
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
