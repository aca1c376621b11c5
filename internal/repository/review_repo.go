package repository

import (
	"context"
	"errors"

	"github.com/phamkimtung/nhom8web/internal/model"

	"gorm.io/gorm"
)

// ==================== ReviewRepository 评价仓库 ====================

// ReviewWithNames 带用户名/商品名的评价（管理页列表用）
type ReviewWithNames struct {
	model.Review
	Username    string `json:"username"`
	ProductName string `json:"product_name"`
}

// ReviewRepository 评价仓库接口
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByProduct(ctx context.Context, productID int64) ([]ReviewWithNames, error)
	GetByUserAndProduct(ctx context.Context, userID, productID int64) (*model.Review, error)
	ListAll(ctx context.Context) ([]ReviewWithNames, error)
	ListLatest(ctx context.Context, limit int) ([]ReviewWithNames, error)
	AverageForProduct(ctx context.Context, productID int64) (float64, error)
	GlobalAverage(ctx context.Context) (float64, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]ReviewWithNames, error) {
	var reviews []ReviewWithNames
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("reviews.*, users.username AS username, products.name AS product_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Joins("LEFT JOIN products ON products.id = reviews.product_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC").
		Scan(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetByUserAndProduct(ctx context.Context, userID, productID int64) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListAll(ctx context.Context) ([]ReviewWithNames, error) {
	var reviews []ReviewWithNames
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("reviews.*, users.username AS username, products.name AS product_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Joins("LEFT JOIN products ON products.id = reviews.product_id").
		Order("reviews.created_at DESC").
		Scan(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) ListLatest(ctx context.Context, limit int) ([]ReviewWithNames, error) {
	var reviews []ReviewWithNames
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("reviews.*, users.username AS username, products.name AS product_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Joins("LEFT JOIN products ON products.id = reviews.product_id").
		Order("reviews.created_at DESC").
		Limit(limit).
		Scan(&reviews).Error
	return reviews, err
}

// AverageForProduct 单独跑一条 AVG 聚合，没有评价时返回 0
func (r *reviewRepository) AverageForProduct(ctx context.Context, productID int64) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("AVG(stars)").
		Where("product_id = ?", productID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *reviewRepository) GlobalAverage(ctx context.Context) (float64, int64, error) {
	var result struct {
		Avg   *float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("AVG(stars) AS avg, COUNT(*) AS count").
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	if result.Avg == nil {
		return 0, result.Count, nil
	}
	return *result.Avg, result.Count, nil
}
