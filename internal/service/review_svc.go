package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== ReviewService 评价服务 ====================

// ReviewService 评价服务
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// ==================== 新增评价 ====================

// Create 新增评价，然后单独跑聚合重算商品平均分并写回
// 两步各自落库，没有锁；并发评价时平均分以后写入者为准
func (s *ReviewService) Create(ctx context.Context, req *dto.CreateReviewRequest) (*model.Review, error) {
	review := &model.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Stars:     req.Stars,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := s.RecalcProductRating(ctx, req.ProductID); err != nil {
		// 评价已入库，平均分写回失败只记日志，夜间对账任务会补
		log.Warn().Err(err).Int64("product_id", req.ProductID).Msg("重算平均分失败")
	}

	return review, nil
}

// RecalcProductRating 重算并写回某商品的平均评分（保留两位小数）
func (s *ReviewService) RecalcProductRating(ctx context.Context, productID int64) error {
	avg, err := s.reviewRepo.AverageForProduct(ctx, productID)
	if err != nil {
		return err
	}
	rounded := math.Round(avg*100) / 100
	return s.productRepo.UpdateAverageRating(ctx, productID, rounded)
}

// ==================== 查询 ====================

// ListByProduct 商品的评价列表
func (s *ReviewService) ListByProduct(ctx context.Context, productID int64) ([]repository.ReviewWithNames, error) {
	return s.reviewRepo.ListByProduct(ctx, productID)
}

// HasReviewed 用户是否已评价过该商品
func (s *ReviewService) HasReviewed(ctx context.Context, userID, productID int64) (bool, *model.Review, error) {
	review, err := s.reviewRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return false, nil, err
	}
	return review != nil, review, nil
}

// ListAll 全量评价（管理页）
func (s *ReviewService) ListAll(ctx context.Context) ([]repository.ReviewWithNames, error) {
	return s.reviewRepo.ListAll(ctx)
}

// ==================== 总览 ====================

// Overview 评价总览
type Overview struct {
	Latest        []repository.ReviewWithNames `json:"latest"`
	AverageRating float64                      `json:"average_rating"`
	TotalReviews  int64                        `json:"total_reviews"`
}

// GetOverview 最新 4 条评价 + 全站平均分
func (s *ReviewService) GetOverview(ctx context.Context) (*Overview, error) {
	latest, err := s.reviewRepo.ListLatest(ctx, 4)
	if err != nil {
		return nil, err
	}
	avg, count, err := s.reviewRepo.GlobalAverage(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{
		Latest:        latest,
		AverageRating: math.Round(avg*100) / 100,
		TotalReviews:  count,
	}, nil
}
