package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/phamkimtung/nhom8web/internal/repository"
	"github.com/phamkimtung/nhom8web/internal/service"
)

// RatingTask 商品平均分对账任务
// 评价写入后的重算是"先插后算"，出错只记日志，这里每晚全量重算一遍补齐
type RatingTask struct {
	ProductRepo   repository.ProductRepository
	ReviewService *service.ReviewService
	Cron          *cron.Cron
}

func NewRatingTask(productRepo repository.ProductRepository, reviewService *service.ReviewService) *RatingTask {
	return &RatingTask{
		ProductRepo:   productRepo,
		ReviewService: reviewService,
		Cron:          cron.New(cron.WithSeconds()),
	}
}

// Start 启动定时任务
func (t *RatingTask) Start() {
	// 每天凌晨 3 点全量对账
	_, err := t.Cron.AddFunc("0 0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		t.reconcileJob(ctx)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("无法启动评分对账任务")
	}

	t.Cron.Start()
	log.Info().Msg("商品评分对账任务已启动 (每天 03:00)")
}

// Stop 停掉定时器
func (t *RatingTask) Stop() {
	t.Cron.Stop()
}

func (t *RatingTask) reconcileJob(ctx context.Context) {
	productIDs, err := t.ProductRepo.ListRatedProductIDs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("查询有评价的商品失败")
		return
	}

	var failed int
	for _, id := range productIDs {
		if err := t.ReviewService.RecalcProductRating(ctx, id); err != nil {
			failed++
			log.Warn().Err(err).Int64("product_id", id).Msg("重算商品评分失败")
		}
	}

	log.Info().
		Int("total", len(productIDs)).
		Int("failed", failed).
		Msg("商品评分对账完成")
}
