package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/phamkimtung/nhom8web/internal/repository"
)

// CleanupTask 搜索历史清理任务，只保留最近一段时间的记录
type CleanupTask struct {
	SearchRepo repository.SearchHistoryRepository
	Cron       *cron.Cron

	// 保留天数
	retentionDays int
}

func NewCleanupTask(searchRepo repository.SearchHistoryRepository, retentionDays int) *CleanupTask {
	if retentionDays <= 0 {
		retentionDays = 90
	}
	return &CleanupTask{
		SearchRepo:    searchRepo,
		Cron:          cron.New(cron.WithSeconds()),
		retentionDays: retentionDays,
	}
}

// Start 启动定时任务
func (t *CleanupTask) Start() {
	// 每天凌晨 4 点清一次
	_, err := t.Cron.AddFunc("0 30 4 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		t.cleanupJob(ctx)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("无法启动搜索历史清理任务")
	}

	t.Cron.Start()
	log.Info().Int("retention_days", t.retentionDays).Msg("搜索历史清理任务已启动 (每天 04:30)")
}

// Stop 停掉定时器
func (t *CleanupTask) Stop() {
	t.Cron.Stop()
}

func (t *CleanupTask) cleanupJob(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -t.retentionDays)

	deleted, err := t.SearchRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("清理搜索历史失败")
		return
	}

	log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("搜索历史清理完成")
}
