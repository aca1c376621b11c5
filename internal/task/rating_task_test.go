package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
	"github.com/phamkimtung/nhom8web/internal/service"
)

func openTaskTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

// ==================== 评分对账 ====================

func TestRatingTask_ReconcileFixesDriftedAverage(t *testing.T) {
	db := openTaskTestDB(t, &model.Product{}, &model.Review{})

	// 商品上的冗余均分和评价表对不上（写回丢失过）
	product := model.Product{StoreID: 1, Name: "Áo hoodie", Price: 1, AverageRating: 1.0}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&model.Review{ProductID: product.ID, UserID: 1, Stars: 5}).Error)
	require.NoError(t, db.Create(&model.Review{ProductID: product.ID, UserID: 2, Stars: 4}).Error)

	productRepo := repository.NewProductRepository(db)
	reviewSvc := service.NewReviewService(repository.NewReviewRepository(db), productRepo)
	task := NewRatingTask(productRepo, reviewSvc)

	task.reconcileJob(context.Background())

	var got model.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	assert.Equal(t, 4.5, got.AverageRating)
}

// ==================== 搜索历史清理 ====================

func TestCleanupTask_PurgesOldRecords(t *testing.T) {
	db := openTaskTestDB(t, &model.SearchHistory{})

	old := model.SearchHistory{UserID: 1, Keyword: "áo cũ", SearchedAt: time.Now().AddDate(0, 0, -100)}
	recent := model.SearchHistory{UserID: 1, Keyword: "áo mới", SearchedAt: time.Now()}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	task := NewCleanupTask(repository.NewSearchHistoryRepository(db), 90)
	task.cleanupJob(context.Background())

	var remaining []model.SearchHistory
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "áo mới", remaining[0].Keyword)
}
