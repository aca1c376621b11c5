package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== 测试辅助 ====================

func setupReviewSvc(t *testing.T) (*ReviewService, *gorm.DB) {
	db := openSvcTestDB(t, &model.User{}, &model.Product{}, &model.Review{})
	svc := NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func seedReviewFixtures(t *testing.T, db *gorm.DB) (model.User, model.Product) {
	t.Helper()
	user := model.User{Username: "lan", Password: "x", Role: model.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)
	product := model.Product{StoreID: 1, Name: "Váy hoa", Price: 250000}
	require.NoError(t, db.Create(&product).Error)
	return user, product
}

// ==================== 评价写入 ====================

func TestReviewCreate_RecomputesAverageRounded(t *testing.T) {
	svc, db := setupReviewSvc(t)
	user, product := seedReviewFixtures(t, db)

	// 5 + 4 + 4 → 4.333... 存两位小数 4.33
	for _, stars := range []int{5, 4, 4} {
		_, err := svc.Create(context.Background(), &dto.CreateReviewRequest{
			UserID:    user.ID,
			ProductID: product.ID,
			Stars:     stars,
			Content:   "đẹp lắm",
		})
		require.NoError(t, err)
	}

	var got model.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	assert.Equal(t, 4.33, got.AverageRating)
}

func TestReviewCreate_AllowsDuplicatePerUser(t *testing.T) {
	svc, db := setupReviewSvc(t)
	user, product := seedReviewFixtures(t, db)

	// 同一用户可以对同一商品评多次，没有唯一约束
	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), &dto.CreateReviewRequest{
			UserID:    user.ID,
			ProductID: product.ID,
			Stars:     3,
		})
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&model.Review{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

// ==================== 查询 ====================

func TestReviewHasReviewed(t *testing.T) {
	svc, db := setupReviewSvc(t)
	user, product := seedReviewFixtures(t, db)

	reviewed, review, err := svc.HasReviewed(context.Background(), user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, reviewed)
	assert.Nil(t, review)

	_, err = svc.Create(context.Background(), &dto.CreateReviewRequest{
		UserID:    user.ID,
		ProductID: product.ID,
		Stars:     5,
	})
	require.NoError(t, err)

	reviewed, review, err = svc.HasReviewed(context.Background(), user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, reviewed)
	require.NotNil(t, review)
	assert.Equal(t, 5, review.Stars)
}

func TestReviewListByProduct_JoinsUsername(t *testing.T) {
	svc, db := setupReviewSvc(t)
	user, product := seedReviewFixtures(t, db)

	_, err := svc.Create(context.Background(), &dto.CreateReviewRequest{
		UserID:    user.ID,
		ProductID: product.ID,
		Stars:     4,
		Content:   "vải hơi mỏng",
	})
	require.NoError(t, err)

	rows, err := svc.ListByProduct(context.Background(), product.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "lan", rows[0].Username)
}

// ==================== 总览 ====================

func TestReviewOverview(t *testing.T) {
	svc, db := setupReviewSvc(t)
	user, product := seedReviewFixtures(t, db)

	for _, stars := range []int{5, 4, 3, 2, 1} {
		_, err := svc.Create(context.Background(), &dto.CreateReviewRequest{
			UserID:    user.ID,
			ProductID: product.ID,
			Stars:     stars,
		})
		require.NoError(t, err)
	}

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Len(t, overview.Latest, 4)
	assert.Equal(t, int64(5), overview.TotalReviews)
	assert.Equal(t, 3.0, overview.AverageRating)
}

func TestReviewOverview_Empty(t *testing.T) {
	svc, _ := setupReviewSvc(t)

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overview.Latest)
	assert.Zero(t, overview.TotalReviews)
	assert.Zero(t, overview.AverageRating)
}
