package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== 测试辅助 ====================

// fakePredictionServer 模拟第三方推理接口：创建任务后第 pollsUntilDone 次查询才出结果
func fakePredictionServer(t *testing.T, finalStatus string, output interface{}, pollsUntilDone int32) *httptest.Server {
	t.Helper()
	var polls int32

	mux := http.NewServeMux()
	mux.HandleFunc("/predictions", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.Header.Get("Authorization"), "Token ")

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "input")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "pred-1",
			"status": "starting",
		})
	})
	mux.HandleFunc("/predictions/pred-1", func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{"id": "pred-1"}
		if atomic.AddInt32(&polls, 1) < pollsUntilDone {
			resp["status"] = "processing"
		} else {
			resp["status"] = finalStatus
			resp["output"] = output
			if finalStatus == "failed" {
				resp["error"] = "NSFW content detected"
			}
		}
		json.NewEncoder(w).Encode(resp)
	})

	return httptest.NewServer(mux)
}

func setupTryOnSvc(t *testing.T, baseURL string) (*TryOnService, *gorm.DB) {
	db := openSvcTestDB(t, &model.Product{}, &model.TryOnLog{})
	svc := NewTryOnService(&TryOnConfig{
		APIToken:     "test-token",
		ModelVersion: "v1",
		BaseURL:      baseURL,
		PollInterval: 10 * time.Millisecond,
		Timeout:      2 * time.Second,
	}, repository.NewProductRepository(db), repository.NewTryOnLogRepository(db))
	return svc, db
}

func seedTryOnProduct(t *testing.T, db *gorm.DB) model.Product {
	t.Helper()
	product := model.Product{
		StoreID:          1,
		Name:             "Áo sơ mi",
		Price:            300000,
		ImagePath:        "https://cdn.example.com/ao-so-mi.jpg",
		TryOnDescription: "áo sơ mi trắng dài tay",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// ==================== 试穿 ====================

func TestTryOn_Succeeds(t *testing.T) {
	server := fakePredictionServer(t, "succeeded", []string{"https://out.example.com/result.png"}, 2)
	defer server.Close()

	svc, db := setupTryOnSvc(t, server.URL)
	product := seedTryOnProduct(t, db)

	resp, err := svc.TryOn(context.Background(), 9, &dto.TryOnRequest{
		ProductID:   product.ID,
		PersonImage: "https://example.com/me.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://out.example.com/result.png", resp.ImageURL)

	var tlog model.TryOnLog
	require.NoError(t, db.First(&tlog, resp.LogID).Error)
	assert.Equal(t, model.TryOnStatusSucceeded, tlog.Status)
	assert.Equal(t, int64(9), tlog.UserID)
	assert.Equal(t, resp.ImageURL, tlog.ResultURL)
	assert.NotEmpty(t, tlog.RawResponse)
}

func TestTryOn_OutputAsSingleString(t *testing.T) {
	server := fakePredictionServer(t, "succeeded", "https://out.example.com/one.png", 1)
	defer server.Close()

	svc, db := setupTryOnSvc(t, server.URL)
	product := seedTryOnProduct(t, db)

	resp, err := svc.TryOn(context.Background(), 1, &dto.TryOnRequest{
		ProductID:   product.ID,
		PersonImage: "https://example.com/me.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://out.example.com/one.png", resp.ImageURL)
}

func TestTryOn_FailureLogged(t *testing.T) {
	server := fakePredictionServer(t, "failed", nil, 1)
	defer server.Close()

	svc, db := setupTryOnSvc(t, server.URL)
	product := seedTryOnProduct(t, db)

	_, err := svc.TryOn(context.Background(), 3, &dto.TryOnRequest{
		ProductID:   product.ID,
		PersonImage: "https://example.com/me.jpg",
	})
	require.Error(t, err)

	var tlog model.TryOnLog
	require.NoError(t, db.First(&tlog).Error)
	assert.Equal(t, model.TryOnStatusFailed, tlog.Status)
	assert.Contains(t, tlog.ErrorMsg, "NSFW")
}

func TestTryOn_UnknownProduct(t *testing.T) {
	svc, db := setupTryOnSvc(t, "http://localhost:1")

	_, err := svc.TryOn(context.Background(), 1, &dto.TryOnRequest{
		ProductID:   777,
		PersonImage: "https://example.com/me.jpg",
	})
	assert.ErrorIs(t, err, ErrProductNotFound)

	// 商品都找不到就不该留调用记录
	var count int64
	require.NoError(t, db.Model(&model.TryOnLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTryOn_MissingToken(t *testing.T) {
	db := openSvcTestDB(t, &model.Product{}, &model.TryOnLog{})
	svc := NewTryOnService(&TryOnConfig{},
		repository.NewProductRepository(db),
		repository.NewTryOnLogRepository(db))

	_, err := svc.TryOn(context.Background(), 1, &dto.TryOnRequest{ProductID: 1, PersonImage: "x"})
	assert.Error(t, err)
}
