package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== 配置 ====================

// TryOnConfig 第三方试穿接口配置
type TryOnConfig struct {
	APIToken     string
	ModelVersion string        // 换装模型版本号
	BaseURL      string        // 默认 https://api.replicate.com/v1
	PollInterval time.Duration // 轮询间隔
	Timeout      time.Duration // 单次任务整体超时
}

// ==================== 第三方接口数据结构 ====================

// prediction 第三方推理任务
type prediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"` // starting / processing / succeeded / failed / canceled
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error"`
}

// ==================== TryOnService AI 试穿服务 ====================

// TryOnService AI 试穿服务
// 把用户照片和服装图交给第三方图像生成接口，轮询拿结果
type TryOnService struct {
	config      *TryOnConfig
	client      *resty.Client
	productRepo repository.ProductRepository
	logRepo     repository.TryOnLogRepository
}

// NewTryOnService 创建试穿服务
func NewTryOnService(cfg *TryOnConfig, productRepo repository.ProductRepository, logRepo repository.TryOnLogRepository) *TryOnService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.replicate.com/v1"
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 90 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Authorization", "Token "+cfg.APIToken).
		SetHeader("Content-Type", "application/json")

	return &TryOnService{
		config:      cfg,
		client:      client,
		productRepo: productRepo,
		logRepo:     logRepo,
	}
}

// ==================== 试穿 ====================

// TryOn 发起一次试穿
// 阻塞到第三方任务出结果为止，调用记录落 try_on_logs
func (s *TryOnService) TryOn(ctx context.Context, userID int64, req *dto.TryOnRequest) (*dto.TryOnResponse, error) {
	if s.config.APIToken == "" {
		return nil, fmt.Errorf("chưa cấu hình API token cho dịch vụ thử đồ")
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	// 服装描述：优先用商品上配置的试穿描述
	garmentDesc := product.TryOnDescription
	if garmentDesc == "" {
		garmentDesc = fmt.Sprintf("%s - %s", product.Name, product.Category)
	}

	tlog := &model.TryOnLog{
		UserID:    userID,
		ProductID: req.ProductID,
		Status:    model.TryOnStatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.logRepo.Create(ctx, tlog); err != nil {
		return nil, err
	}

	resultURL, raw, err := s.runPrediction(ctx, req.PersonImage, product.ImagePath, garmentDesc)

	tlog.RawResponse = datatypes.JSON(raw)
	if err != nil {
		tlog.Status = model.TryOnStatusFailed
		tlog.ErrorMsg = err.Error()
		if uerr := s.logRepo.Update(ctx, tlog); uerr != nil {
			log.Warn().Err(uerr).Int64("log_id", tlog.ID).Msg("更新试穿记录失败")
		}
		return nil, err
	}

	tlog.Status = model.TryOnStatusSucceeded
	tlog.ResultURL = resultURL
	if uerr := s.logRepo.Update(ctx, tlog); uerr != nil {
		log.Warn().Err(uerr).Int64("log_id", tlog.ID).Msg("更新试穿记录失败")
	}

	return &dto.TryOnResponse{LogID: tlog.ID, ImageURL: resultURL}, nil
}

// runPrediction 创建推理任务并轮询到终态，返回输出图 URL 和最后一次原始响应
func (s *TryOnService) runPrediction(ctx context.Context, personImage, garmentImage, garmentDesc string) (string, []byte, error) {
	body := map[string]interface{}{
		"version": s.config.ModelVersion,
		"input": map[string]interface{}{
			"human_img":   personImage,
			"garm_img":    garmentImage,
			"garment_des": garmentDesc,
		},
	}

	var created prediction
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&created).
		Post("/predictions")
	if err != nil {
		return "", nil, fmt.Errorf("gọi dịch vụ thử đồ thất bại: %w", err)
	}
	if resp.IsError() {
		return "", resp.Body(), fmt.Errorf("dịch vụ thử đồ trả về lỗi [%d]: %s", resp.StatusCode(), resp.String())
	}

	deadline := time.Now().Add(s.config.Timeout)
	current := created
	raw := resp.Body()

	for {
		switch current.Status {
		case "succeeded":
			url, err := extractOutputURL(current.Output)
			return url, raw, err
		case "failed", "canceled":
			return "", raw, fmt.Errorf("tác vụ thử đồ thất bại: %s", current.Error)
		}

		if time.Now().After(deadline) {
			return "", raw, fmt.Errorf("tác vụ thử đồ quá thời gian chờ")
		}

		select {
		case <-ctx.Done():
			return "", raw, ctx.Err()
		case <-time.After(s.config.PollInterval):
		}

		var polled prediction
		resp, err := s.client.R().
			SetContext(ctx).
			SetResult(&polled).
			Get("/predictions/" + created.ID)
		if err != nil {
			return "", raw, fmt.Errorf("truy vấn tác vụ thử đồ thất bại: %w", err)
		}
		if resp.IsError() {
			return "", resp.Body(), fmt.Errorf("truy vấn tác vụ thử đồ trả về lỗi [%d]", resp.StatusCode())
		}
		current = polled
		raw = resp.Body()
	}
}

// extractOutputURL 第三方的 output 可能是字符串或字符串数组，取第一张
func extractOutputURL(output json.RawMessage) (string, error) {
	if len(output) == 0 {
		return "", fmt.Errorf("tác vụ không trả về ảnh")
	}

	var single string
	if err := json.Unmarshal(output, &single); err == nil {
		return single, nil
	}

	var many []string
	if err := json.Unmarshal(output, &many); err == nil && len(many) > 0 {
		return many[0], nil
	}

	return "", fmt.Errorf("không đọc được kết quả ảnh từ dịch vụ thử đồ")
}

// ==================== 历史记录 ====================

// History 用户最近的试穿记录
func (s *TryOnService) History(ctx context.Context, userID int64, limit int) ([]model.TryOnLog, error) {
	return s.logRepo.ListByUser(ctx, userID, limit)
}
