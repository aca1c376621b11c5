package dto

// TryOnRequest AI 试穿请求
// PersonImage 为用户照片的公开 URL 或 data URI
type TryOnRequest struct {
	ProductID   int64  `json:"product_id" binding:"required"`
	PersonImage string `json:"person_image" binding:"required"`
}

// TryOnResponse AI 试穿结果
type TryOnResponse struct {
	LogID    int64  `json:"log_id"`
	ImageURL string `json:"imageUrl"`
}

// UploadResponse 图片上传结果
type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}
