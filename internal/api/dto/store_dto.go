package dto

// CreateStoreRequest 开店请求
type CreateStoreRequest struct {
	UserID      int64  `json:"user_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// UpdateStoreRequest 店铺信息更新
type UpdateStoreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
}
