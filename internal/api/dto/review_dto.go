package dto

// CreateReviewRequest 新增评价
type CreateReviewRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	ProductID int64  `json:"product_id" binding:"required"`
	Stars     int    `json:"stars" binding:"required,min=1,max=5"`
	Content   string `json:"content"`
}
