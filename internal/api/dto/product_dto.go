package dto

// ==================== 商品 ====================

// CreateProductRequest 创建商品
type CreateProductRequest struct {
	StoreID          int64   `json:"store_id" binding:"required"`
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" binding:"required"`
	Category         string  `json:"category"`
	ImagePath        string  `json:"image_path"`
	TryOnDescription string  `json:"try_on_description"`
}

// UpdateProductRequest 整体覆盖商品字段
type UpdateProductRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" binding:"required"`
	Category         string  `json:"category"`
	ImagePath        string  `json:"image_path"`
	TryOnDescription string  `json:"try_on_description"`
}

// ==================== 库存 ====================

// CreateInventoryRequest 新增一个尺码的库存行
type CreateInventoryRequest struct {
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity"`
}

// UpdateInventoryRequest 覆盖库存数量
type UpdateInventoryRequest struct {
	Quantity int `json:"quantity"`
}

// ==================== 商品图片 ====================

// AddProductImageRequest 追加商品图片
type AddProductImageRequest struct {
	URL      string `json:"url" binding:"required"`
	Kind     string `json:"kind"`
	Position int    `json:"position"`
}
