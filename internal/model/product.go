package model

import "time"

// ==================== Product 商品 ====================

// Product 商品（服装）
type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID     int64   `gorm:"index;not null" json:"store_id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:100;index" json:"category"`
	ImagePath   string  `gorm:"size:500" json:"image_path"`

	// AI 试穿用的服装描述（可选），原样传给第三方生成接口
	TryOnDescription string `gorm:"size:500" json:"try_on_description"`

	// 冗余的平均评分，每次新增评价后重算写回（保留两位小数）
	AverageRating float64 `gorm:"default:0" json:"average_rating"`

	CreatedAt time.Time `json:"created_at"`

	// 关联
	Inventories []Inventory    `gorm:"foreignKey:ProductID" json:"-"`
	Images      []ProductImage `gorm:"foreignKey:ProductID" json:"-"`
	Reviews     []Review       `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ==================== Inventory 库存 ====================

// Inventory 单个 (商品, 尺码) 的库存行
// 同一商品可有多行，一行一个尺码；(product_id, size) 唯一性不在数据库层强制
type Inventory struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"index;not null" json:"product_id"`
	Size      string `gorm:"size:20;not null" json:"size"`
	Quantity  int    `gorm:"not null;default:0" json:"quantity"`
}

func (Inventory) TableName() string {
	return "inventories"
}

// ==================== ProductImage 商品图片 ====================

// ProductImage 商品附加图（主图存在 Product.ImagePath 上）
type ProductImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"index;not null" json:"product_id"`
	URL       string `gorm:"size:500;not null" json:"url"`
	Kind      string `gorm:"size:50" json:"kind"` // main / gallery / detail
	Position  int    `gorm:"default:0" json:"position"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
