package repository

import (
	"context"

	"github.com/phamkimtung/nhom8web/internal/model"

	"gorm.io/gorm"
)

// ==================== ProductRepository 商品仓库 ====================

// ProductRepository 商品仓库接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.Product, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	UpdateAverageRating(ctx context.Context, id int64, rating float64) error
	ListRatedProductIDs(ctx context.Context) ([]int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepository) ListByStore(ctx context.Context, storeID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 硬删除
// 历史订单明细和库存行不做级联处理，与旧版行为一致
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepository) UpdateAverageRating(ctx context.Context, id int64, rating float64) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).
		Update("average_rating", rating).Error
}

// ListRatedProductIDs 有评价的商品 ID 列表（夜间对账任务用）
func (r *productRepository) ListRatedProductIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Distinct("product_id").
		Pluck("product_id", &ids).Error
	return ids, err
}

// ==================== InventoryRepository 库存仓库 ====================

// InventoryRepository 库存仓库接口
type InventoryRepository interface {
	Create(ctx context.Context, inv *model.Inventory) error
	GetByID(ctx context.Context, id int64) (*model.Inventory, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.Inventory, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
}

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓库
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id int64) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepository) ListByProduct(ctx context.Context, productID int64) ([]model.Inventory, error) {
	var invs []model.Inventory
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&invs).Error
	return invs, err
}

func (r *inventoryRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.Inventory{}).Where("id = ?", id).
		Update("quantity", quantity).Error
}

// ==================== ProductImageRepository 商品图片仓库 ====================

// ProductImageRepository 商品图片仓库接口
type ProductImageRepository interface {
	Create(ctx context.Context, image *model.ProductImage) error
	ListByProduct(ctx context.Context, productID int64) ([]model.ProductImage, error)
	Delete(ctx context.Context, id int64) error
}

type productImageRepository struct {
	db *gorm.DB
}

// NewProductImageRepository 创建商品图片仓库
func NewProductImageRepository(db *gorm.DB) ProductImageRepository {
	return &productImageRepository{db: db}
}

func (r *productImageRepository) Create(ctx context.Context, image *model.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	var images []model.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("position").
		Find(&images).Error
	return images, err
}

func (r *productImageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ProductImage{}, id).Error
}
