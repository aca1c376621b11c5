package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
)

// ==================== ProductService 商品服务 ====================

// ProductService 商品服务，连带管理库存行和附加图片
type ProductService struct {
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
	imageRepo   repository.ProductImageRepository
}

// NewProductService 创建商品服务
func NewProductService(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	imageRepo repository.ProductImageRepository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		invRepo:     invRepo,
		imageRepo:   imageRepo,
	}
}

// ==================== 商品 CRUD ====================

// Create 创建商品
func (s *ProductService) Create(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error) {
	product := &model.Product{
		StoreID:          req.StoreID,
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		Category:         req.Category,
		ImagePath:        req.ImagePath,
		TryOnDescription: req.TryOnDescription,
		CreatedAt:        time.Now(),
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID 查询商品
func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ListAll 全量商品列表（面向买家的商城首页）
func (s *ProductService) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.ListAll(ctx)
}

// ListByStore 店铺商品列表
func (s *ProductService) ListByStore(ctx context.Context, storeID int64) ([]model.Product, error) {
	return s.productRepo.ListByStore(ctx, storeID)
}

// Update 整体覆盖商品字段
func (s *ProductService) Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) error {
	return s.productRepo.Update(ctx, id, map[string]interface{}{
		"name":               req.Name,
		"description":        req.Description,
		"price":              req.Price,
		"category":           req.Category,
		"image_path":         req.ImagePath,
		"try_on_description": req.TryOnDescription,
	})
}

// Delete 硬删除商品
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

// ==================== 库存 ====================

// AddInventory 给商品加一个尺码的库存行
func (s *ProductService) AddInventory(ctx context.Context, productID int64, req *dto.CreateInventoryRequest) (*model.Inventory, error) {
	inv := &model.Inventory{
		ProductID: productID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}
	if err := s.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListInventory 商品的库存行
func (s *ProductService) ListInventory(ctx context.Context, productID int64) ([]model.Inventory, error) {
	return s.invRepo.ListByProduct(ctx, productID)
}

// UpdateInventoryQuantity 覆盖库存数量
func (s *ProductService) UpdateInventoryQuantity(ctx context.Context, id int64, quantity int) error {
	return s.invRepo.UpdateQuantity(ctx, id, quantity)
}

// ==================== 商品图片 ====================

// AddImage 追加商品图片
func (s *ProductService) AddImage(ctx context.Context, productID int64, req *dto.AddProductImageRequest) (*model.ProductImage, error) {
	image := &model.ProductImage{
		ProductID: productID,
		URL:       req.URL,
		Kind:      req.Kind,
		Position:  req.Position,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// ListImages 商品图片，按 position 排序
func (s *ProductService) ListImages(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	return s.imageRepo.ListByProduct(ctx, productID)
}

// DeleteImage 删除一张商品图片
func (s *ProductService) DeleteImage(ctx context.Context, id int64) error {
	return s.imageRepo.Delete(ctx, id)
}
