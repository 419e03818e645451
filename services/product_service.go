package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductInput carries every product column for create and update. Updates
// overwrite the whole row; there are no partial-patch semantics.
type ProductInput struct {
	Name             string     `json:"name" validate:"required"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	SKU              string     `json:"sku"`
	CategoryID       *uint      `json:"category_id"`
	BrandID          *uint      `json:"brand_id"`
	Price            float64    `json:"price" validate:"required,gt=0"`
	SalePrice        *float64   `json:"sale_price" validate:"omitempty,gt=0"`
	StockQuantity    int        `json:"stock_quantity" validate:"gte=0"`
	IsFeatured       bool       `json:"is_featured"`
	IsHotDeal        bool       `json:"is_hot_deal"`
	HotDealEndDate   *time.Time `json:"hot_deal_end_date"`
	IsActive         *bool      `json:"is_active"`
	Image            string     `json:"image"`
}

// ListParams selects between plain listing, search and category filtering
// for the public catalog endpoint.
type ListParams struct {
	Limit      int
	Offset     int
	CategoryID uint
	Search     string
}

type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// List dispatches the public catalog read: search wins over category filter,
// which wins over the plain paginated listing.
func (s *ProductService) List(ctx context.Context, params ListParams) ([]models.ProductRow, *ServiceError) {
	var (
		rows []models.ProductRow
		err  error
	)

	switch {
	case params.Search != "":
		rows, err = s.productRepo.Search(ctx, params.Search, params.Limit)
	case params.CategoryID != 0:
		rows, err = s.productRepo.GetByCategory(ctx, params.CategoryID, params.Limit, params.Offset)
	default:
		rows, err = s.productRepo.Read(ctx, params.Limit, params.Offset)
	}
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch products"}
	}
	return rows, nil
}

func (s *ProductService) Featured(ctx context.Context, limit int) ([]models.ProductRow, *ServiceError) {
	rows, err := s.productRepo.ReadFeatured(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list featured products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch products"}
	}
	return rows, nil
}

func (s *ProductService) HotDeals(ctx context.Context, limit int) ([]models.ProductRow, *ServiceError) {
	rows, err := s.productRepo.ReadHotDeals(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list hot deals", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch products"}
	}
	return rows, nil
}

// GetOne is the customer-facing single read; inactive products 404.
func (s *ProductService) GetOne(ctx context.Context, id uint) (*models.ProductRow, *ServiceError) {
	row, err := s.productRepo.ReadOne(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
		}
		zap.L().Error("failed to read product", zap.Error(err), zap.Uint("id", id))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch product"}
	}
	return row, nil
}

// GetOneAdmin reads without the is_active filter, so admins can inspect
// inactive products.
func (s *ProductService) GetOneAdmin(ctx context.Context, id uint) (*models.ProductRow, *ServiceError) {
	row, err := s.productRepo.ReadOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
		}
		zap.L().Error("failed to read product", zap.Error(err), zap.Uint("id", id))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch product"}
	}
	return row, nil
}

func (s *ProductService) ListAll(ctx context.Context) ([]models.ProductRow, *ServiceError) {
	rows, err := s.productRepo.ReadAll(ctx)
	if err != nil {
		zap.L().Error("failed to list all products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch products"}
	}
	return rows, nil
}

// Create inserts a product, generating the slug from the name and a SKU when
// none was supplied.
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, *ServiceError) {
	product := s.fromInput(ctx, input)

	if err := s.productRepo.Create(ctx, product); err != nil {
		zap.L().Error("failed to create product", zap.Error(err), zap.String("name", input.Name))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to create product"}
	}
	return product, nil
}

// Update overwrites every column of an existing product. A missing SKU is
// regenerated from the (possibly new) name and category.
func (s *ProductService) Update(ctx context.Context, id uint, input ProductInput) *ServiceError {
	if _, err := s.productRepo.ReadOneByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
		}
		zap.L().Error("failed to read product for update", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update product"}
	}

	product := s.fromInput(ctx, input)
	product.ID = id

	if err := s.productRepo.Update(ctx, product); err != nil {
		zap.L().Error("failed to update product", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update product"}
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) *ServiceError {
	rows, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete product", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to delete product"}
	}
	if rows == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
	}
	return nil
}

// SetImage stores the bare filename of an uploaded image on the product row.
func (s *ProductService) SetImage(ctx context.Context, id uint, filename string) *ServiceError {
	rows, err := s.productRepo.UpdateImage(ctx, id, filename)
	if err != nil {
		zap.L().Error("failed to update product image", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update product image"}
	}
	if rows == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
	}
	return nil
}

// fromInput maps input onto a model, filling derived fields. The category
// name for the SKU prefix is a best-effort lookup: an unknown category just
// drops the prefix, as the storefront always has.
func (s *ProductService) fromInput(ctx context.Context, input ProductInput) *models.Product {
	sku := input.SKU
	if sku == "" {
		var categoryName string
		if input.CategoryID != nil {
			if category, err := s.categoryRepo.FindByID(ctx, *input.CategoryID); err == nil {
				categoryName = category.Name
			}
		}
		sku = GenerateSKU(input.Name, categoryName, time.Now())
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &models.Product{
		Name:             input.Name,
		Slug:             Slugify(input.Name),
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		SKU:              sku,
		CategoryID:       input.CategoryID,
		BrandID:          input.BrandID,
		Price:            input.Price,
		SalePrice:        input.SalePrice,
		StockQuantity:    input.StockQuantity,
		IsFeatured:       input.IsFeatured,
		IsHotDeal:        input.IsHotDeal,
		HotDealEndDate:   input.HotDealEndDate,
		IsActive:         isActive,
		Image:            input.Image,
	}
}
