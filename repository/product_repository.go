package repository

import (
	"context"
	"time"

	"github.com/Rune905/Beauty-Bloom/models"

	"gorm.io/gorm"
)

// ProductRepository defines the data access operations for products. List
// reads resolve category and brand names through LEFT JOINs and order by
// recency, matching the storefront's catalog queries.
type ProductRepository interface {
	Read(ctx context.Context, limit, offset int) ([]models.ProductRow, error)
	ReadFeatured(ctx context.Context, limit int) ([]models.ProductRow, error)
	ReadHotDeals(ctx context.Context, limit int) ([]models.ProductRow, error)
	ReadOne(ctx context.Context, id uint) (*models.ProductRow, error)
	ReadOneByID(ctx context.Context, id uint) (*models.ProductRow, error)
	ReadAll(ctx context.Context) ([]models.ProductRow, error)
	Search(ctx context.Context, term string, limit int) ([]models.ProductRow, error)
	GetByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]models.ProductRow, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) (int64, error)
	UpdateImage(ctx context.Context, id uint, filename string) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// listQuery is the base SELECT for catalog rows.
func (r *GormProductRepository) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("products p").
		Select("p.*, c.name AS category_name, b.name AS brand_name").
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Joins("LEFT JOIN brands b ON p.brand_id = b.id")
}

func (r *GormProductRepository) Read(ctx context.Context, limit, offset int) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	err := r.listQuery(ctx).
		Where("p.is_active = ?", true).
		Order("p.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func (r *GormProductRepository) ReadFeatured(ctx context.Context, limit int) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	err := r.listQuery(ctx).
		Where("p.is_featured = ? AND p.is_active = ?", true, true).
		Order("p.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *GormProductRepository) ReadHotDeals(ctx context.Context, limit int) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	err := r.listQuery(ctx).
		Where("p.is_hot_deal = ? AND p.is_active = ?", true, true).
		Where("p.hot_deal_end_date IS NULL OR p.hot_deal_end_date > ?", time.Now()).
		Order("p.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ReadOne is the customer-facing single-product read; inactive products are
// not visible here.
func (r *GormProductRepository) ReadOne(ctx context.Context, id uint) (*models.ProductRow, error) {
	var row models.ProductRow
	err := r.listQuery(ctx).
		Where("p.id = ? AND p.is_active = ?", id, true).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// ReadOneByID is the admin-facing read: no is_active filter, so inactive
// products stay editable.
func (r *GormProductRepository) ReadOneByID(ctx context.Context, id uint) (*models.ProductRow, error) {
	var row models.ProductRow
	err := r.listQuery(ctx).
		Where("p.id = ?", id).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *GormProductRepository) ReadAll(ctx context.Context) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	err := r.listQuery(ctx).
		Order("p.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// Search matches name or description case-insensitively. No relevance
// ranking; results are ordered by recency.
func (r *GormProductRepository) Search(ctx context.Context, term string, limit int) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	pattern := "%" + term + "%"
	err := r.listQuery(ctx).
		Where("p.is_active = ?", true).
		Where("p.name ILIKE ? OR p.description ILIKE ?", pattern, pattern).
		Order("p.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// GetByCategory filters on the exact category id; subcategory products are
// not included.
func (r *GormProductRepository) GetByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	err := r.listQuery(ctx).
		Where("p.category_id = ? AND p.is_active = ?", categoryID, true).
		Order("p.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update overwrites every column of the row, including zero values. There
// are no partial-patch semantics.
func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Model(product).Select("*").Omit("id", "created_at").Updates(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	return res.RowsAffected, res.Error
}

func (r *GormProductRepository) UpdateImage(ctx context.Context, id uint, filename string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("image", filename)
	return res.RowsAffected, res.Error
}

func (r *GormProductRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
