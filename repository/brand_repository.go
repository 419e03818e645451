package repository

import (
	"context"
	"fmt"

	"github.com/Rune905/Beauty-Bloom/models"

	"gorm.io/gorm"
)

// BrandInUseError reports a delete blocked by associated products.
type BrandInUseError struct {
	Count int64
}

func (e *BrandInUseError) Error() string {
	return fmt.Sprintf("cannot delete brand: it has %d associated product(s)", e.Count)
}

type BrandRepository interface {
	Read(ctx context.Context) ([]models.Brand, error)
	ReadAll(ctx context.Context) ([]models.Brand, error)
	FindByID(ctx context.Context, id uint) (*models.Brand, error)
	Search(ctx context.Context, term string) ([]models.Brand, error)
	Create(ctx context.Context, brand *models.Brand) error
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id uint) error
}

type GormBrandRepository struct {
	db *gorm.DB
}

func NewGormBrandRepository(db *gorm.DB) BrandRepository {
	return &GormBrandRepository{db: db}
}

func (r *GormBrandRepository) Read(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&brands).Error
	return brands, err
}

func (r *GormBrandRepository) ReadAll(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *GormBrandRepository) FindByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *GormBrandRepository) Search(ctx context.Context, term string) ([]models.Brand, error) {
	var brands []models.Brand
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&brands).Error
	return brands, err
}

func (r *GormBrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *GormBrandRepository) Update(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Model(brand).Select("*").Omit("id", "created_at").Updates(brand).Error
}

// Delete removes a brand unless products still reference it. The count check
// and the delete run inside one transaction so a concurrent product insert
// cannot slip between them.
func (r *GormBrandRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("brand_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &BrandInUseError{Count: count}
		}

		res := tx.Delete(&models.Brand{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
