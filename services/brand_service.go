package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BrandInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website"`
	IsActive    *bool  `json:"is_active"`
}

type BrandService struct {
	brandRepo repository.BrandRepository
}

func NewBrandService(brandRepo repository.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

func (s *BrandService) List(ctx context.Context) ([]models.Brand, *ServiceError) {
	brands, err := s.brandRepo.Read(ctx)
	if err != nil {
		zap.L().Error("failed to list brands", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch brands"}
	}
	return brands, nil
}

func (s *BrandService) ListAll(ctx context.Context) ([]models.Brand, *ServiceError) {
	brands, err := s.brandRepo.ReadAll(ctx)
	if err != nil {
		zap.L().Error("failed to list all brands", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch brands"}
	}
	return brands, nil
}

func (s *BrandService) Search(ctx context.Context, term string) ([]models.Brand, *ServiceError) {
	brands, err := s.brandRepo.Search(ctx, term)
	if err != nil {
		zap.L().Error("failed to search brands", zap.Error(err), zap.String("term", term))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch brands"}
	}
	return brands, nil
}

func (s *BrandService) Create(ctx context.Context, input BrandInput) (*models.Brand, *ServiceError) {
	brand := fromBrandInput(input)

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		zap.L().Error("failed to create brand", zap.Error(err), zap.String("name", input.Name))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to create brand"}
	}
	return brand, nil
}

func (s *BrandService) Update(ctx context.Context, id uint, input BrandInput) *ServiceError {
	if _, err := s.brandRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Brand not found"}
		}
		zap.L().Error("failed to read brand for update", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update brand"}
	}

	brand := fromBrandInput(input)
	brand.ID = id

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		zap.L().Error("failed to update brand", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update brand"}
	}
	return nil
}

// Delete removes a brand; a brand still referenced by products is a 400
// with the product count in the message.
func (s *BrandService) Delete(ctx context.Context, id uint) *ServiceError {
	err := s.brandRepo.Delete(ctx, id)
	if err == nil {
		return nil
	}

	var inUse *repository.BrandInUseError
	if errors.As(err, &inUse) {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: inUse.Error()}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Brand not found"}
	}

	zap.L().Error("failed to delete brand", zap.Error(err), zap.Uint("id", id))
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to delete brand"}
}

func fromBrandInput(input BrandInput) *models.Brand {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	return &models.Brand{
		Name:        input.Name,
		Slug:        Slugify(input.Name),
		Description: input.Description,
		Website:     input.Website,
		IsActive:    isActive,
	}
}
