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

type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ParentID    *uint  `json:"parent_id"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, productRepo: productRepo}
}

// List returns main categories when parentID is nil, otherwise the
// subcategories of the given parent.
func (s *CategoryService) List(ctx context.Context, parentID *uint) ([]models.Category, *ServiceError) {
	var (
		categories []models.Category
		err        error
	)

	if parentID == nil {
		categories, err = s.categoryRepo.ReadMain(ctx)
	} else {
		categories, err = s.categoryRepo.ReadSub(ctx, *parentID)
	}
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch categories"}
	}
	return categories, nil
}

func (s *CategoryService) ListAll(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.categoryRepo.ReadAll(ctx)
	if err != nil {
		zap.L().Error("failed to list all categories", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch categories"}
	}
	return categories, nil
}

func (s *CategoryService) GetOne(ctx context.Context, id uint) (*models.Category, *ServiceError) {
	category, err := s.categoryRepo.ReadOne(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Category not found"}
		}
		zap.L().Error("failed to read category", zap.Error(err), zap.Uint("id", id))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch category"}
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, *ServiceError) {
	category := fromCategoryInput(input)

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		zap.L().Error("failed to create category", zap.Error(err), zap.String("name", input.Name))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to create category"}
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, input CategoryInput) *ServiceError {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Category not found"}
		}
		zap.L().Error("failed to read category for update", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update category"}
	}

	category := fromCategoryInput(input)
	category.ID = id

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		zap.L().Error("failed to update category", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update category"}
	}
	return nil
}

// Delete refuses to remove a category that still has products or
// subcategories attached.
func (s *CategoryService) Delete(ctx context.Context, id uint) *ServiceError {
	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		zap.L().Error("failed to count category products", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to delete category"}
	}
	if count > 0 {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Cannot delete category with associated products"}
	}

	hasChildren, err := s.categoryRepo.HasChildren(ctx, id)
	if err != nil {
		zap.L().Error("failed to check subcategories", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to delete category"}
	}
	if hasChildren {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Cannot delete category with subcategories"}
	}

	rows, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete category", zap.Error(err), zap.Uint("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to delete category"}
	}
	if rows == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Category not found"}
	}
	return nil
}

func fromCategoryInput(input CategoryInput) *models.Category {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	return &models.Category{
		Name:        input.Name,
		Slug:        Slugify(input.Name),
		Description: input.Description,
		Image:       input.Image,
		ParentID:    input.ParentID,
		SortOrder:   input.SortOrder,
		IsActive:    isActive,
	}
}
