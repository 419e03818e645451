package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBrandService struct{ mock.Mock }

func (m *MockBrandService) List(ctx context.Context) ([]models.Brand, *services.ServiceError) {
	args := m.Called(ctx)
	return brandsArg(args, 0), svcErrArg(args, 1)
}
func (m *MockBrandService) ListAll(ctx context.Context) ([]models.Brand, *services.ServiceError) {
	args := m.Called(ctx)
	return brandsArg(args, 0), svcErrArg(args, 1)
}
func (m *MockBrandService) Search(ctx context.Context, term string) ([]models.Brand, *services.ServiceError) {
	args := m.Called(ctx, term)
	return brandsArg(args, 0), svcErrArg(args, 1)
}
func (m *MockBrandService) Create(ctx context.Context, input services.BrandInput) (*models.Brand, *services.ServiceError) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, svcErrArg(args, 1)
	}
	return args.Get(0).(*models.Brand), svcErrArg(args, 1)
}
func (m *MockBrandService) Update(ctx context.Context, id uint, input services.BrandInput) *services.ServiceError {
	args := m.Called(ctx, id, input)
	return svcErrArg(args, 0)
}
func (m *MockBrandService) Delete(ctx context.Context, id uint) *services.ServiceError {
	args := m.Called(ctx, id)
	return svcErrArg(args, 0)
}

func brandsArg(args mock.Arguments, i int) []models.Brand {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]models.Brand)
}

func TestGetBrands(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200 with records envelope", func(t *testing.T) {
		mockService := new(MockBrandService)
		controller := NewBrandController(mockService)

		mockService.On("List", mock.Anything).
			Return([]models.Brand{{ID: 1, Name: "Estee Lauder"}}, nil).Once()

		router := gin.New()
		router.GET("/api/brands/read", controller.GetBrands)

		req, _ := http.NewRequest(http.MethodGet, "/api/brands/read", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"total":1`)
		assert.Contains(t, recorder.Body.String(), "Estee Lauder")
	})

	t.Run("Search term dispatches to Search", func(t *testing.T) {
		mockService := new(MockBrandService)
		controller := NewBrandController(mockService)

		mockService.On("Search", mock.Anything, "estee").
			Return([]models.Brand{{ID: 1, Name: "Estee Lauder"}}, nil).Once()

		router := gin.New()
		router.GET("/api/brands/read", controller.GetBrands)

		req, _ := http.NewRequest(http.MethodGet, "/api/brands/read?s=estee", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertNotCalled(t, "List", mock.Anything)
		mockService.AssertExpectations(t)
	})

	t.Run("Empty - 404", func(t *testing.T) {
		mockService := new(MockBrandService)
		controller := NewBrandController(mockService)

		mockService.On("List", mock.Anything).Return([]models.Brand{}, nil).Once()

		router := gin.New()
		router.GET("/api/brands/read", controller.GetBrands)

		req, _ := http.NewRequest(http.MethodGet, "/api/brands/read", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "No brands found.")
	})
}

func TestBrandDeleteController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Brand in use - 400 with count", func(t *testing.T) {
		mockService := new(MockBrandService)
		controller := NewBrandController(mockService)

		mockService.On("Delete", mock.Anything, uint(3)).
			Return(&services.ServiceError{
				StatusCode: http.StatusBadRequest,
				Message:    "cannot delete brand: it has 4 associated product(s)",
			}).Once()

		router := gin.New()
		router.DELETE("/api/admin/brands", controller.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/brands?id=3", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "4 associated product")
	})

	t.Run("Success - 200", func(t *testing.T) {
		mockService := new(MockBrandService)
		controller := NewBrandController(mockService)

		mockService.On("Delete", mock.Anything, uint(5)).Return(nil).Once()

		router := gin.New()
		router.DELETE("/api/admin/brands", controller.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/brands?id=5", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Brand deleted successfully")
	})
}
