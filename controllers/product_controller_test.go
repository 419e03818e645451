package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock Service ---

type MockProductService struct{ mock.Mock }

func (m *MockProductService) List(ctx context.Context, params services.ListParams) ([]models.ProductRow, *services.ServiceError) {
	args := m.Called(ctx, params)
	return rowsArg(args, 0), svcErrArg(args, 1)
}
func (m *MockProductService) Featured(ctx context.Context, limit int) ([]models.ProductRow, *services.ServiceError) {
	args := m.Called(ctx, limit)
	return rowsArg(args, 0), svcErrArg(args, 1)
}
func (m *MockProductService) HotDeals(ctx context.Context, limit int) ([]models.ProductRow, *services.ServiceError) {
	args := m.Called(ctx, limit)
	return rowsArg(args, 0), svcErrArg(args, 1)
}
func (m *MockProductService) GetOne(ctx context.Context, id uint) (*models.ProductRow, *services.ServiceError) {
	args := m.Called(ctx, id)
	return rowArg(args, 0), svcErrArg(args, 1)
}
func (m *MockProductService) GetOneAdmin(ctx context.Context, id uint) (*models.ProductRow, *services.ServiceError) {
	args := m.Called(ctx, id)
	return rowArg(args, 0), svcErrArg(args, 1)
}
func (m *MockProductService) ListAll(ctx context.Context) ([]models.ProductRow, *services.ServiceError) {
	args := m.Called(ctx)
	return rowsArg(args, 0), svcErrArg(args, 1)
}
func (m *MockProductService) Create(ctx context.Context, input services.ProductInput) (*models.Product, *services.ServiceError) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, svcErrArg(args, 1)
	}
	return args.Get(0).(*models.Product), svcErrArg(args, 1)
}
func (m *MockProductService) Update(ctx context.Context, id uint, input services.ProductInput) *services.ServiceError {
	args := m.Called(ctx, id, input)
	return svcErrArg(args, 0)
}
func (m *MockProductService) Delete(ctx context.Context, id uint) *services.ServiceError {
	args := m.Called(ctx, id)
	return svcErrArg(args, 0)
}
func (m *MockProductService) SetImage(ctx context.Context, id uint, filename string) *services.ServiceError {
	args := m.Called(ctx, id, filename)
	return svcErrArg(args, 0)
}

func rowsArg(args mock.Arguments, i int) []models.ProductRow {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]models.ProductRow)
}

func rowArg(args mock.Arguments, i int) *models.ProductRow {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*models.ProductRow)
}

func svcErrArg(args mock.Arguments, i int) *services.ServiceError {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*services.ServiceError)
}

func sampleRows() []models.ProductRow {
	category := "Skincare"
	return []models.ProductRow{
		{
			Product:      models.Product{ID: 1, Name: "Serum", Slug: "serum", Price: 19.99, IsActive: true},
			CategoryName: &category,
		},
		{
			Product: models.Product{ID: 2, Name: "Lip Balm", Slug: "lip-balm", Price: 4.50, IsActive: true},
		},
	}
}

// --- Tests ---

func TestGetProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200 with records envelope", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewProductController(mockService, NewCacheManager(nil))

		mockService.On("List", mock.Anything, mock.MatchedBy(func(p services.ListParams) bool {
			return p.Limit == 10 && p.Offset == 0 && p.Search == "" && p.CategoryID == 0
		})).Return(sampleRows(), nil).Once()

		router := gin.New()
		router.GET("/api/products/read", controller.GetProducts)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/read", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Records []map[string]interface{} `json:"records"`
			Total   int                      `json:"total"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Total)
		require.Len(t, body.Records, 2)
		assert.Equal(t, "Serum", body.Records[0]["name"])
		mockService.AssertExpectations(t)
	})

	t.Run("Empty - 404", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewProductController(mockService, NewCacheManager(nil))

		mockService.On("List", mock.Anything, mock.Anything).
			Return([]models.ProductRow{}, nil).Once()

		router := gin.New()
		router.GET("/api/products/read", controller.GetProducts)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/read", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "No products found.")
	})

	t.Run("Search keeps the default limit and drops the offset", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewProductController(mockService, NewCacheManager(nil))

		mockService.On("List", mock.Anything, mock.MatchedBy(func(p services.ListParams) bool {
			return p.Search == "serum" && p.Limit == 10 && p.Offset == 0
		})).Return(sampleRows()[:1], nil).Once()

		router := gin.New()
		router.GET("/api/products/read", controller.GetProducts)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/read?search=serum&offset=5", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Category filter is forwarded", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewProductController(mockService, NewCacheManager(nil))

		mockService.On("List", mock.Anything, mock.MatchedBy(func(p services.ListParams) bool {
			return p.CategoryID == 3
		})).Return(sampleRows(), nil).Once()

		router := gin.New()
		router.GET("/api/products/read", controller.GetProducts)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/read?category_id=3", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewProductController(mockService, NewCacheManager(nil))

		row := sampleRows()[0]
		mockService.On("GetOne", mock.Anything, uint(1)).Return(&row, nil).Once()

		router := gin.New()
		router.GET("/api/products/read_one", controller.GetProduct)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/read_one?id=1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Serum")
	})

	t.Run("Missing id - 400", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewProductController(mockService, NewCacheManager(nil))

		router := gin.New()
		router.GET("/api/products/read_one", controller.GetProduct)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/read_one", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "GetOne", mock.Anything, mock.Anything)
	})

	t.Run("Not found - 404", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewProductController(mockService, NewCacheManager(nil))

		mockService.On("GetOne", mock.Anything, uint(99)).
			Return(nil, &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}).Once()

		router := gin.New()
		router.GET("/api/products/read_one", controller.GetProduct)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/read_one?id=99", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestAdminCreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 201", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewAdminProductController(mockService, NewCacheManager(nil))

		created := &models.Product{ID: 12, Name: "Serum", SKU: "SKI-SERUM-20240115103045"}
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(in services.ProductInput) bool {
			return in.Name == "Serum" && in.Price == 19.99
		})).Return(created, nil).Once()

		router := gin.New()
		router.POST("/api/admin/products", controller.Create)

		payload := `{"name": "Serum", "price": 19.99}`
		req, _ := http.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Product created successfully")
		assert.Contains(t, recorder.Body.String(), `"product_id":12`)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing name - 400", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewAdminProductController(mockService, NewCacheManager(nil))

		router := gin.New()
		router.POST("/api/admin/products", controller.Create)

		payload := `{"price": 19.99}`
		req, _ := http.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Product name and price are required")
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAdminDeleteProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewAdminProductController(mockService, NewCacheManager(nil))

		mockService.On("Delete", mock.Anything, uint(12)).Return(nil).Once()

		router := gin.New()
		router.DELETE("/api/admin/products", controller.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/products?id=12", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Product deleted successfully")
	})

	t.Run("Missing id - 400", func(t *testing.T) {
		mockService := new(MockProductService)
		controller := NewAdminProductController(mockService, NewCacheManager(nil))

		router := gin.New()
		router.DELETE("/api/admin/products", controller.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/products", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
