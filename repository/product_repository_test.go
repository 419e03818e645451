package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Rune905/Beauty-Bloom/database"
	"github.com/Rune905/Beauty-Bloom/models"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProductRepositoryTestSuite runs against a real PostgreSQL instance; set
// POSTGRES_HOST (or provide ../.env.test) to enable it.
type ProductRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo ProductRepository

	category models.Category
	brand    models.Brand
}

func (s *ProductRepositoryTestSuite) SetupSuite() {
	_ = godotenv.Load("../.env.test")

	if os.Getenv("POSTGRES_HOST") == "" {
		s.T().Skip("POSTGRES_HOST not set, skipping repository tests")
	}

	if err := database.Connect(); err != nil {
		s.T().Fatalf("Failed to connect to test database: %v", err)
	}

	s.db = database.DB
	if err := models.Migrate(s.db); err != nil {
		s.T().Fatalf("Failed to migrate schema: %v", err)
	}
}

// BeforeTest wraps each test in a transaction so the database stays clean.
func (s *ProductRepositoryTestSuite) BeforeTest(suiteName, testName string) {
	s.db = database.DB.Begin()
	s.repo = NewGormProductRepository(s.db)

	s.category = models.Category{Name: "Skincare", Slug: "skincare", IsActive: true}
	s.Require().NoError(s.db.Create(&s.category).Error)

	s.brand = models.Brand{Name: "Glow Labs", Slug: "glow-labs", IsActive: true}
	s.Require().NoError(s.db.Create(&s.brand).Error)
}

func (s *ProductRepositoryTestSuite) AfterTest(suiteName, testName string) {
	s.db.Rollback()
}

func (s *ProductRepositoryTestSuite) newProduct(name, sku string, active bool) *models.Product {
	return &models.Product{
		Name:          name,
		Slug:          name,
		SKU:           sku,
		CategoryID:    &s.category.ID,
		BrandID:       &s.brand.ID,
		Price:         19.99,
		StockQuantity: 10,
		IsActive:      active,
	}
}

func (s *ProductRepositoryTestSuite) TestCreateAndReadOne() {
	product := s.newProduct("serum", "SKI-SERUM-1", true)
	s.Require().NoError(s.repo.Create(context.Background(), product))
	s.Require().NotZero(product.ID)

	row, err := s.repo.ReadOne(context.Background(), product.ID)
	s.Require().NoError(err)
	s.Equal("serum", row.Name)
	s.Require().NotNil(row.CategoryName)
	s.Equal("Skincare", *row.CategoryName)
	s.Require().NotNil(row.BrandName)
	s.Equal("Glow Labs", *row.BrandName)
}

func (s *ProductRepositoryTestSuite) TestReadOneHidesInactive() {
	product := s.newProduct("hidden", "SKI-HIDDE-1", false)
	s.Require().NoError(s.repo.Create(context.Background(), product))

	_, err := s.repo.ReadOne(context.Background(), product.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	// The admin read has no is_active filter.
	row, err := s.repo.ReadOneByID(context.Background(), product.ID)
	s.Require().NoError(err)
	s.Equal("hidden", row.Name)
}

func (s *ProductRepositoryTestSuite) TestSearch() {
	s.Require().NoError(s.repo.Create(context.Background(), s.newProduct("vitamin c serum", "SKI-VITAM-1", true)))
	s.Require().NoError(s.repo.Create(context.Background(), s.newProduct("lip balm", "SKI-LIPBA-1", true)))

	rows, err := s.repo.Search(context.Background(), "serum", 10)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("vitamin c serum", rows[0].Name)

	// Matching is case-insensitive.
	rows, err = s.repo.Search(context.Background(), "SERUM", 10)
	s.Require().NoError(err)
	s.Len(rows, 1)
}

func (s *ProductRepositoryTestSuite) TestReadFeatured() {
	featured := s.newProduct("featured serum", "SKI-FEATU-1", true)
	featured.IsFeatured = true
	s.Require().NoError(s.repo.Create(context.Background(), featured))

	hiddenFeatured := s.newProduct("hidden featured", "SKI-HIDFE-1", false)
	hiddenFeatured.IsFeatured = true
	s.Require().NoError(s.repo.Create(context.Background(), hiddenFeatured))

	s.Require().NoError(s.repo.Create(context.Background(), s.newProduct("plain", "SKI-PLAIN-1", true)))

	rows, err := s.repo.ReadFeatured(context.Background(), 10)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("featured serum", rows[0].Name)
	s.True(rows[0].IsFeatured)
	s.True(rows[0].IsActive)
}

func (s *ProductRepositoryTestSuite) TestReadHotDeals() {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	running := s.newProduct("running deal", "SKI-RUNNI-1", true)
	running.IsHotDeal = true
	running.HotDealEndDate = &future
	s.Require().NoError(s.repo.Create(context.Background(), running))

	openEnded := s.newProduct("open ended deal", "SKI-OPEND-1", true)
	openEnded.IsHotDeal = true
	s.Require().NoError(s.repo.Create(context.Background(), openEnded))

	expired := s.newProduct("expired deal", "SKI-EXPIR-1", true)
	expired.IsHotDeal = true
	expired.HotDealEndDate = &past
	s.Require().NoError(s.repo.Create(context.Background(), expired))

	inactive := s.newProduct("inactive deal", "SKI-INACT-1", false)
	inactive.IsHotDeal = true
	inactive.HotDealEndDate = &future
	s.Require().NoError(s.repo.Create(context.Background(), inactive))

	rows, err := s.repo.ReadHotDeals(context.Background(), 10)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	names := []string{rows[0].Name, rows[1].Name}
	s.Contains(names, "running deal")
	s.Contains(names, "open ended deal")
	for _, row := range rows {
		s.True(row.IsHotDeal)
		s.True(row.IsActive)
	}
}

func (s *ProductRepositoryTestSuite) TestDelete() {
	product := s.newProduct("doomed", "SKI-DOOME-1", true)
	s.Require().NoError(s.repo.Create(context.Background(), product))

	rows, err := s.repo.Delete(context.Background(), product.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), rows)

	rows, err = s.repo.Delete(context.Background(), product.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), rows)
}

func (s *ProductRepositoryTestSuite) TestUpdateImage() {
	product := s.newProduct("pictured", "SKI-PICTU-1", true)
	s.Require().NoError(s.repo.Create(context.Background(), product))

	rows, err := s.repo.UpdateImage(context.Background(), product.ID, "product_1_ab.jpg")
	s.Require().NoError(err)
	s.Equal(int64(1), rows)

	row, err := s.repo.ReadOne(context.Background(), product.ID)
	s.Require().NoError(err)
	s.Equal("product_1_ab.jpg", row.Image)

	rows, err = s.repo.UpdateImage(context.Background(), product.ID+1000, "product_1_ab.jpg")
	s.Require().NoError(err)
	s.Equal(int64(0), rows)
}

func (s *ProductRepositoryTestSuite) TestCountByCategory() {
	s.Require().NoError(s.repo.Create(context.Background(), s.newProduct("one", "SKI-ONE-1", true)))
	s.Require().NoError(s.repo.Create(context.Background(), s.newProduct("two", "SKI-TWO-1", true)))

	count, err := s.repo.CountByCategory(context.Background(), s.category.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func TestProductRepository(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}
