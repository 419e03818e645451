package controllers

import (
	"context"
	"mime/multipart"

	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/services"
)

// ProductAPI is the product service surface the controllers depend on.
type ProductAPI interface {
	List(ctx context.Context, params services.ListParams) ([]models.ProductRow, *services.ServiceError)
	Featured(ctx context.Context, limit int) ([]models.ProductRow, *services.ServiceError)
	HotDeals(ctx context.Context, limit int) ([]models.ProductRow, *services.ServiceError)
	GetOne(ctx context.Context, id uint) (*models.ProductRow, *services.ServiceError)
	GetOneAdmin(ctx context.Context, id uint) (*models.ProductRow, *services.ServiceError)
	ListAll(ctx context.Context) ([]models.ProductRow, *services.ServiceError)
	Create(ctx context.Context, input services.ProductInput) (*models.Product, *services.ServiceError)
	Update(ctx context.Context, id uint, input services.ProductInput) *services.ServiceError
	Delete(ctx context.Context, id uint) *services.ServiceError
	SetImage(ctx context.Context, id uint, filename string) *services.ServiceError
}

type AuthAPI interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.User, *services.ServiceError)
	Login(ctx context.Context, email, password string) (*models.User, string, *services.ServiceError)
	AdminLogin(ctx context.Context, username, password string) (*models.Admin, string, *services.ServiceError)
	Profile(ctx context.Context, userID uint) (*models.User, *services.ServiceError)
	UpdateProfile(ctx context.Context, userID uint, input services.ProfileInput) (*models.User, *services.ServiceError)
}

type OrderAPI interface {
	UserOrders(ctx context.Context, userID uint, limit, offset int) ([]models.Order, int64, *services.ServiceError)
	AdminList(ctx context.Context) ([]models.OrderAdminRow, *services.ServiceError)
	AdminDetails(ctx context.Context, orderID uint) (*services.OrderDetails, *services.ServiceError)
	UpdateStatus(ctx context.Context, orderID uint, status, note string, adminID uint) *services.ServiceError
}

type CategoryAPI interface {
	List(ctx context.Context, parentID *uint) ([]models.Category, *services.ServiceError)
	ListAll(ctx context.Context) ([]models.Category, *services.ServiceError)
	GetOne(ctx context.Context, id uint) (*models.Category, *services.ServiceError)
	Create(ctx context.Context, input services.CategoryInput) (*models.Category, *services.ServiceError)
	Update(ctx context.Context, id uint, input services.CategoryInput) *services.ServiceError
	Delete(ctx context.Context, id uint) *services.ServiceError
}

type BrandAPI interface {
	List(ctx context.Context) ([]models.Brand, *services.ServiceError)
	ListAll(ctx context.Context) ([]models.Brand, *services.ServiceError)
	Search(ctx context.Context, term string) ([]models.Brand, *services.ServiceError)
	Create(ctx context.Context, input services.BrandInput) (*models.Brand, *services.ServiceError)
	Update(ctx context.Context, id uint, input services.BrandInput) *services.ServiceError
	Delete(ctx context.Context, id uint) *services.ServiceError
}

type DashboardAPI interface {
	Stats(ctx context.Context) (*services.DashboardStats, *services.ServiceError)
}

type UploadAPI interface {
	Process(header *multipart.FileHeader) (*services.UploadResult, *services.ServiceError)
}
