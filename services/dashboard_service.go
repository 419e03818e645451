package services

import (
	"context"
	"net/http"

	"github.com/Rune905/Beauty-Bloom/repository"

	"go.uber.org/zap"
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type DashboardService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewDashboardService(userRepo repository.UserRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *DashboardService {
	return &DashboardService{userRepo: userRepo, productRepo: productRepo, orderRepo: orderRepo}
}

// Stats counts customers, active products, and non-cancelled orders with
// their summed revenue.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, *ServiceError) {
	internal := &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error fetching dashboard statistics"}

	users, err := s.userRepo.CountCustomers(ctx)
	if err != nil {
		zap.L().Error("failed to count customers", zap.Error(err))
		return nil, internal
	}

	products, err := s.productRepo.CountActive(ctx)
	if err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return nil, internal
	}

	orders, err := s.orderRepo.Stats(ctx)
	if err != nil {
		zap.L().Error("failed to aggregate orders", zap.Error(err))
		return nil, internal
	}

	return &DashboardStats{
		TotalUsers:    users,
		TotalProducts: products,
		TotalOrders:   orders.TotalOrders,
		TotalRevenue:  orders.TotalRevenue,
	}, nil
}
