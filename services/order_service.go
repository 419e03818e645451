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

// OrderDetails bundles everything the admin order view needs: the order with
// customer and address, its items with product names, and the status audit
// trail.
type OrderDetails struct {
	Order   *models.OrderAdminRow    `json:"order"`
	Items   []models.OrderItemRow    `json:"items"`
	History []models.OrderHistoryRow `json:"status_history"`
}

type OrderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// UserOrders returns the paginated orders of one customer.
func (s *OrderService) UserOrders(ctx context.Context, userID uint, limit, offset int) ([]models.Order, int64, *ServiceError) {
	orders, total, err := s.orderRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch user orders", zap.Error(err), zap.Uint("user_id", userID))
		return nil, 0, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch orders"}
	}
	return orders, total, nil
}

// AdminList returns every order with customer, address and item aggregates.
func (s *OrderService) AdminList(ctx context.Context) ([]models.OrderAdminRow, *ServiceError) {
	rows, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch orders"}
	}
	return rows, nil
}

func (s *OrderService) AdminDetails(ctx context.Context, orderID uint) (*OrderDetails, *ServiceError) {
	order, err := s.orderRepo.AdminDetails(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
		}
		zap.L().Error("failed to fetch order", zap.Error(err), zap.Uint("order_id", orderID))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch order"}
	}

	items, err := s.orderRepo.Items(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to fetch order items", zap.Error(err), zap.Uint("order_id", orderID))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch order"}
	}

	history, err := s.orderRepo.History(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to fetch order history", zap.Error(err), zap.Uint("order_id", orderID))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch order"}
	}

	return &OrderDetails{Order: order, Items: items, History: history}, nil
}

// UpdateStatus validates the status, then atomically updates the order and
// appends to the audit trail.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status, note string, adminID uint) *ServiceError {
	if !models.ValidOrderStatus(status) {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order status"}
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status, note, adminID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
		}
		zap.L().Error("failed to update order status", zap.Error(err), zap.Uint("order_id", orderID))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update order status"}
	}
	return nil
}
