package repository

import (
	"context"

	"github.com/Rune905/Beauty-Bloom/models"

	"gorm.io/gorm"
)

// OrderStats aggregates order counts and revenue for the dashboard.
// Cancelled orders are excluded from both.
type OrderStats struct {
	TotalOrders  int64
	TotalRevenue float64
}

type OrderRepository interface {
	FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.Order, int64, error)
	FindAll(ctx context.Context) ([]models.OrderAdminRow, error)
	AdminDetails(ctx context.Context, id uint) (*models.OrderAdminRow, error)
	Items(ctx context.Context, orderID uint) ([]models.OrderItemRow, error)
	History(ctx context.Context, orderID uint) ([]models.OrderHistoryRow, error)
	UpdateStatus(ctx context.Context, orderID uint, status, note string, adminID uint) error
	Stats(ctx context.Context) (*OrderStats, error)
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("OrderItems").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// FindAll is the admin listing: every order with customer, shipping address
// and item aggregates.
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.OrderAdminRow, error) {
	var rows []models.OrderAdminRow
	err := r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.*, u.first_name, u.last_name, u.email,
			ua.address_line1, ua.city, ua.state, ua.postal_code, ua.country,
			COUNT(oi.id) AS total_items,
			SUM(oi.quantity * oi.price) AS items_amount`).
		Joins("LEFT JOIN users u ON o.user_id = u.id").
		Joins("LEFT JOIN user_addresses ua ON o.shipping_address_id = ua.id").
		Joins("LEFT JOIN order_items oi ON o.id = oi.order_id").
		Group("o.id, u.first_name, u.last_name, u.email, ua.address_line1, ua.city, ua.state, ua.postal_code, ua.country").
		Order("o.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormOrderRepository) AdminDetails(ctx context.Context, id uint) (*models.OrderAdminRow, error) {
	var row models.OrderAdminRow
	err := r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.*, u.first_name, u.last_name, u.email,
			ua.address_line1, ua.city, ua.state, ua.postal_code, ua.country`).
		Joins("LEFT JOIN users u ON o.user_id = u.id").
		Joins("LEFT JOIN user_addresses ua ON o.shipping_address_id = ua.id").
		Where("o.id = ?", id).
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

func (r *GormOrderRepository) Items(ctx context.Context, orderID uint) ([]models.OrderItemRow, error) {
	var rows []models.OrderItemRow
	err := r.db.WithContext(ctx).
		Table("order_items oi").
		Select("oi.*, p.name AS product_name, p.image AS product_image, p.slug AS product_slug").
		Joins("LEFT JOIN products p ON oi.product_id = p.id").
		Where("oi.order_id = ?", orderID).
		Scan(&rows).Error
	return rows, err
}

func (r *GormOrderRepository) History(ctx context.Context, orderID uint) ([]models.OrderHistoryRow, error) {
	var rows []models.OrderHistoryRow
	err := r.db.WithContext(ctx).
		Table("order_status_histories osh").
		Select("osh.*, a.username AS admin_username").
		Joins("LEFT JOIN admins a ON osh.updated_by = a.id").
		Where("osh.order_id = ?", orderID).
		Order("osh.updated_at DESC").
		Scan(&rows).Error
	return rows, err
}

// UpdateStatus changes an order's status and appends the audit trail entry
// in a single transaction, so the history can never drift from the order.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, orderID uint, status, note string, adminID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		entry := models.OrderStatusHistory{
			OrderID:   orderID,
			Status:    status,
			Note:      note,
			UpdatedBy: adminID,
		}
		return tx.Create(&entry).Error
	})
}

func (r *GormOrderRepository) Stats(ctx context.Context) (*OrderStats, error) {
	var stats OrderStats
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Where("status != ?", models.OrderCancelled).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
