package models

import "time"

// Order statuses.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
	OrderRefunded   = "refunded"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

type Order struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	OrderNumber       string      `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	UserID            uint        `gorm:"not null;index" json:"user_id"`
	ShippingAddressID *uint       `json:"shipping_address_id"`
	Status            string      `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentMethod     string      `gorm:"size:50" json:"payment_method"`
	PaymentStatus     string      `gorm:"size:20;default:'pending'" json:"payment_status"`
	TotalAmount       float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	TaxAmount         float64     `gorm:"type:decimal(10,2);default:0" json:"tax_amount"`
	ShippingCost      float64     `gorm:"type:decimal(10,2);default:0" json:"shipping_cost"`
	CreatedAt         time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
	OrderItems        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
}

// OrderItem snapshots the unit price at purchase time. Rows are append-only
// once the order is placed.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// OrderAdminRow is the admin listing read model: an order joined with its
// customer and shipping address, plus item aggregates.
type OrderAdminRow struct {
	Order
	FirstName    *string  `json:"first_name"`
	LastName     *string  `json:"last_name"`
	Email        *string  `json:"email"`
	AddressLine1 *string  `json:"address_line1"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	PostalCode   *string  `json:"postal_code"`
	Country      *string  `json:"country"`
	TotalItems   int64    `json:"total_items"`
	ItemsAmount  *float64 `json:"items_amount"`
}

// OrderItemRow is an order item joined with its product's display fields.
type OrderItemRow struct {
	OrderItem
	ProductName  *string `json:"product_name"`
	ProductImage *string `json:"product_image"`
	ProductSlug  *string `json:"product_slug"`
}

// OrderHistoryRow is a status history entry joined with the acting admin's
// username.
type OrderHistoryRow struct {
	OrderStatusHistory
	AdminUsername *string `json:"admin_username"`
}

// OrderStatusHistory is the append-only audit trail of status changes.
type OrderStatusHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	Note      string    `gorm:"size:500" json:"note"`
	UpdatedBy uint      `gorm:"not null" json:"updated_by"`
	UpdatedAt time.Time `gorm:"autoCreateTime" json:"updated_at"`
}
