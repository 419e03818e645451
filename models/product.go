package models

import "time"

// Product is a catalog item. Image holds a bare filename under
// uploads/products/; URL construction is left to the client.
type Product struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Slug             string     `gorm:"size:255;not null;index" json:"slug"`
	Description      string     `gorm:"type:text" json:"description"`
	ShortDescription string     `gorm:"size:500" json:"short_description"`
	SKU              string     `gorm:"size:100;uniqueIndex" json:"sku"`
	CategoryID       *uint      `gorm:"index" json:"category_id"`
	BrandID          *uint      `gorm:"index" json:"brand_id"`
	Price            float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	SalePrice        *float64   `gorm:"type:decimal(10,2)" json:"sale_price"`
	StockQuantity    int        `gorm:"default:0" json:"stock_quantity"`
	IsFeatured       bool       `gorm:"default:false;index" json:"is_featured"`
	IsHotDeal        bool       `gorm:"default:false" json:"is_hot_deal"`
	HotDealEndDate   *time.Time `json:"hot_deal_end_date"`
	IsActive         bool       `gorm:"default:true;index" json:"is_active"`
	Image            string     `gorm:"size:255" json:"image"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProductRow is the flattened read model for catalog listings: a product
// joined with its category and brand names.
type ProductRow struct {
	Product
	CategoryName *string `json:"category_name"`
	BrandName    *string `json:"brand_name"`
}

// Record shapes a ProductRow the way list endpoints serialize it, with the
// single image expanded into an images array for client compatibility.
func (r *ProductRow) Record() map[string]interface{} {
	images := []string{}
	if r.Image != "" {
		images = []string{r.Image}
	}
	return map[string]interface{}{
		"id":                r.ID,
		"name":              r.Name,
		"slug":              r.Slug,
		"description":       r.Description,
		"short_description": r.ShortDescription,
		"sku":               r.SKU,
		"category_id":       r.CategoryID,
		"category_name":     r.CategoryName,
		"brand_id":          r.BrandID,
		"brand_name":        r.BrandName,
		"price":             r.Price,
		"sale_price":        r.SalePrice,
		"stock_quantity":    r.StockQuantity,
		"is_featured":       r.IsFeatured,
		"is_hot_deal":       r.IsHotDeal,
		"is_active":         r.IsActive,
		"image":             r.Image,
		"created_at":        r.CreatedAt,
		"updated_at":        r.UpdatedAt,
		"images":            images,
	}
}
