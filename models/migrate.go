package models

import "gorm.io/gorm"

// Migrate runs auto migration for all storefront tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&UserAddress{},
		&Admin{},
		&Category{},
		&Brand{},
		&Product{},
		&Order{},
		&OrderItem{},
		&OrderStatusHistory{},
	)
}
