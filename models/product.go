package models

import "time"

// Product is the catalogue entry an order line item points at.
type Product struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)"`
	ProductName string    `gorm:"type:varchar(255); not null"`
	Image       *string   `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
