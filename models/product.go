package models

import "time"

// Product is a catalog entry sold by a vendor.
// Prices are stored in minor currency units (cents) to avoid float rounding.
type Product struct {
	ProductID   int64     `json:"productId"`
	VendorID    int64     `json:"vendorId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	VendorID int64
	Limit    uint64
	Offset   uint64
}
