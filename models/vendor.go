package models

import "time"

// Vendor is a seller that owns a catalog of products.
type Vendor struct {
	VendorID       int64     `json:"vendorId"`
	OwnerAccountID int64     `json:"ownerAccountId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Vendor model.
func (v Vendor) TableName() string {
	return "vendors"
}
