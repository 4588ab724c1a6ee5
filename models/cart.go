// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CartItem is a single product line in a cart.
type CartItem struct {
	ProductID      int64  `json:"productId"`
	Name           string `json:"name,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// CartData holds the items of a shopping cart. It is kept in the request
// route data, in the session of anonymous visitors and in the database for
// authenticated accounts.
type CartData struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewCartData returns an empty cart with a non-nil item list, so that it
// serializes as `"items": []` rather than null.
func NewCartData() *CartData {
	return &CartData{Items: []CartItem{}}
}

// Add merges item into the cart: quantities of an existing product line are
// summed, otherwise the item is appended.
func (c *CartData) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.Items[i].UnitPriceCents = item.UnitPriceCents
			if item.Name != "" {
				c.Items[i].Name = item.Name
			}
			c.UpdatedAt = time.Now()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now()
}

// Remove deletes the product line with productID. It reports whether a line
// was removed.
func (c *CartData) Remove(productID int64) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Clear removes all items.
func (c *CartData) Clear() {
	c.Items = []CartItem{}
	c.UpdatedAt = time.Now()
}

// IsEmpty reports whether the cart holds no items.
func (c *CartData) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// SubtotalCents is the sum of quantity*unit price over all lines.
func (c *CartData) SubtotalCents() int64 {
	if c == nil {
		return 0
	}
	var total int64
	for _, item := range c.Items {
		total += int64(item.Quantity) * item.UnitPriceCents
	}
	return total
}

// Checkout is the priced summary of a cart.
type Checkout struct {
	SubtotalCents       int64 `json:"subtotalCents"`
	TaxCents            int64 `json:"taxCents"`
	DeliveryChargeCents int64 `json:"deliveryChargeCents"`
	TotalCents          int64 `json:"totalCents"`
}
