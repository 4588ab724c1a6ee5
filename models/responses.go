package models

// APIResponse is the envelope shared by every JSON response of the API.
// Concrete responses embed it so that its fields are serialized at the top
// level next to the payload.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// ErrorReport carries machine-readable details of a failure.
	ErrorReport map[string]any `json:"errorReport,omitempty"`
}

// DashboardData is the static checkout configuration exposed to clients.
type DashboardData struct {
	Tax            float64 `json:"tax"`
	DeliveryCharge float64 `json:"deliveryCharge"`
}

// DashboardResponse is the body of GET /dashboardData.
type DashboardResponse struct {
	APIResponse
	DashboardData DashboardData `json:"dashboardData"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	APIResponse
	APIToken string  `json:"apiToken"`
	Account  Account `json:"account"`
}

// AccountResponse wraps a single account.
type AccountResponse struct {
	APIResponse
	Account Account `json:"account"`
}

// VendorResponse wraps a single vendor.
type VendorResponse struct {
	APIResponse
	Vendor Vendor `json:"vendor"`
}

// VendorsResponse wraps a vendor listing.
type VendorsResponse struct {
	APIResponse
	Vendors []Vendor `json:"vendors"`
}

// ProductResponse wraps a single product.
type ProductResponse struct {
	APIResponse
	Product Product `json:"product"`
}

// ProductsResponse wraps a product listing.
type ProductsResponse struct {
	APIResponse
	Products []Product `json:"products"`
}

// CartResponse is the body of every /cart endpoint.
type CartResponse struct {
	APIResponse
	CartData *CartData `json:"cartData"`
	Checkout Checkout  `json:"checkout"`
}
