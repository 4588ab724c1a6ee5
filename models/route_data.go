package models

// RouteData is the per-request scratch state shared by middlewares and
// handlers of the API router. A fresh value is created for every request
// before any other route-scoped middleware runs.
type RouteData struct {
	Accounts AccountsRouteData
	Products ProductsRouteData

	// CartData is never nil once the route data is initialized.
	CartData *CartData
}

// AccountsRouteData holds account-related route state.
type AccountsRouteData struct {
	// ProvidedAccount is the account addressed by the request path, if any.
	ProvidedAccount *Account
}

// ProductsRouteData holds product-related route state.
type ProductsRouteData struct {
	// SelectedProduct is the product addressed by the request path, if any.
	SelectedProduct *Product
}

// NewRouteData returns route data with empty account and product slots and
// an empty cart.
func NewRouteData() *RouteData {
	return &RouteData{
		Accounts: AccountsRouteData{ProvidedAccount: nil},
		Products: ProductsRouteData{SelectedProduct: nil},
		CartData: NewCartData(),
	}
}
