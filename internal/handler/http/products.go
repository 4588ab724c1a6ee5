package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

func productFilter(r *http.Request) (models.ProductFilter, error) {
	var (
		filter models.ProductFilter
		err    error
	)

	if raw := r.URL.Query().Get("vendorId"); raw != "" {
		filter.VendorID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || filter.VendorID <= 0 {
			return filter, fmt.Errorf("%w: vendorId=%q", ErrInvalidQueryParam, raw)
		}
	}
	if filter.Limit, err = queryUint(r, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryUint(r, "offset"); err != nil {
		return filter, err
	}

	return filter, nil
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := productFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeProducts(w, r, filter)
}

func (h *Handler) writeProducts(w http.ResponseWriter, r *http.Request, filter models.ProductFilter) {
	products, err := h.services.ProductService.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeSuccess(w, r, models.ProductsResponse{APIResponse: success(app.MsgProductsListed), Products: products}, http.StatusOK)
}

// loadSelectedProduct puts the product addressed by {productID} into the
// route data.
func (h *Handler) loadSelectedProduct(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID, err := pathID(r, "productID")
		if err != nil {
			writeError(w, r, err)
			return
		}

		product, err := h.services.ProductService.GetProduct(r.Context(), productID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		routeData(r).Products.SelectedProduct = &product
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product := routeData(r).Products.SelectedProduct
	if product == nil {
		writeError(w, r, ErrRouteDataMissing)
		return
	}

	writeSuccess(w, r, models.ProductResponse{APIResponse: success(app.MsgProductFound), Product: *product}, http.StatusOK)
}

// createProduct accepts a JSON body or, when the multipart preprocessor
// parsed the request, multipart form fields. Vendors may only add products
// to vendors they own.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, _ := utils.APITokenPayloadFromContext(ctx)

	product, err := h.readProduct(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !payload.HasRole(models.RoleAdmin) {
		vendor, err := h.services.VendorService.GetVendor(ctx, product.VendorID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if vendor.OwnerAccountID != payload.AccountID {
			logger.FromRequest(r).Debug().
				Int64("account_id", payload.AccountID).
				Int64("vendor_id", vendor.VendorID).
				Msg("product creation for foreign vendor denied")
			writeError(w, r, service.ErrAccessDenied)
			return
		}
	}

	created, err := h.services.ProductService.CreateProduct(ctx, product)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, models.ProductResponse{APIResponse: success(app.MsgProductCreated), Product: created}, http.StatusCreated)
}

func (h *Handler) readProduct(w http.ResponseWriter, r *http.Request) (models.Product, error) {
	var product models.Product

	if r.MultipartForm == nil {
		if err := decodeJSON(w, r, &product); err != nil {
			return models.Product{}, err
		}
		product.ProductID = 0
		return product, nil
	}

	var err error
	if product.VendorID, err = formInt(r, "vendorId"); err != nil {
		return models.Product{}, err
	}
	if product.PriceCents, err = formInt(r, "priceCents"); err != nil {
		return models.Product{}, err
	}
	stock, err := formInt(r, "stock")
	if err != nil {
		return models.Product{}, err
	}
	product.Stock = int(stock)
	product.Name = r.FormValue("name")
	product.Description = r.FormValue("description")

	return product, nil
}

func formInt(r *http.Request, name string) (int64, error) {
	raw := r.FormValue(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: form field %s=%q", service.ErrInvalidDataProvided, name, raw)
	}
	return v, nil
}
