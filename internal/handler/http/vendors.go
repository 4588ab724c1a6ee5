package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

func (h *Handler) listVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.services.VendorService.ListVendors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if vendors == nil {
		vendors = []models.Vendor{}
	}

	writeSuccess(w, r, models.VendorsResponse{APIResponse: success(app.MsgVendorsListed), Vendors: vendors}, http.StatusOK)
}

func (h *Handler) getVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := pathID(r, "vendorID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	vendor, err := h.services.VendorService.GetVendor(r.Context(), vendorID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, models.VendorResponse{APIResponse: success(app.MsgVendorFound), Vendor: vendor}, http.StatusOK)
}

func (h *Handler) listVendorProducts(w http.ResponseWriter, r *http.Request) {
	vendorID, err := pathID(r, "vendorID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.VendorService.GetVendor(r.Context(), vendorID); err != nil {
		writeError(w, r, err)
		return
	}

	filter, err := productFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter.VendorID = vendorID

	h.writeProducts(w, r, filter)
}

// createVendor registers a vendor owned by the calling account.
func (h *Handler) createVendor(w http.ResponseWriter, r *http.Request) {
	payload, _ := utils.APITokenPayloadFromContext(r.Context())

	var vendor models.Vendor
	if err := decodeJSON(w, r, &vendor); err != nil {
		writeError(w, r, err)
		return
	}
	vendor.VendorID = 0
	vendor.OwnerAccountID = payload.AccountID

	created, err := h.services.VendorService.CreateVendor(r.Context(), vendor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, models.VendorResponse{APIResponse: success(app.MsgVendorCreated), Vendor: created}, http.StatusCreated)
}
