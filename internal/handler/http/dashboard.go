package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/models"
)

func (h *Handler) getDashboardData(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, models.DashboardResponse{
		APIResponse: models.APIResponse{
			Success: true,
			Message: app.MsgDashboardDataCollected,
		},
		DashboardData: h.services.DashboardService.GetDashboardData(r.Context()),
	}, http.StatusOK)
}
