package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-admin/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppBuildInfo(r.Context())

	utils.WriteJSON(w, buildInfo, http.StatusOK)
}
