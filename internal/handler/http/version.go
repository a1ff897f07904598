package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
)

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Info(r.Context()), http.StatusOK)
}
