package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

// resetRequest answers the same way whether or not the email is known.
func (h *Handler) resetRequest(w http.ResponseWriter, r *http.Request) {
	var form models.ResetRequest
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.PasswordResetService.RequestReset(r.Context(), form); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteMessage(w, app.MsgResetRequested, http.StatusOK)
}

func (h *Handler) resetToken(w http.ResponseWriter, r *http.Request) {
	var form models.PasswordRequest
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.services.PasswordResetService.ResetPassword(r.Context(), chi.URLParam(r, "token"), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteMessage(w, app.MsgPasswordReset, http.StatusOK)
}
