package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var form models.RegisterRequest
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user registered")
	utils.WriteMessage(w, app.MsgAccountCreated, http.StatusCreated)
}

// login starts a session. The optional "next" query parameter is echoed
// back as the redirect target only when it stays on this site.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var form models.LoginRequest
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.VerifyCredentials(ctx, form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.SessionService.Issue(ctx, user, form.Remember)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.sessions.login(w, session)

	log.Debug().Int64("id", user.ID).Bool("remember", form.Remember).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Message:  app.MsgLoggedIn,
		User:     user,
		Redirect: utils.SafeRedirect(r.URL.Query().Get("next"), "/"),
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.logout(w)
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}
