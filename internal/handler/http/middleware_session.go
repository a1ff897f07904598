package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// withSession resolves the session cookie of every request into a
// principal and stores it in the context. Requests without a valid session
// are anonymous.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal := h.services.SessionService.Current(ctx, h.sessions.token(r))
		if user, ok := models.UserOf(principal); ok {
			l := logger.FromContext(ctx).With().Int64("user_id", user.ID).Logger()
			ctx = l.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// requireUser rejects anonymous requests with 401.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := models.UserOf(h.sessions.current(r)); !ok {
			writeError(w, r, service.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// redirectAuthenticated sends logged-in users away from the login,
// registration and reset pages.
func (h *Handler) redirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := models.UserOf(h.sessions.current(r)); ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
