package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type errorStatus struct {
	target error
	status int
	// expose sends the text of target to the client instead of the
	// generic status text.
	expose bool
}

// errorStatusMap is checked in order; the first match wins. Duplicates come
// before validation because a taken username is also a field error.
var errorStatusMap = []errorStatus{
	{target: service.ErrUsernameTaken, status: http.StatusConflict},
	{target: service.ErrEmailTaken, status: http.StatusConflict},
	{target: store.ErrUserAlreadyExists, status: http.StatusConflict, expose: true},

	{target: validators.ErrInvalidInput, status: http.StatusBadRequest},
	{target: ErrInvalidJSON, status: http.StatusBadRequest, expose: true},
	{target: ErrInvalidMultipartForm, status: http.StatusBadRequest, expose: true},
	{target: ErrPictureTooLarge, status: http.StatusRequestEntityTooLarge, expose: true},
	{target: service.ErrInvalidPage, status: http.StatusBadRequest, expose: true},
	{target: service.ErrProcessingPicture, status: http.StatusBadRequest, expose: true},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusBadRequest, expose: true},

	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, expose: true},
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized, expose: true},
	{target: service.ErrForbidden, status: http.StatusForbidden},

	{target: store.ErrPostNotFound, status: http.StatusNotFound},
	{target: store.ErrNoUserWasFound, status: http.StatusNotFound},

	{target: context.DeadlineExceeded, status: http.StatusGatewayTimeout},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			if e.expose {
				return e.status, e.target.Error()
			}
			if errors.Is(err, validators.ErrInvalidInput) {
				return e.status, app.MsgInvalidForm
			}
			return e.status, http.StatusText(e.status)
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError answers with the status mapped from err. Field errors travel
// in "fields"; nothing else about err reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: message,
		Fields:  validators.Fields(err),
	}, status)
}
