package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

const (
	// maxPictureSize bounds an uploaded avatar before thumbnailing.
	maxPictureSize = 8 << 20
)

func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	utils.WriteJSON(w, models.AccountResponse{
		Account: h.services.AccountService.Account(r.Context(), user),
	}, http.StatusOK)
}

// updateAccount accepts multipart/form-data with "username", "email" and an
// optional "picture" file. A JSON body without a picture is accepted too.
func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	update, err := h.readProfileUpdate(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	update.UserID = user.ID

	account, err := h.services.AccountService.UpdateProfile(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AccountResponse{Message: app.MsgAccountUpdated, Account: account}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	var form models.PasswordRequest
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), user.ID, form); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteMessage(w, app.MsgPasswordChanged, http.StatusOK)
}

func (h *Handler) readProfileUpdate(w http.ResponseWriter, r *http.Request) (models.ProfileUpdate, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var form struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		}
		if err := decodeJSON(w, r, &form); err != nil {
			return models.ProfileUpdate{}, err
		}
		return models.ProfileUpdate{Username: form.Username, Email: form.Email}, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPictureSize+maxJSONBodySize)
	if err := r.ParseMultipartForm(maxJSONBodySize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.ProfileUpdate{}, ErrPictureTooLarge
		}
		return models.ProfileUpdate{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}

	update := models.ProfileUpdate{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
	}

	file, header, err := r.FormFile("picture")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return update, nil
	case err != nil:
		return models.ProfileUpdate{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxPictureSize+1))
	if err != nil {
		return models.ProfileUpdate{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	if len(content) > maxPictureSize {
		return models.ProfileUpdate{}, ErrPictureTooLarge
	}

	update.Picture = &models.Upload{Filename: header.Filename, Content: content}
	return update, nil
}
