package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

// home lists all posts, newest first.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.PostService.ListAll(r.Context(), parsePage(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.PostService.ListByAuthor(r.Context(), chi.URLParam(r, "username"), parsePage(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) newPost(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	var form models.PostRequest
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Create(r.Context(), user, form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", postLocation(post.ID))
	utils.WriteJSON(w, models.PostResponse{Message: app.MsgPostCreated, Post: post}, http.StatusCreated)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Get(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.PostResponse{Post: post}, http.StatusOK)
}

// editPost returns the current values of a post to its author.
func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	postID, err := parsePostID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetForEdit(r.Context(), postID, user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.PostResponse{Post: post}, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	postID, err := parsePostID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var form models.PostRequest
	if err = decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Update(r.Context(), postID, user, form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.PostResponse{Message: app.MsgPostUpdated, Post: post}, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	postID, err := parsePostID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.Delete(r.Context(), postID, user); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteMessage(w, app.MsgPostDeleted, http.StatusOK)
}

func postLocation(id int64) string {
	return "/post/" + strconv.FormatInt(id, 10)
}
