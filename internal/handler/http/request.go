package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/go-chi/chi/v5"
)

// maxJSONBodySize bounds every JSON form.
const maxJSONBodySize = 1 << 20

// decodeJSON reads a JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// parsePage reads the "page" query parameter. A missing or non-numeric
// value means the first page; range checks are left to the services.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// parsePostID reads the numeric {postID} path parameter. Anything else
// names no post.
func parsePostID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		return 0, store.ErrPostNotFound
	}
	return id, nil
}
