// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
)

// notFound answers unknown paths with a JSON 404.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// methodNotAllowed answers a known path requested with an unsupported
// method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
