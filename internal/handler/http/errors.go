// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading requests. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not a JSON object
	// of the expected shape.
	ErrInvalidJSON = errors.New("Invalid JSON was passed")

	// ErrInvalidMultipartForm is returned when an account update cannot be
	// parsed as multipart/form-data.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrPictureTooLarge is returned when an uploaded picture exceeds
	// maxPictureSize.
	ErrPictureTooLarge = errors.New("picture is too large")
)
