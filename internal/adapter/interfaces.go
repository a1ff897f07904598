// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the blog server.
//
// The primary abstraction is [Mailer], which decouples the service layer
// from the mail transport. The package ships an SMTP implementation
// ([NewSMTPMailer]) and a logging implementation ([NewLogMailer]) used when
// no SMTP host is configured.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers plain-text email.
type Mailer interface {
	// Send delivers email synchronously. It returns an error wrapping
	// [ErrMailNotSent] when the message could not be handed to the transport.
	Send(ctx context.Context, email models.Email) error
}
