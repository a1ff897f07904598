package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/wneessen/go-mail"
)

const smtpTimeout = 15 * time.Second

// NewMailer picks the SMTP mailer when cfg.Host is set and the log mailer
// otherwise.
func NewMailer(cfg config.Mail, log *logger.Logger) Mailer {
	if cfg.Host == "" {
		log.Warn().Msg("no SMTP host configured, outgoing mail will be logged")
		return NewLogMailer(log)
	}
	return NewSMTPMailer(cfg, log)
}

type smtpMailer struct {
	cfg    config.Mail
	logger *logger.Logger

	// send is swapped in tests.
	send func(ctx context.Context, msg *mail.Msg) error
}

// NewSMTPMailer constructs a [Mailer] that dials cfg.Host for every message.
// SMTP PLAIN authentication is used when a username is configured; TLS is
// opportunistic.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) Mailer {
	m := &smtpMailer{cfg: cfg, logger: log}
	m.send = m.dialAndSend
	return m
}

func (m *smtpMailer) Send(ctx context.Context, email models.Email) error {
	msg, err := buildMessage(m.cfg.From, email)
	if err != nil {
		return err
	}

	if err = m.send(ctx, msg); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*smtpMailer.Send").Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrMailNotSent, err)
	}

	return nil
}

func (m *smtpMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(smtpTimeout),
	}
	if m.cfg.Port > 0 {
		opts = append(opts, mail.WithPort(m.cfg.Port))
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("error creating smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

func buildMessage(from string, email models.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("%w: invalid sender: %w", ErrMailNotSent, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("%w: invalid recipient: %w", ErrMailNotSent, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Body)

	return msg, nil
}

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that writes every message to the log
// instead of sending it. Useful for local development.
func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

func (m *logMailer) Send(ctx context.Context, email models.Email) error {
	m.logger.Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Str("body", email.Body).
		Msg("outgoing mail")
	return nil
}
