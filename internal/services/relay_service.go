package services

import (
	"context"
	"fmt"
	"html"
	"net/mail"
	"strings"
)

const (
	maxContactNameLen    = 200
	maxContactMessageLen = 2000
)

// Mailer sends a single email through the transactional provider.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// RelayServiceProvider defines the interface for the outbound email relay.
type RelayServiceProvider interface {
	SubmitFooterQuestion(ctx context.Context, email, question string) error
	SubmitContactForm(ctx context.Context, name, email, message string) error
}

// RelayService validates, sanitizes and relays contact messages to the
// configured admin address.
type RelayService struct {
	mailer     Mailer
	adminEmail string
}

// NewRelayService creates a new RelayService. A nil mailer or empty admin
// address leaves the relay unconfigured; submissions then fail with
// ErrNotConfigured.
func NewRelayService(mailer Mailer, adminEmail string) *RelayService {
	return &RelayService{mailer: mailer, adminEmail: adminEmail}
}

// SubmitFooterQuestion relays a question from the site footer.
func (s *RelayService) SubmitFooterQuestion(ctx context.Context, email, question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("question is required: %w", ErrInvalidInput)
	}
	email, err := normalizeOptionalEmail(email)
	if err != nil {
		return err
	}
	if err := s.checkConfigured(); err != nil {
		return err
	}

	body := "<p><strong>Footer question</strong></p>" +
		"<p>From: " + html.EscapeString(senderLabel(email)) + "</p>" +
		"<p>" + html.EscapeString(question) + "</p>"
	if err := s.mailer.Send(ctx, s.adminEmail, "New footer question", body); err != nil {
		return fmt.Errorf("relay failed: %v: %w", err, ErrUpstream)
	}
	return nil
}

// SubmitContactForm relays a contact page submission.
func (s *RelayService) SubmitContactForm(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" || message == "" {
		return fmt.Errorf("name and message are required: %w", ErrInvalidInput)
	}
	if len(name) > maxContactNameLen {
		return fmt.Errorf("name exceeds %d characters: %w", maxContactNameLen, ErrInvalidInput)
	}
	if len(message) > maxContactMessageLen {
		return fmt.Errorf("message exceeds %d characters: %w", maxContactMessageLen, ErrInvalidInput)
	}
	email, err := normalizeOptionalEmail(email)
	if err != nil {
		return err
	}
	if err := s.checkConfigured(); err != nil {
		return err
	}

	body := "<p><strong>Contact form</strong></p>" +
		"<p>Name: " + html.EscapeString(name) + "</p>" +
		"<p>From: " + html.EscapeString(senderLabel(email)) + "</p>" +
		"<p>" + html.EscapeString(message) + "</p>"
	if err := s.mailer.Send(ctx, s.adminEmail, "New contact form message", body); err != nil {
		return fmt.Errorf("relay failed: %v: %w", err, ErrUpstream)
	}
	return nil
}

func (s *RelayService) checkConfigured() error {
	if s.mailer == nil || s.adminEmail == "" {
		return fmt.Errorf("email relay: %w", ErrNotConfigured)
	}
	return nil
}

// normalizeOptionalEmail trims the address and, when present, checks its
// syntax.
func normalizeOptionalEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", fmt.Errorf("invalid email address: %w", ErrInvalidInput)
	}
	return addr.Address, nil
}

func senderLabel(email string) string {
	if email == "" {
		return "anonymous"
	}
	return email
}
