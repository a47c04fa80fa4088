package notification

import (
	"context"
	"errors"

	"tidify/config"
	"tidify/models"
)

// ErrDisabled is returned when email notifications are not configured.
// Callers treat it like any other send failure: log and move on.
var ErrDisabled = errors.New("email notifications disabled: SMTP not configured")

// NotificationService defines methods for customer-facing notifications.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, user models.User, worker models.Worker, booking models.Booking) error
}

// DefaultNotificationService is the production implementation, delivering
// over SMTP.
type DefaultNotificationService struct {
	host        string
	port        int
	username    string
	password    string
	senderName  string
	senderEmail string
	useTLS      bool
}

// NewDefaultNotificationService builds the SMTP notifier from application
// config. Missing SMTP settings are not an error at construction time; the
// service reports ErrDisabled on send instead, since notifications are
// optional.
func NewDefaultNotificationService(cfg *config.Config) *DefaultNotificationService {
	senderEmail := cfg.SMTPSenderEmail
	if senderEmail == "" {
		senderEmail = cfg.SMTPUsername
	}
	senderName := cfg.SMTPSenderName
	if senderName == "" {
		senderName = "Maid Services"
	}
	return &DefaultNotificationService{
		host:        cfg.SMTPHost,
		port:        cfg.SMTPPort,
		username:    cfg.SMTPUsername,
		password:    cfg.SMTPPassword,
		senderName:  senderName,
		senderEmail: senderEmail,
		useTLS:      cfg.SMTPUseTLS,
	}
}

func (s *DefaultNotificationService) configured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.senderEmail != ""
}
