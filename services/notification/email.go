package notification

import (
	"context"
	"fmt"

	"tidify/models"
	"tidify/utils"

	"gopkg.in/gomail.v2"
)

// SendBookingConfirmation emails the customer their booking details. The
// send is synchronous; callers decide whether a failure matters.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, user models.User, worker models.Worker, booking models.Booking) error {
	if !s.configured() {
		return ErrDisabled
	}
	if user.Email == "" {
		return fmt.Errorf("user %s has no email address", user.Username)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", buildSubject(worker, booking))
	m.SetBody("text/plain", buildBody(user, worker, booking))

	dialer := gomail.NewDialer(s.host, s.port, s.username, s.password)
	// Implicit TLS only on the SMTPS port; STARTTLS is negotiated otherwise.
	dialer.SSL = s.useTLS && s.port == 465

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	utils.GetLogger().Sugar().Infof("Sent booking confirmation for %s to %s", booking.ID, user.Email)
	return nil
}

func buildSubject(worker models.Worker, booking models.Booking) string {
	return fmt.Sprintf("Booking Confirmed: %s on %s %s-%s",
		worker.DisplayName(), booking.Date, booking.Start, booking.End)
}

func buildBody(user models.User, worker models.Worker, booking models.Booking) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your booking is confirmed.\n\n"+
			"Worker: %s\n"+
			"Date:   %s\n"+
			"Time:   %s - %s\n"+
			"City:   %s\n\n"+
			"Booking ID: %s\n\n"+
			"Thanks for using Maid Services!",
		user.Username,
		worker.DisplayName(),
		booking.Date,
		booking.Start, booking.End,
		worker.City,
		booking.ID,
	)
}
