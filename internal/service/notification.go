package service

import (
	"context"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Notifier delivers payment notifications. Delivery is best effort: the
// payment status transition is the source of truth and is never rolled back
// when a notification fails.
type Notifier interface {
	NotifyPaymentSuccess(ctx context.Context, recipientEmail, bookingID string) error
}

// EmailNotifier sends payment confirmations over SMTP.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailNotifier creates an EmailNotifier for the given SMTP account.
func NewEmailNotifier(host string, port int, username, password, from string) *EmailNotifier {
	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// NotifyPaymentSuccess emails the payer a payment confirmation.
func (n *EmailNotifier) NotifyPaymentSuccess(ctx context.Context, recipientEmail, bookingID string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipientEmail)
	m.SetHeader("Subject", "Payment Successful")
	m.SetBody("text/plain", fmt.Sprintf("Your payment for booking %s was successful.", bookingID))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send payment confirmation: %w", err)
	}

	return nil
}

// LogNotifier writes notifications to the process log. Used when SMTP is
// not configured.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyPaymentSuccess logs the notification instead of delivering it.
func (n *LogNotifier) NotifyPaymentSuccess(ctx context.Context, recipientEmail, bookingID string) error {
	log.Printf("[NOTIFICATION] PAYMENT_SUCCESS recipient=%s booking=%s", recipientEmail, bookingID)
	return nil
}

// Ensure concrete types implement Notifier.
var (
	_ Notifier = (*EmailNotifier)(nil)
	_ Notifier = (*LogNotifier)(nil)
)
