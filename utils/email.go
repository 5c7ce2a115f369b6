package utils

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/mwhitfield/wedding-website-backend/config"
)

// ======================
// Low-level sendEmail with STARTTLS
// ======================
func sendEmail(cfg *config.Config, to, subject, body string) error {
	if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		fmt.Println("⚠️ SMTP not configured. Email not sent.")
		return nil
	}

	fromEmail := cfg.SMTPFromEmail
	if fromEmail == "" {
		fromEmail = cfg.SMTPUsername
	}

	addr := fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort)

	// Dial plain first, then upgrade with StartTLS
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         cfg.SMTPHost,
	}

	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := client.Mail(fromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	from := fromEmail
	if cfg.SMTPFromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SMTPFromName, fromEmail)
	}

	msg := []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n%s", from, to, subject, body))

	if _, err = w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	if err := client.Quit(); err != nil {
		fmt.Printf("⚠️ QUIT command error (non-critical): %v\n", err)
	}

	return nil
}

// ======================
// RSVP Emails
// ======================

// SendRSVPConfirmation thanks the guest for submitting. Best-effort; errors
// are logged, never surfaced to the submitter.
func SendRSVPConfirmation(cfg *config.Config, name, email string, attending bool) {
	couple := cfg.CoupleNames
	if couple == "" {
		couple = "the happy couple"
	}

	subject := "We received your RSVP!"
	var body string
	if attending {
		body = fmt.Sprintf(
			"Hello %s,\n\nThank you for your RSVP! We're so excited to celebrate with you at the wedding of %s on %s at %s.\n\nSee you there!",
			name, couple, cfg.WeddingDate, cfg.WeddingLocation,
		)
	} else {
		body = fmt.Sprintf(
			"Hello %s,\n\nThank you for letting us know. We're sorry you won't be able to join us for the wedding of %s.\n\nWe'll miss you!",
			name, couple,
		)
	}

	if err := sendEmail(cfg, email, subject, body); err != nil {
		fmt.Printf("❌ Failed to send RSVP confirmation to %s: %v\n", email, err)
	}
}

// SendRSVPAdminNotification tells every allow-listed admin about a new submission.
func SendRSVPAdminNotification(cfg *config.Config, name, email string, attending bool) {
	subject := fmt.Sprintf("New RSVP from %s", name)
	body := fmt.Sprintf("A new RSVP was submitted.\n\nName: %s\nEmail: %s\nAttending: %s\n\nReview it in the admin area.",
		name, email, map[bool]string{true: "Yes", false: "No"}[attending])

	for _, admin := range cfg.AdminAllowedEmails {
		if err := sendEmail(cfg, admin, subject, body); err != nil {
			fmt.Printf("❌ Failed to notify admin %s: %v\n", admin, err)
		}
	}
}
