package services

import (
	"fmt"
	"net/smtp"

	"hrm/config"
	"hrm/internal/logger"
)

// Mailer sends best-effort plain-text notifications. Every send failure is
// logged and returned but callers on lifecycle paths never let it gate the
// primary operation. With no SMTP host configured, sends are no-ops.
type Mailer struct {
	config config.Config
	log    logger.Logger
}

func NewMailer(config config.Config) *Mailer {
	return &Mailer{
		config: config,
		log:    logger.New("Mailer"),
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	log := m.log.Function("Send")

	if m.config.SMTPHost == "" {
		log.Info("SMTP not configured, skipping send", "to", to, "subject", subject)
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.config.SMTPHost, m.config.SMTPPort)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.config.SMTPFrom, to, subject, body)

	if err := smtp.SendMail(addr, nil, m.config.SMTPFrom, []string{to}, []byte(msg)); err != nil {
		return log.Err("failed to send mail", err, "to", to, "subject", subject)
	}

	return nil
}

func (m *Mailer) SendRejection(to, firstName string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nThank you for your interest in Rise and Shine. "+
			"After careful review we will not be moving forward with your application at this time.\n",
		firstName,
	)
	return m.Send(to, "Your application with Rise and Shine", body)
}

func (m *Mailer) SendInterviewReminder(to, firstName, when string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder that your interview is scheduled for %s.\n",
		firstName, when,
	)
	return m.Send(to, "Interview reminder", body)
}
