package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/campushr/letters-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending console emails
type EmailService interface {
	SendUserCredentials(to, fullName, username, password string, letterURL *string) error
	SendLetterNotification(to, fullName, letterType, letterURL string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type credentialsEmailData struct {
	FullName  string
	Username  string
	Password  string
	LetterURL string
}

// SendUserCredentials mails a new account its login credentials, with an
// optional link to a generated welcome letter.
func (s *emailServiceImpl) SendUserCredentials(to, fullName, username, password string, letterURL *string) error {
	data := credentialsEmailData{
		FullName: fullName,
		Username: username,
		Password: password,
	}
	if letterURL != nil {
		data.LetterURL = *letterURL
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "credentials.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your HR Console Account", body.String())
}

type letterNotificationData struct {
	FullName   string
	LetterName string
	LetterURL  string
}

// SendLetterNotification mails the subject of a generated letter a link to
// the rendered document.
func (s *emailServiceImpl) SendLetterNotification(to, fullName, letterType, letterURL string) error {
	data := letterNotificationData{
		FullName:   fullName,
		LetterName: letterDisplayName(letterType),
		LetterURL:  letterURL,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "letter_notification.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your %s is ready", data.LetterName), body.String())
}

func letterDisplayName(letterType string) string {
	switch letterType {
	case "offer_letter":
		return "Offer Letter"
	case "appointment_letter":
		return "Appointment Letter"
	case "confirmation_letter":
		return "Confirmation Letter"
	case "relieving_letter":
		return "Relieving Letter"
	default:
		return "Letter"
	}
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}
		lastErr = err
		slog.Warn("Email send failed", "to", to, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
