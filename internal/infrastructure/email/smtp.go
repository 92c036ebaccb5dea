package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"parksexplorer/internal/domain/contact"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	ContactTo   string // mailbox that receives contact-form notifications
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// Configured reports whether a notification mailbox and SMTP host are set.
// Contact submissions are persisted either way; notification is optional.
func (s *SMTPEmailService) Configured() bool {
	return s.config.Host != "" && s.config.ContactTo != ""
}

func (s *SMTPEmailService) SendContactNotification(c *contact.Contact) error {
	subject := fmt.Sprintf("New contact message from %s", c.Name())

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Contact Form Submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		</body>
		</html>
	`, html.EscapeString(c.Name()), html.EscapeString(c.Email()), html.EscapeString(c.Message()))

	plainBody := fmt.Sprintf(`
New Contact Form Submission

Name: %s
Email: %s

Message:
%s
	`, c.Name(), c.Email(), c.Message())

	return s.sendEmail(s.config.ContactTo, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
