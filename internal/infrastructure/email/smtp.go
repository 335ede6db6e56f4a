package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPEmailService sends account and ticket notifications over SMTP.
type SMTPEmailService struct {
	config SMTPConfig
	send   func(m *gomail.Message) error
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}
}

func (s *SMTPEmailService) SendWelcomeEmail(to, name string) error {
	subject := "Welcome to the shop"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your account is ready. You can now log in and open service tickets for your vehicles.</p>
		</body>
		</html>
	`, html.EscapeString(name))

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your account is ready. You can now log in and open service tickets for your vehicles.
	`, name)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketStatusEmail(to, name string, ticketID uint, status string) error {
	subject := fmt.Sprintf("Service ticket #%d is now %s", ticketID, status)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hello %s,</h2>
			<p>The status of your service ticket <strong>#%d</strong> changed to <strong>%s</strong>.</p>
		</body>
		</html>
	`, html.EscapeString(name), ticketID, html.EscapeString(status))

	plainBody := fmt.Sprintf(`
Hello %s,

The status of your service ticket #%d changed to %s.
	`, name, ticketID, status)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
