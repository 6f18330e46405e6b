package email

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
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

// SendSubmissionNotification sends the captured form values to the form's
// notification recipients. Field values are rendered in sorted key order.
func (s *SMTPEmailService) SendSubmissionNotification(recipients []string, formName, sourceURL string, data map[string]string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no notification recipients configured")
	}

	subject := fmt.Sprintf("New submission: %s", formName)

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var htmlRows strings.Builder
	var plainRows strings.Builder
	for _, key := range keys {
		htmlRows.WriteString(fmt.Sprintf("<tr><td><strong>%s</strong></td><td>%s</td></tr>\n",
			html.EscapeString(key), html.EscapeString(data[key])))
		plainRows.WriteString(fmt.Sprintf("%s: %s\n", key, data[key]))
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New submission: %s</h2>
			<table border="1" cellpadding="6" cellspacing="0">
			%s</table>
			<p>Source: %s</p>
		</body>
		</html>
	`, html.EscapeString(formName), htmlRows.String(), html.EscapeString(sourceURL))

	plainBody := fmt.Sprintf(`
New submission: %s

%s
Source: %s
	`, formName, plainRows.String(), sourceURL)

	return s.sendEmail(recipients, subject, htmlBody, plainBody)
}

// SendSubmissionConfirmation sends the form's success message back to the
// visitor who submitted it.
func (s *SMTPEmailService) SendSubmissionConfirmation(to, formTitle, successMessage string) error {
	subject := fmt.Sprintf("We received your message: %s", formTitle)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
		</body>
		</html>
	`, html.EscapeString(formTitle), html.EscapeString(successMessage))

	plainBody := fmt.Sprintf(`
%s

%s
	`, formTitle, successMessage)

	return s.sendEmail([]string{to}, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to []string, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
