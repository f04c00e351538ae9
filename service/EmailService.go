package service

import (
	"crypto/tls"
	"fmt"
	"strconv"

	"bookstore-api/util"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	sender string
	host   string
}

func NewEmailService() *EmailService {
	host := util.GetEnv("SMTP_HOST", "")
	portStr := util.GetEnv("SMTP_PORT", "587")
	user := util.GetEnv("SMTP_USER", "")
	pass := util.GetEnv("SMTP_PASS", "")
	sender := util.GetEnv("SMTP_SENDER_NAME", "Bookstore")

	port, _ := strconv.Atoi(portStr)

	dialer := gomail.NewDialer(host, port, user, pass)

	// Fix for common TLS issues (optional but recommended for dev)
	dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return &EmailService{
		dialer: dialer,
		sender: sender,
		host:   host,
	}
}

// Enabled reports whether SMTP is configured; mail sending is skipped
// entirely otherwise.
func (s *EmailService) Enabled() bool {
	return s.host != ""
}

// SendWelcome greets a newly registered user.
func (s *EmailService) SendWelcome(toEmail, username string) error {
	m := gomail.NewMessage()

	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.sender, s.dialer.Username))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to the Bookstore")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>Hello %s!</h2>
			<p>Your bookstore account is ready.</p>
			<p>Log in to browse the catalog.</p>
		</div>
	`, username)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
