package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     user,
	}
}

// Send entrega um email HTML via SMTP. Se as credenciais não estiverem no
// config, devolve erro sem tentar conexão.
func (s *EmailSender) Send(to, subject, htmlBody string) error {
	if s.Host == "" || s.User == "" || s.Password == "" {
		return fmt.Errorf("smtp não configurado")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
