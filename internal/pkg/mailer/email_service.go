package mailer

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

type ContactInquiry struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type IEmailService interface {
	SendContactInquiry(inquiry ContactInquiry) error
}

// Sender abstracts the SMTP dialer so delivery can be replaced in tests.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	sender      Sender
	senderEmail string
	senderName  string
	recipient   string
}

func NewEmailService(host string, port int, username, password, senderName, recipient string) IEmailService {
	return NewEmailServiceWithSender(gomail.NewDialer(host, port, username, password), username, senderName, recipient)
}

func NewEmailServiceWithSender(sender Sender, senderEmail, senderName, recipient string) IEmailService {
	return &emailService{
		sender:      sender,
		senderEmail: senderEmail,
		senderName:  senderName,
		recipient:   recipient,
	}
}

func (s *emailService) SendContactInquiry(inquiry ContactInquiry) error {
	m := BuildContactMessage(s.senderEmail, s.senderName, s.recipient, inquiry)
	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact inquiry from %s: %w", inquiry.Email, err)
	}
	return nil
}

// BuildContactMessage composes the inquiry mail. Replies go to the visitor.
func BuildContactMessage(from, fromName, to string, inquiry ContactInquiry) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, fromName)
	m.SetHeader("To", to)
	m.SetAddressHeader("Reply-To", inquiry.Email, inquiry.Name)
	m.SetHeader("Subject", fmt.Sprintf("[Website] %s", inquiry.Subject))

	phone := inquiry.Phone
	if phone == "" {
		phone = "-"
	}
	message := strings.ReplaceAll(html.EscapeString(inquiry.Message), "\n", "<br>")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New website inquiry</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<p>%s</p>
		</div>
	`,
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(phone),
		html.EscapeString(inquiry.Subject),
		message,
	)

	m.SetBody("text/html", body)
	return m
}
