package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendApprovalDecision(toEmail, firstName string, approved bool, notes string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendApprovalDecision(toEmail, firstName string, approved bool, notes string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)

	var body string
	if approved {
		m.SetHeader("Subject", "Your Access Request Has Been Approved")
		body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome, %s!</h2>
			<p>Your access request has been approved. You can now sign in with your Microsoft account:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Sign In</a>
		</div>
	`, firstName, s.clientURL)
	} else {
		m.SetHeader("Subject", "Your Access Request Was Not Approved")
		reason := notes
		if reason == "" {
			reason = "Please contact your administrator for more information."
		}
		body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hello, %s</h2>
			<p>Unfortunately your access request was not approved.</p>
			<p>%s</p>
		</div>
	`, firstName, reason)
	}

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send approval decision to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Approval decision sent to %s\n", toEmail)
	return nil
}
