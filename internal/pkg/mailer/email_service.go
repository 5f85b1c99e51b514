// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCheckinSummary(toEmail, fullName string, checkpointNumber int) error
	SendGraduationCongrats(toEmail, fullName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	clientURL := os.Getenv("CLIENT_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendCheckinSummary(toEmail, fullName string, checkpointNumber int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Check-in %d recorded", checkpointNumber))

	ordinal := fmt.Sprintf("check-in %d", checkpointNumber)
	if checkpointNumber == 1 {
		ordinal = "first check-in"
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Nice work, %s!</h2>
			<p>Your %s has been recorded. Your growth snapshot is ready on your dashboard:</p>
			<a href="%s/dashboard" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View My Progress</a>
			<p>Your next check-in unlocks after six more completed sessions.</p>
		</div>
	`, fullName, ordinal, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send check-in summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Check-in summary sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendGraduationCongrats(toEmail, fullName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Congratulations, Program Graduate!")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Congratulations, %s!</h2>
			<p>You have completed your coaching program. Your full growth story is waiting for you:</p>
			<a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">See My Journey</a>
		</div>
	`, fullName, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send graduation email to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Graduation email sent to %s\n", toEmail)
	return nil
}
