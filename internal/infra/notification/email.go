package notification

import (
	"fmt"
	"net/smtp"
	"strings"
)

type EmailSender interface {
	Send(to string, subject string, body string) error
}

// SMTPSender sends mail via unauthenticated SMTP (Mailpit-compatible in
// development, a local relay in production).
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(host, port, from string) *SMTPSender {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@boxarena.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

func (s *SMTPSender) Send(to string, subject string, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

func OTPSubject(purpose string) string {
	return fmt.Sprintf("Box Arena - %s code", purpose)
}

func OTPBody(code string, purpose string) string {
	return fmt.Sprintf(
		"Your Box Arena %s code is %s.\n\nThe code is valid for 10 minutes and can be used once. If you did not request it, ignore this message.\n",
		strings.ToLower(purpose),
		code,
	)
}

func OTPSMSBody(code string) string {
	return fmt.Sprintf("Box Arena verification code: %s. Valid for 10 minutes.", code)
}

func BookingConfirmedBody(reference, facilityName, date, startTime, endTime string, amount int64) string {
	return fmt.Sprintf(
		"Your booking %s is confirmed.\n\nFacility: %s\nDate: %s\nTime: %s - %s\nAmount paid: Rs. %d\n\nShow the booking reference at the front desk to check in.\n",
		reference, facilityName, date, startTime, endTime, amount,
	)
}
