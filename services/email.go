package services

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/mail"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pocketbase/pocketbase/tools/mailer"
)

const (
	DefaultEmailSubject = "Your COGS Calculation Results"
	DefaultEmailMessage = "Please find attached your COGS calculation results."
)

// EmailRequest is the "Email Results" dialog form.
type EmailRequest struct {
	Recipient string
	Subject   string
	Message   string
}

// NewEmailRequest returns a request prefilled with the dialog defaults.
func NewEmailRequest() EmailRequest {
	return EmailRequest{
		Subject: DefaultEmailSubject,
		Message: DefaultEmailMessage,
	}
}

// Normalize trims the fields and falls back to the default subject and
// message when they are left blank.
func (r *EmailRequest) Normalize() {
	r.Recipient = strings.TrimSpace(r.Recipient)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
	if r.Subject == "" {
		r.Subject = DefaultEmailSubject
	}
	if r.Message == "" {
		r.Message = DefaultEmailMessage
	}
}

// Validate checks the recipient address and field lengths.
func (r EmailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Recipient, validation.Required, is.EmailFormat),
		validation.Field(&r.Subject, validation.Length(0, 200)),
		validation.Field(&r.Message, validation.Length(0, 2000)),
	)
}

// Sender delivers a composed message. PocketBase's mail client satisfies it.
type Sender interface {
	Send(message *mailer.Message) error
}

// SimulatedSender accepts every message and only logs it.
type SimulatedSender struct {
	Logger *slog.Logger
}

func (s SimulatedSender) Send(message *mailer.Message) error {
	if s.Logger == nil {
		return nil
	}
	to := make([]string, 0, len(message.To))
	for _, addr := range message.To {
		to = append(to, addr.Address)
	}
	attachments := make([]string, 0, len(message.Attachments))
	for name := range message.Attachments {
		attachments = append(attachments, name)
	}
	s.Logger.Info("simulated email delivery",
		"to", strings.Join(to, ","),
		"subject", message.Subject,
		"attachments", strings.Join(attachments, ","),
	)
	return nil
}

// ReportMailer composes the results email with the PDF report attached.
type ReportMailer struct {
	Sender   Sender
	From     mail.Address
	Filename string
}

// BuildMessage assembles the message without sending it.
func (rm ReportMailer) BuildMessage(req EmailRequest, data ReportData, pdf []byte) *mailer.Message {
	filename := rm.Filename
	if filename == "" {
		filename = DefaultReportFilename
	}

	body := req.Message + "\n\n" + data.PlainText()

	msg := &mailer.Message{
		From:    rm.From,
		To:      []mail.Address{{Address: req.Recipient}},
		Subject: req.Subject,
		Text:    body,
	}
	if len(pdf) > 0 {
		msg.Attachments = map[string]io.Reader{filename: bytes.NewReader(pdf)}
	}
	return msg
}

// Send validates the request and delivers the report email.
func (rm ReportMailer) Send(req EmailRequest, data ReportData, pdf []byte) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	if rm.Sender == nil {
		return fmt.Errorf("send report email: no sender configured")
	}
	if err := rm.Sender.Send(rm.BuildMessage(req, data, pdf)); err != nil {
		return fmt.Errorf("send report email to %s: %w", req.Recipient, err)
	}
	return nil
}
