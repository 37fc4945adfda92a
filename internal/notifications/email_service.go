package notifications

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"cineplex/pkg/logger"
)

// EmailService turns booking events into customer emails
type EmailService interface {
	SendEvent(ctx context.Context, event *Event) error
}

// Email is a rendered message
type Email struct {
	To      string
	Subject string
	Body    string
}

// DeliverFunc hands a rendered email to a transport
type DeliverFunc func(ctx context.Context, email Email) error

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

var emailTemplates = map[EventType]emailTemplate{
	EventBookingConfirmed: parseTemplate(
		"Booking confirmed: {{.movie_title}}",
		`Hi {{.name}},

Your booking {{.reference}} is confirmed.
{{.movie_title}}, {{.hall}}
{{.date}} at {{.time}}
Seats: {{.seats}}
Total paid: {{.currency}} {{printf "%.2f" .total}}
Points earned: {{.points}}

See you at the movies!
`),
	EventBookingCancelled: parseTemplate(
		"Booking cancelled: {{.reference}}",
		`Hi {{.name}},

Your booking {{.reference}} for {{.movie_title}} has been cancelled.
Refund: {{.currency}} {{printf "%.2f" .refund}} ({{.refund_percentage}}%)
`),
	EventTierUpgraded: parseTemplate(
		"Welcome to {{.tier}}",
		`Hi {{.name}},

You now hold {{.tier}} membership with {{.points_balance}} points.
`),
}

func parseTemplate(subject, body string) emailTemplate {
	return emailTemplate{
		subject: template.Must(template.New("subject").Option("missingkey=zero").Parse(subject)),
		body:    template.Must(template.New("body").Option("missingkey=zero").Parse(body)),
	}
}

// TemplateEmailService renders events with the built-in templates
type TemplateEmailService struct {
	deliver DeliverFunc
	log     *logger.Logger
}

// NewTemplateEmailService delivers through fn, or the log when fn is nil
func NewTemplateEmailService(fn DeliverFunc) *TemplateEmailService {
	s := &TemplateEmailService{deliver: fn, log: logger.GetDefault()}
	if s.deliver == nil {
		s.deliver = s.logDelivery
	}
	return s
}

// Render builds the email for an event. Events without a template or a
// recipient address render to nil.
func (s *TemplateEmailService) Render(event *Event) (*Email, error) {
	tmpl, ok := emailTemplates[event.Type]
	if !ok {
		return nil, nil
	}
	to, _ := event.Data["email"].(string)
	if to == "" {
		return nil, nil
	}

	data := map[string]interface{}{"reference": event.ReferenceCode}
	for k, v := range event.Data {
		data[k] = v
	}

	var subject, body bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("failed to render subject: %w", err)
	}
	if err := tmpl.body.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render body: %w", err)
	}
	return &Email{To: to, Subject: subject.String(), Body: body.String()}, nil
}

func (s *TemplateEmailService) SendEvent(ctx context.Context, event *Event) error {
	email, err := s.Render(event)
	if err != nil {
		return err
	}
	if email == nil {
		return nil
	}
	return s.deliver(ctx, *email)
}

func (s *TemplateEmailService) logDelivery(_ context.Context, email Email) error {
	s.log.Info("email sent", "to", email.To, "subject", email.Subject)
	return nil
}
