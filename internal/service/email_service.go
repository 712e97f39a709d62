package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog"

	"weddingrsvp/internal/models"
)

// sesAPI is the subset of the SES client used for sending
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailService sends RSVP notifications via Amazon SES
type EmailService struct {
	client    sesAPI
	fromEmail string
	fromName  string
	enabled   bool
	debug     bool
	log       zerolog.Logger
}

// NewEmailService creates a new email service. Without a sender address it
// returns a disabled service whose sends are no-ops.
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName string, log zerolog.Logger, debug bool) (*EmailService, error) {
	if fromEmail == "" {
		log.Info().Msg("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, debug: debug, log: log}, nil
	}

	if debug {
		log.Debug().Str("region", awsRegion).Str("from", fromEmail).Str("from_name", fromName).Msg("Initializing email service with AWS SES")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Info().Str("from", fromEmail).Str("region", awsRegion).Msg("Email service enabled")
	return newEmailServiceWithClient(sesv2.NewFromConfig(cfg), fromEmail, fromName, log, debug), nil
}

func newEmailServiceWithClient(client sesAPI, fromEmail, fromName string, log zerolog.Logger, debug bool) *EmailService {
	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
		debug:     debug,
		log:       log,
	}
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendRSVPNotification emails the couple a summary of a submission
func (s *EmailService) SendRSVPNotification(ctx context.Context, n models.RSVPNotification) error {
	if !s.enabled {
		if s.debug {
			s.log.Debug().Int("guests", len(n.Guests)).Msg("Skipping RSVP notification (service disabled)")
		}
		return nil
	}
	if n.RecipientEmail == "" {
		return fmt.Errorf("notification recipient is required")
	}

	subject := notificationSubject(n)
	htmlBody, err := renderNotificationHTML(n)
	if err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}
	textBody := renderNotificationText(n)

	return s.sendEmail(ctx, n.RecipientEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	if s.debug {
		s.log.Debug().Str("from", fromAddress).Str("to", toEmail).Str("subject", subject).
			Int("html_bytes", len(htmlBody)).Int("text_bytes", len(textBody)).Msg("Sending email")
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	event := s.log.Info().Str("to", toEmail).Str("subject", subject)
	if result != nil && result.MessageId != nil {
		event = event.Str("message_id", *result.MessageId)
	}
	event.Msg("Email sent successfully")
	return nil
}

func notificationSubject(n models.RSVPNotification) string {
	names := make([]string, len(n.Guests))
	for i, g := range n.Guests {
		names[i] = g.Name
	}
	return "New RSVP from " + strings.Join(names, ", ")
}

var notificationTemplate = template.Must(template.New("rsvp").Funcs(template.FuncMap{
	"attendance": attendanceLabel,
	"meal":       mealLabel,
}).Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Georgia, serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #8a9a5b; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #faf8f3; padding: 30px; border-radius: 0 0 5px 5px; }
		.guest { border-bottom: 1px solid #e5e0d5; padding: 10px 0; }
		.message { font-style: italic; margin-top: 20px; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>New RSVP</h1>
		</div>
		<div class="content">
			{{range .Guests}}
			<div class="guest">
				<strong>{{.Name}}</strong>: {{attendance .Attendance}}
				{{if .MealChoice}}<br>Meal: {{meal .MealChoice}}{{end}}
				{{if .DietaryRestrictions}}<br>Dietary notes: {{.DietaryRestrictions}}{{end}}
			</div>
			{{end}}
			{{if .Message}}<p class="message">"{{.Message}}"</p>{{end}}
		</div>
	</div>
</body>
</html>
`))

func renderNotificationHTML(n models.RSVPNotification) (string, error) {
	var buf bytes.Buffer
	if err := notificationTemplate.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderNotificationText(n models.RSVPNotification) string {
	var b strings.Builder
	b.WriteString("New RSVP\n\n")
	for _, g := range n.Guests {
		fmt.Fprintf(&b, "%s: %s\n", g.Name, attendanceLabel(g.Attendance))
		if g.MealChoice != "" {
			fmt.Fprintf(&b, "  Meal: %s\n", mealLabel(g.MealChoice))
		}
		if g.DietaryRestrictions != "" {
			fmt.Fprintf(&b, "  Dietary notes: %s\n", g.DietaryRestrictions)
		}
	}
	if n.Message != "" {
		fmt.Fprintf(&b, "\nMessage:\n%s\n", n.Message)
	}
	return b.String()
}

func attendanceLabel(attendance string) string {
	if attendance == models.AttendanceAttending {
		return "Attending"
	}
	return "Not attending"
}

func mealLabel(meal string) string {
	if meal == "" {
		return ""
	}
	return strings.ToUpper(meal[:1]) + meal[1:]
}
