package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingrsvp/internal/models"
	"weddingrsvp/internal/validation"
)

type fakeSES struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func testNotification() models.RSVPNotification {
	return models.RSVPNotification{
		RecipientEmail: "couple@example.com",
		Message:        "Can't wait <3",
		Guests: []models.NotificationGuest{
			{Name: "Jane Doe", Attendance: models.AttendanceAttending, MealChoice: validation.MealChicken, DietaryRestrictions: "no nuts"},
			{Name: "John Doe", Attendance: models.AttendanceNotAttending},
		},
	}
}

func TestEmailServiceDisabled(t *testing.T) {
	svc, err := NewEmailService(context.Background(), "us-east-1", "", "", zerolog.Nop(), true)
	require.NoError(t, err)
	assert.False(t, svc.IsEnabled())
	assert.NoError(t, svc.SendRSVPNotification(context.Background(), testNotification()))
}

func TestEmailServiceSendsNotification(t *testing.T) {
	ses := &fakeSES{}
	svc := newEmailServiceWithClient(ses, "rsvp@example.com", "Wedding RSVP", zerolog.Nop(), false)

	require.NoError(t, svc.SendRSVPNotification(context.Background(), testNotification()))
	require.Len(t, ses.inputs, 1)

	in := ses.inputs[0]
	assert.Equal(t, "Wedding RSVP <rsvp@example.com>", aws.ToString(in.FromEmailAddress))
	assert.Equal(t, []string{"couple@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, "New RSVP from Jane Doe, John Doe", aws.ToString(in.Content.Simple.Subject.Data))

	html := aws.ToString(in.Content.Simple.Body.Html.Data)
	assert.Contains(t, html, "Meal: Chicken")
	assert.Contains(t, html, "Can&#39;t wait &lt;3")
	assert.NotContains(t, html, "<3")

	text := aws.ToString(in.Content.Simple.Body.Text.Data)
	assert.Contains(t, text, "Jane Doe: Attending")
	assert.Contains(t, text, "John Doe: Not attending")
	assert.Contains(t, text, "Dietary notes: no nuts")
}

func TestEmailServiceErrors(t *testing.T) {
	ses := &fakeSES{err: errors.New("throttled")}
	svc := newEmailServiceWithClient(ses, "rsvp@example.com", "", zerolog.Nop(), false)

	err := svc.SendRSVPNotification(context.Background(), testNotification())
	assert.ErrorContains(t, err, "throttled")
	assert.Equal(t, "rsvp@example.com", aws.ToString(ses.inputs[0].FromEmailAddress))

	n := testNotification()
	n.RecipientEmail = ""
	assert.Error(t, svc.SendRSVPNotification(context.Background(), n))
}
