package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, from: "EduVerse <noreply@eduverse.dev>", logger: &logger}
}

func TestPreviewWelcome(t *testing.T) {
	html, err := Preview(TemplateWelcome)
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome, Aung!")
	assert.Contains(t, html, "aung@eduverse.dev")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestSendWelcomeEmail(t *testing.T) {
	fake := &fakeSender{}
	client := newTestClient(fake)

	require.NoError(t, client.SendWelcomeEmail("mya@eduverse.dev", "mya"))

	require.Len(t, fake.sent, 1)
	assert.Equal(t, []string{"mya@eduverse.dev"}, fake.sent[0].To)
	assert.Equal(t, "EduVerse <noreply@eduverse.dev>", fake.sent[0].From)
	assert.Equal(t, "Welcome to EduVerse", fake.sent[0].Subject)
	assert.Contains(t, fake.sent[0].Html, "Welcome, Mya!")
}

func TestSendEmailProviderError(t *testing.T) {
	client := newTestClient(&fakeSender{err: errors.New("rate limited")})

	err := client.SendWelcomeEmail("mya@eduverse.dev", "mya")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSendEmailWithoutProvider(t *testing.T) {
	client := newTestClient(nil)
	assert.NoError(t, client.SendWelcomeEmail("mya@eduverse.dev", "mya"))
}
