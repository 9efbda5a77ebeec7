package mailer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSendContactInquiry(t *testing.T) {
	sender := &fakeSender{}
	svc := NewEmailServiceWithSender(sender, "noreply@example.com", "Website", "sales@example.com")

	err := svc.SendContactInquiry(ContactInquiry{
		Name:    "Dana <script>",
		Email:   "dana@client.com",
		Subject: "General Inquiry",
		Message: "Need a quote\nfor scaffolding",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	m := sender.sent[0]
	assert.Equal(t, []string{"sales@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"[Website] General Inquiry"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "<script>")
}

func TestSendContactInquiryWrapsDeliveryErrors(t *testing.T) {
	svc := NewEmailServiceWithSender(&fakeSender{err: errors.New("dial tcp: refused")}, "a@b.c", "Site", "x@y.z")

	err := svc.SendContactInquiry(ContactInquiry{Email: "v@client.com", Subject: "Hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v@client.com")
}
