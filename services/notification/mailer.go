package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends transactional email through the Resend HTTP API.
type ResendMailer struct {
	Client  *resend.Client
	From    string
	ReplyTo string
}

func NewResendMailer(apiKey, from, replyTo string) *ResendMailer {
	return &ResendMailer{
		Client:  resend.NewClient(apiKey),
		From:    from,
		ReplyTo: replyTo,
	}
}

// Send delivers one message. Quota and rate-limit rejections are wrapped in
// ErrQuotaExceeded so callers can tell them apart from transient transport
// faults.
func (m *ResendMailer) Send(ctx context.Context, msg Email) error {
	params := &resend.SendEmailRequest{
		From:    m.From,
		To:      []string{msg.To},
		ReplyTo: m.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	if _, err := m.Client.Emails.SendWithContext(ctx, params); err != nil {
		if isQuotaError(err) {
			return fmt.Errorf("send to %s rejected: %w", msg.To, ErrQuotaExceeded)
		}
		return fmt.Errorf("send to %s failed: %w", msg.To, err)
	}
	return nil
}

// isQuotaError recognizes the shapes Resend uses for quota/rate-limit
// rejections. The SDK surfaces these as flat errors, so matching on the
// response text is all we have.
func isQuotaError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "rate_limit") ||
		strings.Contains(s, "rate limit") ||
		strings.Contains(s, "too many requests") ||
		strings.Contains(s, "quota") ||
		strings.Contains(s, "429")
}
