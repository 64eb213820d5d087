package sender

import (
    "context"
    "errors"
    "testing"

    "github.com/resend/resend-go/v2"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    appErrors "github.com/engagevox/campaign-backend/internal/errors"
    "github.com/engagevox/campaign-backend/internal/model"
)

type fakeEmails struct {
    last *resend.SendEmailRequest
    resp *resend.SendEmailResponse
    err  error
}

func (f *fakeEmails) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
    f.last = params
    if f.err != nil {
        return nil, f.err
    }
    return f.resp, nil
}

func testMessage() model.FollowUpMessage {
    return model.FollowUpMessage{
        Channel:     model.ChannelEmail,
        Destination: "a@b.com",
        Subject:     "EMI Payment Reminder",
        Body:        "Hello Rajesh Kumar, your EMI payment of Rs. 25000 is due on 2025-02-05.",
    }
}

func TestEmailDeliver(t *testing.T) {
    fake := &fakeEmails{resp: &resend.SendEmailResponse{Id: "email-1"}}
    s := &EmailSender{emails: fake, fromEmail: "campaigns@engagevox.in", fromName: "EngageVox"}

    err := s.Deliver(context.Background(), testMessage())

    require.NoError(t, err)
    require.NotNil(t, fake.last)
    assert.Equal(t, "EngageVox <campaigns@engagevox.in>", fake.last.From)
    assert.Equal(t, []string{"a@b.com"}, fake.last.To)
    assert.Equal(t, "EMI Payment Reminder", fake.last.Subject)
    assert.Contains(t, fake.last.Text, "25000")
    assert.NotEmpty(t, fake.last.Headers["X-Entity-Ref-ID"])
}

func TestEmailDeliverProviderRejected(t *testing.T) {
    fake := &fakeEmails{err: errors.New("validation_error: The from address is not authorized")}
    s := &EmailSender{emails: fake, fromEmail: "campaigns@engagevox.in", fromName: "EngageVox"}

    err := s.Deliver(context.Background(), testMessage())

    require.Error(t, err)
    ce, ok := appErrors.AsChannelError(err)
    require.True(t, ok)
    assert.Equal(t, "email", ce.Channel)
    assert.Equal(t, appErrors.KindProviderRejected, ce.Kind)
    assert.Contains(t, ce.Detail, "not authorized")
}

func TestEmailDeliverCancelled(t *testing.T) {
    fake := &fakeEmails{err: context.Canceled}
    s := &EmailSender{emails: fake, fromEmail: "campaigns@engagevox.in", fromName: "EngageVox"}

    err := s.Deliver(context.Background(), testMessage())

    require.Error(t, err)
    ce, ok := appErrors.AsChannelError(err)
    require.True(t, ok)
    assert.Contains(t, ce.Detail, "request cancelled")
    assert.NotContains(t, ce.Detail, "no response")
}

func TestEmailDeliverTimeout(t *testing.T) {
    fake := &fakeEmails{err: context.DeadlineExceeded}
    s := &EmailSender{emails: fake, fromEmail: "campaigns@engagevox.in", fromName: "EngageVox"}

    err := s.Deliver(context.Background(), testMessage())

    require.Error(t, err)
    ce, ok := appErrors.AsChannelError(err)
    require.True(t, ok)
    assert.Equal(t, appErrors.KindTimeout, ce.Kind)
}
