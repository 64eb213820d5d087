// internal/sender/email.go
package sender

import (
    "context"
    "errors"
    "fmt"
    "net"

    "github.com/google/uuid"
    "github.com/resend/resend-go/v2"

    appErrors "github.com/engagevox/campaign-backend/internal/errors"
    "github.com/engagevox/campaign-backend/internal/logx"
    "github.com/engagevox/campaign-backend/internal/model"
)

type emailAPI interface {
    SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailSender delivers follow-up emails through Resend.
type EmailSender struct {
    emails    emailAPI
    fromEmail string
    fromName  string
}

func NewEmailSender(apiKey, fromEmail, fromName string) *EmailSender {
    client := resend.NewClient(apiKey)
    return &EmailSender{
        emails:    client.Emails,
        fromEmail: fromEmail,
        fromName:  fromName,
    }
}

func (s *EmailSender) Deliver(ctx context.Context, msg model.FollowUpMessage) error {
    from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
    params := &resend.SendEmailRequest{
        From:    from,
        To:      []string{msg.Destination},
        Subject: msg.Subject,
        Text:    msg.Body,
        Headers: map[string]string{
            "X-Entity-Ref-ID": uuid.New().String(),
        },
    }

    sent, err := s.emails.SendWithContext(ctx, params)
    if err != nil {
        if errors.Is(err, context.Canceled) {
            return appErrors.NewChannelError("email", appErrors.KindTimeout,
                "email delivery abandoned: request cancelled", err)
        }
        if errors.Is(err, context.DeadlineExceeded) {
            return appErrors.NewChannelError("email", appErrors.KindTimeout,
                "no response from email provider: request timed out", err)
        }
        var ne net.Error
        if errors.As(err, &ne) && ne.Timeout() {
            return appErrors.NewChannelError("email", appErrors.KindTimeout,
                "no response from email provider: request timed out", err)
        }
        return appErrors.NewChannelError("email", appErrors.KindProviderRejected, err.Error(), err)
    }

    logx.L().Infow("follow_up_delivered", "channel", "email", "to", msg.Destination, "email_id", sent.Id)
    return nil
}
