// internal/sender/sender.go
package sender

import (
    "context"

    "github.com/engagevox/campaign-backend/internal/model"
)

// Deliverer sends one rendered follow-up message. Implementations perform
// exactly one provider round trip and never retry; retry policy belongs to
// the caller.
type Deliverer interface {
    Deliver(ctx context.Context, msg model.FollowUpMessage) error
}

// VoiceSender places the outbound call that starts a campaign run.
type VoiceSender interface {
    Initiate(ctx context.Context, req model.CampaignRequest) (*model.VoiceCallHandle, error)
    GetStatus(ctx context.Context, callID string) (model.CallStatus, error)
}
