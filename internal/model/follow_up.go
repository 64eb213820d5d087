package model

// FollowUpMessage is the rendered secondary-channel message for one run.
// Immutable once rendered; Subject is only set for email.
type FollowUpMessage struct {
    Channel     Channel `json:"channel"`
    Destination string  `json:"destination"`
    Body        string  `json:"body"`
    Subject     string  `json:"subject,omitempty"`
}
