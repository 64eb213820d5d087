// internal/model/voice_call.go
package model

// CallStatus is the provider-reported lifecycle state of a voice call.
type CallStatus string

const (
    CallInitiated  CallStatus = "initiated"
    CallInProgress CallStatus = "in_progress"
    CallCompleted  CallStatus = "completed"
    CallFailed     CallStatus = "failed"
)

// VoiceCallHandle is returned by the voice provider when a call is accepted.
// It lives for the duration of one campaign run.
type VoiceCallHandle struct {
    CallID string     `json:"call_id"`
    Status CallStatus `json:"status"`
}
