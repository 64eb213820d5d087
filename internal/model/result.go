// internal/model/result.go
package model

// RunStatus is the terminal outcome of one orchestration run.
type RunStatus string

const (
    RunCompleted      RunStatus = "completed"
    RunPartialFailure RunStatus = "partial_failure"
    RunFailed         RunStatus = "failed"
)

// CampaignResult is produced exactly once per run. The caller always receives
// one; status and error detail fully describe the outcome.
type CampaignResult struct {
    CallID       string    `json:"call_id,omitempty"`
    FollowUpSent bool      `json:"follow_up_sent"`
    Status       RunStatus `json:"status"`
    ErrorDetail  string    `json:"error_detail,omitempty"`
}
