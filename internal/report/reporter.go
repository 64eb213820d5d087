// internal/report/reporter.go
package report

import (
    "fmt"

    "github.com/engagevox/campaign-backend/internal/model"
)

// Report is the caller-facing view of a finished run: the machine-readable
// result plus a human-readable status line.
type Report struct {
    CallID       string          `json:"call_id,omitempty"`
    Status       model.RunStatus `json:"status"`
    FollowUpSent bool            `json:"follow_up_sent"`
    Message      string          `json:"message"`
    ErrorDetail  string          `json:"error_detail,omitempty"`
}

// Build maps a CampaignResult to its user-facing report.
func Build(res model.CampaignResult) Report {
    r := Report{
        CallID:       res.CallID,
        Status:       res.Status,
        FollowUpSent: res.FollowUpSent,
        ErrorDetail:  res.ErrorDetail,
    }

    switch res.Status {
    case model.RunCompleted:
        r.Message = fmt.Sprintf("Campaign completed: voice call placed and follow-up sent. Call ID: %s", res.CallID)
    case model.RunPartialFailure:
        r.Message = fmt.Sprintf("Voice call placed (Call ID: %s) but the follow-up was not delivered: %s", res.CallID, res.ErrorDetail)
    default:
        r.Message = fmt.Sprintf("Campaign failed: %s", res.ErrorDetail)
    }
    return r
}
