package report_test

import (
    "strings"
    "testing"

    "github.com/engagevox/campaign-backend/internal/model"
    "github.com/engagevox/campaign-backend/internal/report"
)

func TestBuildCompleted(t *testing.T) {
    r := report.Build(model.CampaignResult{
        CallID:       "call-7",
        FollowUpSent: true,
        Status:       model.RunCompleted,
    })

    if r.Status != model.RunCompleted {
        t.Errorf("expected completed, got %s", r.Status)
    }
    if !r.FollowUpSent {
        t.Errorf("expected follow_up_sent true")
    }
    if !strings.Contains(r.Message, "call-7") {
        t.Errorf("expected message to mention the call id, got %q", r.Message)
    }
    if !strings.Contains(r.Message, "follow-up sent") {
        t.Errorf("unexpected message %q", r.Message)
    }
}

func TestBuildPartialFailure(t *testing.T) {
    r := report.Build(model.CampaignResult{
        CallID:      "call-7",
        Status:      model.RunPartialFailure,
        ErrorDetail: "no response from sms provider",
    })

    if !strings.Contains(r.Message, "call-7") {
        t.Errorf("expected message to keep the call id, got %q", r.Message)
    }
    if !strings.Contains(r.Message, "no response from sms provider") {
        t.Errorf("expected message to carry the failure detail, got %q", r.Message)
    }
    if r.FollowUpSent {
        t.Errorf("expected follow_up_sent false")
    }
}

func TestBuildFailed(t *testing.T) {
    r := report.Build(model.CampaignResult{
        Status:      model.RunFailed,
        ErrorDetail: "phone_number is required",
    })

    if r.CallID != "" {
        t.Errorf("expected no call id on a failed run, got %q", r.CallID)
    }
    if !strings.Contains(r.Message, "Campaign failed") {
        t.Errorf("unexpected message %q", r.Message)
    }
    if !strings.Contains(r.Message, "phone_number is required") {
        t.Errorf("expected the validation detail in the message, got %q", r.Message)
    }
}
