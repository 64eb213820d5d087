// internal/orchestrator/orchestrator.go
package orchestrator

import (
    "context"
    "strings"
    "time"

    appErrors "github.com/engagevox/campaign-backend/internal/errors"
    "github.com/engagevox/campaign-backend/internal/logx"
    "github.com/engagevox/campaign-backend/internal/metrics"
    "github.com/engagevox/campaign-backend/internal/model"
    "github.com/engagevox/campaign-backend/internal/sender"
    "github.com/engagevox/campaign-backend/internal/template"
)

// runState tracks one run through its lifecycle. Failed is reachable from
// any non-terminal state.
type runState string

const (
    stateIdle            runState = "idle"
    stateCallInitiating  runState = "call_initiating"
    stateCallInFlight    runState = "call_in_flight"
    stateFollowUpPending runState = "follow_up_pending"
    stateFollowUpSent    runState = "follow_up_sent"
    stateCompleted       runState = "completed"
    stateFailed          runState = "failed"
)

// Orchestrator drives one campaign run: validate, place the voice call, wait
// out the call window, render the follow-up, deliver it. Runs are independent;
// the orchestrator holds no per-run state and may be shared across goroutines.
type Orchestrator struct {
    Voice   sender.VoiceSender
    Senders map[model.Channel]sender.Deliverer

    // CallDelay is the bounded wait between call initiation and follow-up
    // dispatch, standing in for a provider completion webhook.
    CallDelay       time.Duration
    InitiateTimeout time.Duration
    DeliverTimeout  time.Duration
}

// RunCampaign executes exactly one attempt of each leg and always returns a
// result, never an error. Re-invoking with an identical request starts a new,
// independent run; the run identifier is the provider call id.
func (o *Orchestrator) RunCampaign(ctx context.Context, req model.CampaignRequest) model.CampaignResult {
    metrics.RunsStarted.Inc()
    state := stateIdle
    log := logx.L().With(
        "phone", req.DestinationPhone,
        "campaign_type", req.CampaignType,
        "channel", req.FollowUpChannel,
    )

    if err := validate(req); err != nil {
        state = stateFailed
        metrics.RunsFailed.Inc()
        log.Warnw("campaign_request_rejected", "state", state, "error", err)
        return model.CampaignResult{Status: model.RunFailed, ErrorDetail: err.Error()}
    }

    state = stateCallInitiating
    log.Debugw("campaign_run_state", "state", state)

    // The provider call is fire-and-forget once issued; a caller abort must
    // not kill it mid-flight, so the voice leg runs detached.
    voiceCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.InitiateTimeout)
    start := time.Now()
    handle, err := o.Voice.Initiate(voiceCtx, req)
    cancel()
    metrics.VoiceInitiateDuration.Observe(time.Since(start).Seconds())

    if err != nil {
        state = stateFailed
        metrics.RunsFailed.Inc()
        log.Errorw("voice_initiate_failed", "state", state, "error", err)
        return model.CampaignResult{Status: model.RunFailed, ErrorDetail: errorDetail(err)}
    }

    state = stateCallInFlight
    log = log.With("call_id", handle.CallID)
    log.Debugw("campaign_run_state", "state", state)

    select {
    case <-time.After(o.CallDelay):
    case <-ctx.Done():
        metrics.RunsPartialFailure.Inc()
        log.Warnw("follow_up_skipped", "reason", "request cancelled")
        return model.CampaignResult{
            CallID:      handle.CallID,
            Status:      model.RunPartialFailure,
            ErrorDetail: "follow-up skipped: request cancelled",
        }
    }

    state = stateFollowUpPending
    log.Debugw("campaign_run_state", "state", state)

    body, fellBack := template.Render(req.CampaignType, req.Language, req.CustomerData())
    if fellBack {
        metrics.TemplateFallbacks.Inc()
        log.Infow("template_fallback", "requested_type", req.CampaignType, "used", template.DefaultType)
    }

    msg := model.FollowUpMessage{
        Channel:     req.FollowUpChannel,
        Destination: followUpDestination(req),
        Body:        body,
    }
    if req.FollowUpChannel == model.ChannelEmail {
        msg.Subject = template.Subject(req.CampaignType)
    }

    d, ok := o.Senders[req.FollowUpChannel]
    if !ok {
        metrics.RunsPartialFailure.Inc()
        log.Errorw("follow_up_sender_missing", "channel", req.FollowUpChannel)
        return model.CampaignResult{
            CallID:      handle.CallID,
            Status:      model.RunPartialFailure,
            ErrorDetail: "no sender configured for channel " + string(req.FollowUpChannel),
        }
    }

    sendCtx, cancel := context.WithTimeout(ctx, o.DeliverTimeout)
    start = time.Now()
    err = d.Deliver(sendCtx, msg)
    cancel()
    metrics.FollowUpSendDuration.WithLabelValues(string(req.FollowUpChannel)).Observe(time.Since(start).Seconds())

    if err != nil {
        // The call already went out; a follow-up fault degrades the run but
        // never erases the voice success.
        metrics.RunsPartialFailure.Inc()
        log.Warnw("follow_up_failed", "error", err)
        return model.CampaignResult{
            CallID:      handle.CallID,
            Status:      model.RunPartialFailure,
            ErrorDetail: errorDetail(err),
        }
    }

    state = stateFollowUpSent
    log.Debugw("campaign_run_state", "state", state)

    state = stateCompleted
    log.Infow("campaign_run_completed", "state", state)
    metrics.RunsCompleted.Inc()
    return model.CampaignResult{
        CallID:       handle.CallID,
        FollowUpSent: true,
        Status:       model.RunCompleted,
    }
}

func validate(req model.CampaignRequest) error {
    if strings.TrimSpace(req.DestinationPhone) == "" {
        return appErrors.NewValidation("destination phone number is required")
    }
    switch req.FollowUpChannel {
    case model.ChannelWhatsApp, model.ChannelSMS:
    case model.ChannelEmail:
        if strings.TrimSpace(req.Email) == "" {
            return appErrors.NewValidation("email address is required for email follow-up")
        }
    default:
        return appErrors.NewValidation("unsupported follow-up channel: " + string(req.FollowUpChannel))
    }
    if req.CallbackBaseURL != "" && !strings.HasPrefix(req.CallbackBaseURL, "https://") {
        return appErrors.NewValidation("callback base URL must start with https://")
    }
    return nil
}

func followUpDestination(req model.CampaignRequest) string {
    if req.FollowUpChannel == model.ChannelEmail {
        return req.Email
    }
    return req.DestinationPhone
}

func errorDetail(err error) string {
    if ce, ok := appErrors.AsChannelError(err); ok {
        return ce.Detail
    }
    return err.Error()
}
