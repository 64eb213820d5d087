// internal/sender/voice.go
package sender

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "time"

    "github.com/engagevox/campaign-backend/internal/logx"
    "github.com/engagevox/campaign-backend/internal/model"
)

const maxResponseBody = 1 << 20

// VoiceClient talks to the voice provider API (TTS/STT and telephony live
// behind it; this side only initiates calls and polls status).
type VoiceClient struct {
    BaseURL string
    HTTP    *http.Client
}

func NewVoiceClient(baseURL string, timeout time.Duration) *VoiceClient {
    return &VoiceClient{
        BaseURL: baseURL,
        HTTP:    &http.Client{Timeout: timeout},
    }
}

type outboundCallPayload struct {
    PhoneNumber  string            `json:"phone_number"`
    Purpose      string            `json:"purpose"`
    Sector       string            `json:"sector"`
    Language     string            `json:"language"`
    CustomerData map[string]string `json:"customer_data"`
    PublicURL    string            `json:"public_url"`
}

type outboundCallResponse struct {
    Success bool   `json:"success"`
    CallID  string `json:"call_id"`
    Status  string `json:"status"`
}

type callDetailsResponse struct {
    Success bool `json:"success"`
    Data    struct {
        Status string `json:"status"`
    } `json:"data"`
}

// Initiate asks the provider to place the outbound call. The provider rejects
// non-https callback URLs, so validation happens before this is reached.
func (c *VoiceClient) Initiate(ctx context.Context, req model.CampaignRequest) (*model.VoiceCallHandle, error) {
    payload := outboundCallPayload{
        PhoneNumber: req.DestinationPhone,
        Purpose:     string(req.CampaignType),
        Sector:      string(req.Sector),
        Language:    string(req.Language),
        CustomerData: map[string]string{
            "name":  req.CustomerName,
            "email": req.Email,
        },
        PublicURL: req.CallbackBaseURL,
    }

    body, err := json.Marshal(payload)
    if err != nil {
        return nil, normalizeSetup("voice", err)
    }

    httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
        c.BaseURL+"/api/voice/outbound", bytes.NewReader(body))
    if err != nil {
        return nil, normalizeSetup("voice", err)
    }
    httpReq.Header.Set("Content-Type", "application/json")

    resp, err := c.HTTP.Do(httpReq)
    if err != nil {
        return nil, normalizeTransport("voice", err)
    }
    defer resp.Body.Close()

    respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return nil, normalizeResponse("voice", resp.StatusCode, respBody)
    }

    var out outboundCallResponse
    if err := json.Unmarshal(respBody, &out); err != nil {
        return nil, normalizeResponse("voice", resp.StatusCode, respBody)
    }
    if out.CallID == "" {
        return nil, normalizeResponse("voice", resp.StatusCode, respBody)
    }

    logx.L().Infow("voice_call_initiated", "call_id", out.CallID, "status", out.Status)

    return &model.VoiceCallHandle{
        CallID: out.CallID,
        Status: callStatusFromProvider(out.Status),
    }, nil
}

// GetStatus polls the provider for the current call state.
func (c *VoiceClient) GetStatus(ctx context.Context, callID string) (model.CallStatus, error) {
    httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
        fmt.Sprintf("%s/api/voice/call/%s", c.BaseURL, callID), nil)
    if err != nil {
        return "", normalizeSetup("voice", err)
    }

    resp, err := c.HTTP.Do(httpReq)
    if err != nil {
        return "", normalizeTransport("voice", err)
    }
    defer resp.Body.Close()

    respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return "", normalizeResponse("voice", resp.StatusCode, respBody)
    }

    var out callDetailsResponse
    if err := json.Unmarshal(respBody, &out); err != nil {
        return "", normalizeResponse("voice", resp.StatusCode, respBody)
    }
    return callStatusFromProvider(out.Data.Status), nil
}

func callStatusFromProvider(s string) model.CallStatus {
    switch s {
    case "completed":
        return model.CallCompleted
    case "in-progress", "in_progress", "ringing", "answered":
        return model.CallInProgress
    case "failed", "busy", "no-answer", "canceled":
        return model.CallFailed
    default:
        return model.CallInitiated
    }
}
