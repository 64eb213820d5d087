// internal/sender/messaging.go
package sender

import (
    "bytes"
    "context"
    "encoding/json"
    "io"
    "net/http"
    "time"

    "github.com/engagevox/campaign-backend/internal/logx"
    "github.com/engagevox/campaign-backend/internal/model"
)

// TextClient delivers short text messages through the messaging provider API.
// The same request/response contract backs both the WhatsApp and SMS routes.
type TextClient struct {
    Channel model.Channel
    BaseURL string
    Path    string
    HTTP    *http.Client
}

func NewWhatsAppSender(baseURL string, timeout time.Duration) *TextClient {
    return &TextClient{
        Channel: model.ChannelWhatsApp,
        BaseURL: baseURL,
        Path:    "/api/whatsapp/send",
        HTTP:    &http.Client{Timeout: timeout},
    }
}

func NewSMSSender(baseURL string, timeout time.Duration) *TextClient {
    return &TextClient{
        Channel: model.ChannelSMS,
        BaseURL: baseURL,
        Path:    "/api/sms/send",
        HTTP:    &http.Client{Timeout: timeout},
    }
}

type sendTextPayload struct {
    ToNumber string `json:"to_number"`
    Message  string `json:"message"`
}

type sendTextResponse struct {
    Success bool `json:"success"`
}

func (c *TextClient) Deliver(ctx context.Context, msg model.FollowUpMessage) error {
    channel := string(c.Channel)

    body, err := json.Marshal(sendTextPayload{
        ToNumber: msg.Destination,
        Message:  msg.Body,
    })
    if err != nil {
        return normalizeSetup(channel, err)
    }

    httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
        c.BaseURL+c.Path, bytes.NewReader(body))
    if err != nil {
        return normalizeSetup(channel, err)
    }
    httpReq.Header.Set("Content-Type", "application/json")

    resp, err := c.HTTP.Do(httpReq)
    if err != nil {
        return normalizeTransport(channel, err)
    }
    defer resp.Body.Close()

    respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return normalizeResponse(channel, resp.StatusCode, respBody)
    }

    var out sendTextResponse
    if err := json.Unmarshal(respBody, &out); err == nil && !out.Success {
        return normalizeResponse(channel, resp.StatusCode, respBody)
    }

    logx.L().Infow("follow_up_delivered", "channel", channel, "to", msg.Destination)
    return nil
}
