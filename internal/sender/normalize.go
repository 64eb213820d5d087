package sender

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "net"
    "net/http"

    appErrors "github.com/engagevox/campaign-backend/internal/errors"
)

// providerError is the error body shape returned by the provider API. The
// detail field may be any JSON value, not just a string.
type providerError struct {
    Detail  json.RawMessage `json:"detail"`
    Message string          `json:"message"`
}

// normalizeTransport turns a failed round trip (no HTTP response at all) into
// a ChannelError. Caller cancellation is reported as such, not as a provider
// fault.
func normalizeTransport(channel string, err error) *appErrors.ChannelError {
    if errors.Is(err, context.Canceled) {
        return appErrors.NewChannelError(channel, appErrors.KindTimeout,
            fmt.Sprintf("%s delivery abandoned: request cancelled", channel), err)
    }
    if errors.Is(err, context.DeadlineExceeded) {
        return appErrors.NewChannelError(channel, appErrors.KindTimeout,
            fmt.Sprintf("no response from %s provider: request timed out", channel), err)
    }
    var ne net.Error
    if errors.As(err, &ne) && ne.Timeout() {
        return appErrors.NewChannelError(channel, appErrors.KindTimeout,
            fmt.Sprintf("no response from %s provider: request timed out", channel), err)
    }
    return appErrors.NewChannelError(channel, appErrors.KindNetworkUnreachable,
        fmt.Sprintf("no response from %s provider", channel), err)
}

// normalizeResponse turns a non-2xx provider response into a ChannelError.
// Detail precedence: structured detail field, then message field, then an
// HTTP-status-derived text. Later sources are used only when earlier ones
// are absent.
func normalizeResponse(channel string, status int, body []byte) *appErrors.ChannelError {
    detail := ""

    var pe providerError
    if err := json.Unmarshal(body, &pe); err == nil {
        if len(pe.Detail) > 0 && string(pe.Detail) != "null" {
            var s string
            if err := json.Unmarshal(pe.Detail, &s); err == nil {
                detail = s
            } else {
                detail = string(pe.Detail)
            }
        } else if pe.Message != "" {
            detail = pe.Message
        }
    }
    if detail == "" {
        detail = fmt.Sprintf("server error: %d - %s", status, string(body))
    }

    kind := appErrors.KindProviderRejected
    switch status {
    case http.StatusUnauthorized, http.StatusForbidden:
        kind = appErrors.KindUnauthorized
    case http.StatusRequestTimeout, http.StatusGatewayTimeout:
        kind = appErrors.KindTimeout
    }

    return appErrors.NewChannelError(channel, kind, detail, nil)
}

// normalizeSetup covers failures before the request ever left the process.
func normalizeSetup(channel string, err error) *appErrors.ChannelError {
    return appErrors.NewChannelError(channel, appErrors.KindNetworkUnreachable,
        fmt.Sprintf("request setup failed: %v", err), err)
}
