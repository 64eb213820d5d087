// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// ValidationError means the campaign request was malformed. It is raised
// before any provider is contacted.
type ValidationError struct {
    Reason string
}

func (e *ValidationError) Error() string {
    return fmt.Sprintf("invalid campaign request: %s", e.Reason)
}

// Helper constructor
func NewValidation(reason string) error {
    return &ValidationError{Reason: reason}
}

// ErrorKind classifies a channel failure independent of the provider.
type ErrorKind string

const (
    KindTimeout            ErrorKind = "timeout"
    KindProviderRejected   ErrorKind = "provider_rejected"
    KindNetworkUnreachable ErrorKind = "network_unreachable"
    KindUnauthorized       ErrorKind = "unauthorized"
)

// ChannelError is the normalized failure produced by a sender adapter.
// Detail is human-readable and already derived via the fixed precedence:
// provider error body, then message field, then HTTP status, then
// no-response, then request setup.
type ChannelError struct {
    Channel string
    Kind    ErrorKind
    Detail  string
    Err     error
}

func (e *ChannelError) Error() string {
    return fmt.Sprintf("%s channel error (%s): %s", e.Channel, e.Kind, e.Detail)
}

func (e *ChannelError) Unwrap() error { return e.Err }

func NewChannelError(channel string, kind ErrorKind, detail string, err error) *ChannelError {
    return &ChannelError{Channel: channel, Kind: kind, Detail: detail, Err: err}
}

// AsChannelError unwraps err into a *ChannelError when possible.
func AsChannelError(err error) (*ChannelError, bool) {
    var ce *ChannelError
    if errors.As(err, &ce) {
        return ce, true
    }
    return nil, false
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
    var ve *ValidationError
    if errors.As(err, &ve) {
        return ve, true
    }
    return nil, false
}
