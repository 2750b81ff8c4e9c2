package domain

import (
	"fmt"
)

// ProviderRejection is a non-200 answer from the provider, already translated
// into the status and labels returned to the caller.
type ProviderRejection struct {
	ProviderStatus int
	Code           *int
	ProviderMsg    string

	HTTPStatus int
	Label      string
	Message    string
}

func (e *ProviderRejection) Error() string {
	code := "none"
	if e.Code != nil {
		code = fmt.Sprintf("%d", *e.Code)
	}
	return fmt.Sprintf("provider rejected message (status %d, code %s): %s", e.ProviderStatus, code, e.ProviderMsg)
}

// TransportError covers failures talking to the provider: network errors,
// timeouts and unreadable responses.
type TransportError struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: provider request timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
