package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoChange indicates that an update request would not change anything.
var ErrNoChange = errors.New("nothing to update")

// ErrRateNotFound indicates that the exchange rate provider answered successfully
// but did not include a rate for the requested currency pair.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrServiceUnavailable indicates that the exchange rate provider could not be
// reached at all (timeout, connection refused, DNS failure). Distinct from
// UpstreamError, which means the provider was reachable but rejected the request.
var ErrServiceUnavailable = errors.New("exchange rate service unavailable")

// ErrConversion is the catch-all for unexpected faults during currency
// conversion (malformed payloads, non-positive rates).
var ErrConversion = errors.New("currency conversion failed")

// UpstreamError carries the status and body of a rejection from the exchange
// rate provider so the HTTP layer can propagate them to the client.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d: %s", e.StatusCode, e.Body)
}
