package apperror

import "errors"

// ErrGatewayNotConfigured is returned when MONO_TOKEN is absent and the
// checkout service has no payment gateway to call.
var ErrGatewayNotConfigured = errors.New("MONO_TOKEN is not set")

// ErrNoRedirectURL is returned when the processor reports success but the
// response carries no hosted-payment redirect URL.
var ErrNoRedirectURL = errors.New("no redirect_url in Mono response")
