package checkout

import "fmt"

// ValidationError marks a client input error. Handlers map it to 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GatewayError carries a non-success response from the payment processor so
// the handler can mirror its status and description to the caller.
type GatewayError struct {
	StatusCode int
	Message    string
	Hint       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("mono gateway %d: %s", e.StatusCode, e.Message)
}
