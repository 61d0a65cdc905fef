package notify

import "strings"

// PaymentStatus is the processor's payment state as reported in a callback.
type PaymentStatus string

const (
	StatusSuccess   PaymentStatus = "success"
	StatusCompleted PaymentStatus = "completed"
	StatusDone      PaymentStatus = "done"
)

// ParseStatus normalizes a raw callback status for classification.
func ParseStatus(raw string) PaymentStatus {
	return PaymentStatus(strings.ToLower(strings.TrimSpace(raw)))
}

// Successful reports whether the status means the payment went through.
// Mono has used several synonyms across API versions; adding a new one is a
// one-line change here.
func (s PaymentStatus) Successful() bool {
	switch s {
	case StatusSuccess, StatusCompleted, StatusDone:
		return true
	}
	return false
}
