package notify

import (
	"context"
	"log/slog"
	"time"
)

//go:generate mockgen -source service.go -destination mock_messenger.go -package notify

// Messenger dispatches a formatted notification to the messaging channel.
type Messenger interface {
	SendMessage(ctx context.Context, text string) error
}

// Outcome reports what happened to a callback. Every step past status
// classification is best-effort: the HTTP layer acknowledges with 200 no
// matter which fields are set.
type Outcome struct {
	Skipped    bool
	Decoded    bool
	Dispatched bool
}

// Label returns the outcome label used for metrics.
func (o Outcome) Label() string {
	switch {
	case o.Dispatched:
		return "dispatched"
	case o.Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Notifier turns successful payment callbacks into Telegram notifications.
// All internal failures are logged and absorbed; the processor retries
// delivery on any non-200, so the callback contract is "always acknowledge".
type Notifier struct {
	messenger Messenger
	now       func() time.Time
}

// NewNotifier builds the notifier. A nil messenger marks a deployment without
// Telegram credentials; callbacks are then classified and dropped.
func NewNotifier(messenger Messenger) *Notifier {
	return &Notifier{
		messenger: messenger,
		now:       time.Now,
	}
}

// ProcessCallback classifies the status, decodes the reference token and
// dispatches the notification. It never returns an error.
func (n *Notifier) ProcessCallback(ctx context.Context, cb Callback) Outcome {
	status := ParseStatus(cb.Status)
	if !status.Successful() {
		slog.DebugContext(ctx, "ignoring non-success payment callback",
			"status", string(status), "invoice_id", cb.InvoiceID)
		return Outcome{Skipped: true}
	}

	if n.messenger == nil {
		slog.ErrorContext(ctx, "TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set, dropping notification",
			"invoice_id", cb.InvoiceID)
		return Outcome{Skipped: true}
	}

	meta, err := DecodeReference(cb.ReferenceToken())
	if err != nil {
		// Recoverable: the message falls back to the raw reference string.
		slog.WarnContext(ctx, "reference token decode failed",
			"error", err, "invoice_id", cb.InvoiceID)
		meta = nil
	}

	text := BuildMessage(cb, meta, n.now())

	if err := n.messenger.SendMessage(ctx, text); err != nil {
		slog.ErrorContext(ctx, "telegram dispatch failed",
			"error", err, "invoice_id", cb.InvoiceID)
		return Outcome{Decoded: meta != nil}
	}

	return Outcome{Decoded: meta != nil, Dispatched: true}
}
