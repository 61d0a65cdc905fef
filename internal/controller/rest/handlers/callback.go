package handlers

import (
	"log/slog"
	"net/http"

	"mono-checkout-gateway/internal/domain/notify"
	"mono-checkout-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type CallbackHandler struct {
	notifier *notify.Notifier
}

func NewCallbackHandler(notifier *notify.Notifier) CallbackHandler {
	return CallbackHandler{notifier: notifier}
}

// Receive handles Mono's payment-status webhook. It responds 200 no matter
// what happens internally: any other status makes Mono redeliver the event.
func (h *CallbackHandler) Receive(c *gin.Context) {
	var cb notify.Callback
	if err := c.ShouldBindJSON(&cb); err != nil {
		slog.WarnContext(c.Request.Context(), "unparseable payment callback", "error", err)
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		c.Status(http.StatusOK)
		return
	}

	outcome := h.notifier.ProcessCallback(c.Request.Context(), cb)
	metrics.NotificationsTotal.WithLabelValues(outcome.Label()).Inc()

	c.Status(http.StatusOK)
}
