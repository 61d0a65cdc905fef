package handlers

import (
	"errors"
	"net/http"

	"mono-checkout-gateway/internal/controller/apperror"
	"mono-checkout-gateway/internal/domain/checkout"
	"mono-checkout-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	service *checkout.CheckoutService
}

func NewCheckoutHandler(service *checkout.CheckoutService) CheckoutHandler {
	return CheckoutHandler{service: service}
}

// Create translates a storefront checkout request into a Mono checkout
// session and returns the hosted-payment redirect URL.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req checkout.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.service.CreateCheckout(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()

	resp := gin.H{"redirect_url": res.RedirectURL}
	if res.InvoiceID != "" {
		resp["invoice_id"] = res.InvoiceID
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CheckoutHandler) writeError(c *gin.Context, err error) {
	var vErr *checkout.ValidationError
	var gwErr *checkout.GatewayError

	switch {
	case errors.As(err, &vErr):
		metrics.CheckoutSessionsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &gwErr):
		// Mirror the processor's status and description verbatim.
		metrics.CheckoutSessionsTotal.WithLabelValues("gateway_error").Inc()
		body := gin.H{"error": gwErr.Message}
		if gwErr.Hint != "" {
			body["hint"] = gwErr.Hint
		}
		c.JSON(gwErr.StatusCode, body)
	case errors.Is(err, apperror.ErrGatewayNotConfigured),
		errors.Is(err, apperror.ErrNoRedirectURL):
		metrics.CheckoutSessionsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		metrics.CheckoutSessionsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
