package rest

import (
	"net/http"

	"mono-checkout-gateway/internal/controller/rest/handlers"
	"mono-checkout-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires the two gateway endpoints plus health and metrics.
type Router struct {
	checkout handlers.CheckoutHandler
	callback handlers.CallbackHandler
}

func NewRouter(checkout handlers.CheckoutHandler, callback handlers.CallbackHandler) *Router {
	return &Router{
		checkout: checkout,
		callback: callback,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	// Mono retries webhooks on its own; a 405 on a wrong method is the only
	// non-contract response we emit.
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "mono-checkout-gateway", "status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}),
	))

	order := engine.Group("/order", CORS())
	order.POST("", r.checkout.Create)
	order.OPTIONS("", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	engine.POST("/callback", r.callback.Receive)
}
