//go:build integration
// +build integration

package integration_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"mono-checkout-gateway/internal/domain/checkout"
	"mono-checkout-gateway/internal/external/mono"
	"mono-checkout-gateway/internal/shared/testinfra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRequest() checkout.SessionRequest {
	return checkout.SessionRequest{
		OrderRef:    "ORD-IT-1",
		AmountMinor: 10000,
		CurrencyISO: 980,
		Count:       1,
		Products: []checkout.SessionProduct{
			{Name: "Sock", Count: 2, PriceMinor: 5000, Code: "1"},
		},
		DeliveryMethods: []string{"np_brnm"},
		PaymentMethods:  []string{"card"},
		CallbackURL:     "https://shop.example.com/callback",
		ReturnURL:       "https://shop.example.com/thanks",
	}
}

func TestMonoClient_AgainstWiremock(t *testing.T) {
	ctx := context.Background()

	wiremock, err := testinfra.NewWiremock(ctx, "mappings")
	require.NoError(t, err)
	t.Cleanup(func() { wiremock.Cleanup(ctx) })

	httpClient := &http.Client{Timeout: 10 * time.Second}

	t.Run("creates a checkout session", func(t *testing.T) {
		client := mono.New(wiremock.BaseURL, "/personal/checkout/order", "integration-token", httpClient)

		res, err := client.CreateSession(ctx, sessionRequest())

		require.NoError(t, err)
		assert.Equal(t, "https://pay.mbnk.biz/integration", res.RedirectURL)
		assert.Equal(t, "inv_integration", res.InvoiceID)
	})

	t.Run("mirrors a rejected token", func(t *testing.T) {
		client := mono.New(wiremock.BaseURL, "/personal/checkout/order", "bad-token", httpClient)

		_, err := client.CreateSession(ctx, sessionRequest())

		var gwErr *checkout.GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, http.StatusForbidden, gwErr.StatusCode)
		assert.Equal(t, "Invalid token", gwErr.Message)
	})
}
