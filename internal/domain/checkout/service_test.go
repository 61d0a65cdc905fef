package checkout

import (
	"context"
	"errors"
	"testing"

	"mono-checkout-gateway/internal/controller/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func checkoutService(t *testing.T) (*CheckoutService, *MockPaymentGateway) {
	t.Helper()

	mockGateway := NewMockPaymentGateway(gomock.NewController(t))
	service := NewCheckoutService(mockGateway, ServiceConfig{
		SiteBaseURL:        "https://shop.example.com",
		DefaultCallbackURL: "https://shop.example.com/callback",
	})

	return service, mockGateway
}

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		OrderRef: "ORD-1001",
		Amount:   150.50,
		Products: []LineItem{
			{ID: "sock-42", Name: "Шкарпетки", Quantity: 2, Price: 100},
			{Name: "Шапка", Quantity: 1, Price: 50.50},
		},
		ReturnURL:   "https://shop.example.com/thanks",
		CallbackURL: "https://shop.example.com/hooks/mono",
	}
}

func TestCheckoutService_CreateCheckout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("builds a minor-unit session request", func(t *testing.T) {
		service, mockGateway := checkoutService(t)

		var captured SessionRequest
		mockGateway.EXPECT().
			CreateSession(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req SessionRequest) (SessionResult, error) {
				captured = req
				return SessionResult{RedirectURL: "https://pay.mbnk.biz/abc"}, nil
			})

		res, err := service.CreateCheckout(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "https://pay.mbnk.biz/abc", res.RedirectURL)

		assert.Equal(t, "ORD-1001", captured.OrderRef)
		assert.Equal(t, int64(15050), captured.AmountMinor)
		assert.Equal(t, 980, captured.CurrencyISO)
		assert.Equal(t, 2, captured.Count)
		assert.Equal(t, []string{"np_brnm"}, captured.DeliveryMethods)
		assert.Equal(t, []string{"card"}, captured.PaymentMethods)
		assert.Equal(t, "https://shop.example.com/thanks", captured.ReturnURL)
		assert.Equal(t, "https://shop.example.com/hooks/mono", captured.CallbackURL)

		require.Len(t, captured.Products, 2)
		// 100 / 2 = 50.00 major = 5000 minor
		assert.Equal(t, SessionProduct{Name: "Шкарпетки", Count: 2, PriceMinor: 5000, Code: "sock-42"}, captured.Products[0])
		// missing id falls back to the 1-based position
		assert.Equal(t, SessionProduct{Name: "Шапка", Count: 1, PriceMinor: 5050, Code: "2"}, captured.Products[1])
	})

	t.Run("rebases unsafe URLs before calling the gateway", func(t *testing.T) {
		service, mockGateway := checkoutService(t)

		req := validRequest()
		req.ReturnURL = "http://localhost:3000/x"
		req.CallbackURL = "http://localhost:3000/hooks"

		mockGateway.EXPECT().
			CreateSession(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, session SessionRequest) (SessionResult, error) {
				assert.Equal(t, "https://shop.example.com/x", session.ReturnURL)
				assert.Equal(t, "https://shop.example.com/callback", session.CallbackURL)
				return SessionResult{RedirectURL: "https://pay.mbnk.biz/abc"}, nil
			})

		_, err := service.CreateCheckout(ctx, req)

		require.NoError(t, err)
	})

	t.Run("clamps quantity and defaults the product name", func(t *testing.T) {
		service, mockGateway := checkoutService(t)

		req := validRequest()
		req.Products = []LineItem{{Quantity: 0, Price: 99.99}}

		mockGateway.EXPECT().
			CreateSession(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, session SessionRequest) (SessionResult, error) {
				require.Len(t, session.Products, 1)
				assert.Equal(t, SessionProduct{Name: "Товар", Count: 1, PriceMinor: 9999, Code: "1"}, session.Products[0])
				return SessionResult{RedirectURL: "https://pay.mbnk.biz/abc"}, nil
			})

		_, err := service.CreateCheckout(ctx, req)

		require.NoError(t, err)
	})

	t.Run("propagates gateway errors", func(t *testing.T) {
		service, mockGateway := checkoutService(t)

		gwErr := &GatewayError{StatusCode: 400, Message: "bad_request"}
		mockGateway.EXPECT().
			CreateSession(ctx, gomock.Any()).
			Return(SessionResult{}, gwErr)

		_, err := service.CreateCheckout(ctx, validRequest())

		var target *GatewayError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 400, target.StatusCode)
	})

	t.Run("success without redirect URL is a contract violation", func(t *testing.T) {
		service, mockGateway := checkoutService(t)

		mockGateway.EXPECT().
			CreateSession(ctx, gomock.Any()).
			Return(SessionResult{InvoiceID: "inv-1"}, nil)

		_, err := service.CreateCheckout(ctx, validRequest())

		assert.ErrorIs(t, err, apperror.ErrNoRedirectURL)
	})

	t.Run("nil gateway is a configuration error", func(t *testing.T) {
		service := NewCheckoutService(nil, ServiceConfig{})

		_, err := service.CreateCheckout(ctx, validRequest())

		assert.ErrorIs(t, err, apperror.ErrGatewayNotConfigured)
	})

	t.Run("duplicate requests produce independent gateway calls", func(t *testing.T) {
		service, mockGateway := checkoutService(t)

		mockGateway.EXPECT().
			CreateSession(ctx, gomock.Any()).
			Return(SessionResult{RedirectURL: "https://pay.mbnk.biz/abc"}, nil).
			Times(2)

		_, err := service.CreateCheckout(ctx, validRequest())
		require.NoError(t, err)
		_, err = service.CreateCheckout(ctx, validRequest())
		require.NoError(t, err)
	})
}

func TestCheckoutRequest_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*CheckoutRequest)
		message string
	}{
		{
			name:    "missing order_ref",
			mutate:  func(r *CheckoutRequest) { r.OrderRef = "" },
			message: "order_ref is required",
		},
		{
			name:    "empty products",
			mutate:  func(r *CheckoutRequest) { r.Products = nil },
			message: "products must be a non-empty list",
		},
		{
			name:    "missing return_url",
			mutate:  func(r *CheckoutRequest) { r.ReturnURL = "" },
			message: "return_url is required",
		},
		{
			name:    "zero amount",
			mutate:  func(r *CheckoutRequest) { r.Amount = 0 },
			message: "amount must be greater than zero",
		},
		{
			name:    "negative amount",
			mutate:  func(r *CheckoutRequest) { r.Amount = -5 },
			message: "amount must be greater than zero",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := req.Validate()

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.message, vErr.Message)
		})
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validRequest().Validate())
	})

	t.Run("validation happens before any gateway call", func(t *testing.T) {
		service, mockGateway := checkoutService(t)
		_ = mockGateway // zero EXPECT calls: the gateway must stay untouched

		req := validRequest()
		req.Products = nil

		_, err := service.CreateCheckout(context.Background(), req)

		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
	})
}
