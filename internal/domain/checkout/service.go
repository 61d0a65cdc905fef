package checkout

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"mono-checkout-gateway/internal/controller/apperror"
)

const (
	// ISO 4217 numeric code for UAH; the only operating currency.
	currencyUAH = 980

	maxProductNameLen = 256
	maxDescriptionLen = 250

	defaultProductName = "Товар"
)

var (
	defaultDeliveryMethods = []string{"np_brnm"}
	defaultPaymentMethods  = []string{"card"}
)

type ServiceConfig struct {
	SiteBaseURL        string
	DefaultCallbackURL string
}

// CheckoutService turns storefront checkout requests into processor checkout
// sessions. It is stateless: every request is normalized, forwarded and
// forgotten.
type CheckoutService struct {
	gateway PaymentGateway
	cfg     ServiceConfig
}

// NewCheckoutService builds the service. A nil gateway is legal and marks a
// deployment without MONO_TOKEN; requests are then rejected with a
// configuration error.
func NewCheckoutService(gateway PaymentGateway, cfg ServiceConfig) *CheckoutService {
	return &CheckoutService{gateway: gateway, cfg: cfg}
}

// CreateCheckout validates the request, builds the session and calls the
// processor. Exactly one outbound call per invocation, no retries.
func (s *CheckoutService) CreateCheckout(ctx context.Context, req CheckoutRequest) (SessionResult, error) {
	if s.gateway == nil {
		return SessionResult{}, apperror.ErrGatewayNotConfigured
	}

	if err := req.Validate(); err != nil {
		return SessionResult{}, err
	}

	res, err := s.gateway.CreateSession(ctx, s.buildSession(req))
	if err != nil {
		return SessionResult{}, fmt.Errorf("create session: %w", err)
	}

	if res.RedirectURL == "" {
		return SessionResult{}, apperror.ErrNoRedirectURL
	}

	return res, nil
}

func (s *CheckoutService) buildSession(req CheckoutRequest) SessionRequest {
	products := make([]SessionProduct, 0, len(req.Products))
	for i, item := range req.Products {
		qty := Quantity(item.Quantity)

		code := item.ID
		if code == "" {
			code = strconv.Itoa(i + 1)
		}

		name := item.Name
		if name == "" {
			name = defaultProductName
		}

		products = append(products, SessionProduct{
			Name:       truncate(name, maxProductNameLen),
			Count:      qty,
			PriceMinor: MinorUnits(UnitPrice(item.Price, qty)),
			Code:       code,
		})
	}

	return SessionRequest{
		OrderRef:        req.OrderRef,
		AmountMinor:     MinorUnits(req.Amount),
		CurrencyISO:     currencyUAH,
		Count:           len(products),
		Products:        products,
		DeliveryMethods: defaultDeliveryMethods,
		PaymentMethods:  defaultPaymentMethods,
		CallbackURL:     SafeCallbackURL(req.CallbackURL, s.cfg.DefaultCallbackURL),
		ReturnURL:       SafeReturnURL(req.ReturnURL, s.cfg.SiteBaseURL),
		Description:     describe(products),
	}
}

// describe summarizes items for processors that accept a free-text payment
// description.
func describe(products []SessionProduct) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, fmt.Sprintf("%s x%d", p.Name, p.Count))
	}
	return truncate(strings.Join(parts, ", "), maxDescriptionLen)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
