package checkout

// CheckoutRequest is the storefront checkout payload as bound from JSON.
type CheckoutRequest struct {
	OrderRef    string     `json:"order_ref"`
	Amount      float64    `json:"amount"`
	Products    []LineItem `json:"products"`
	ReturnURL   string     `json:"return_url"`
	CallbackURL string     `json:"callback_url"`
}

type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	// Price is the line total in major currency units, not the unit price.
	Price float64 `json:"price"`
}

// Validate enforces the boundary contract before any upstream call is made.
func (r CheckoutRequest) Validate() error {
	if r.OrderRef == "" {
		return &ValidationError{Field: "order_ref", Message: "order_ref is required"}
	}
	if len(r.Products) == 0 {
		return &ValidationError{Field: "products", Message: "products must be a non-empty list"}
	}
	if r.ReturnURL == "" {
		return &ValidationError{Field: "return_url", Message: "return_url is required"}
	}
	if r.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}
	return nil
}

// SessionProduct is a normalized line item in the processor's shape: integer
// quantity, minor-unit unit price, non-empty product code.
type SessionProduct struct {
	Name       string
	Count      int
	PriceMinor int64
	Code       string
}

// SessionRequest is the processor-facing checkout-session creation request.
type SessionRequest struct {
	OrderRef        string
	AmountMinor     int64
	CurrencyISO     int
	Count           int
	Products        []SessionProduct
	DeliveryMethods []string
	PaymentMethods  []string
	CallbackURL     string
	ReturnURL       string
	Description     string
}

// SessionResult is what the caller gets back: the hosted-payment page URL and
// the processor's invoice identifier when it reports one.
type SessionResult struct {
	RedirectURL string
	InvoiceID   string
}
