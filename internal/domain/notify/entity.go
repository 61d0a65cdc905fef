package notify

// Callback is the processor's payment-status webhook payload. Field presence
// varies between Mono API versions, so everything is optional and the
// accessors below pick the first populated variant.
type Callback struct {
	Status      string `json:"status"`
	Reference   string `json:"reference"`
	OrderRef    string `json:"order_ref"`
	InvoiceID   string `json:"invoiceId"`
	Amount      *int64 `json:"amount"`
	FinalAmount *int64 `json:"finalAmount"`
}

// ReferenceToken returns the opaque order-correlation token.
func (c Callback) ReferenceToken() string {
	if c.Reference != "" {
		return c.Reference
	}
	if c.OrderRef != "" {
		return c.OrderRef
	}
	return c.InvoiceID
}

// AmountMinor returns the paid amount in minor units, zero when absent.
func (c Callback) AmountMinor() int64 {
	if c.Amount != nil {
		return *c.Amount
	}
	if c.FinalAmount != nil {
		return *c.FinalAmount
	}
	return 0
}

// OrderMetadata is the order snapshot the storefront packs into the reference
// token. Keys are single letters because the token rides through the
// processor with a bounded length.
type OrderMetadata struct {
	ID        string      `json:"id"`
	Name      string      `json:"n"`
	Surname   string      `json:"s"`
	Phone     string      `json:"p"`
	City      string      `json:"c"`
	Region    string      `json:"r"`
	Warehouse string      `json:"w"`
	Items     []OrderItem `json:"items"`
}

type OrderItem struct {
	Name     string  `json:"n"`
	Quantity int     `json:"q"`
	Price    float64 `json:"pr"`
}
