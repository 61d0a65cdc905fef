// Package mono implements the checkout.PaymentGateway port against
// Monobank's hosted-checkout API.
package mono

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mono-checkout-gateway/internal/domain/checkout"
)

// acquiringHint is returned alongside Mono errors; misconfigured allowed
// domains are the most common rejection cause.
const acquiringHint = "Перевір у web.monobank.ua → Інтернет → Еквайринг: дозволені домени та URL для return_url/callback_url."

type Client struct {
	checkoutURL string
	token       string
	http        *http.Client
}

func New(baseURL, checkoutPath, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		checkoutURL: baseURL + checkoutPath,
		token:       token,
		http:        httpClient,
	}
}

type wireProduct struct {
	Name        string `json:"name"`
	Count       int    `json:"cnt"`
	Price       int64  `json:"price"`
	CodeProduct string `json:"code_product"`
}

type createOrderReq struct {
	OrderRef          string        `json:"order_ref"`
	Amount            int64         `json:"amount"`
	Ccy               int           `json:"ccy"`
	Count             int           `json:"count"`
	Products          []wireProduct `json:"products"`
	DlvMethodList     []string      `json:"dlv_method_list"`
	PaymentMethodList []string      `json:"payment_method_list"`
	CallbackURL       string        `json:"callback_url"`
	ReturnURL         string        `json:"return_url"`
	Destination       string        `json:"destination,omitempty"`
}

type createOrderResp struct {
	Result *struct {
		RedirectURL string `json:"redirect_url"`
	} `json:"result"`
	InvoiceID string `json:"invoiceId"`
	PageURL   string `json:"pageUrl"`

	ErrorDescription string `json:"errorDescription"`
	Message          string `json:"message"`
	ErrCode          string `json:"errCode"`
}

// CreateSession creates a hosted-checkout order. Amounts and unit prices in
// the request are already minor-unit integers; Mono rejects fractional ones.
func (c *Client) CreateSession(ctx context.Context, req checkout.SessionRequest) (checkout.SessionResult, error) {
	body := createOrderReq{
		OrderRef:          req.OrderRef,
		Amount:            req.AmountMinor,
		Ccy:               req.CurrencyISO,
		Count:             req.Count,
		Products:          make([]wireProduct, 0, len(req.Products)),
		DlvMethodList:     req.DeliveryMethods,
		PaymentMethodList: req.PaymentMethods,
		CallbackURL:       req.CallbackURL,
		ReturnURL:         req.ReturnURL,
		Destination:       req.Description,
	}
	for _, p := range req.Products {
		body.Products = append(body.Products, wireProduct{
			Name:        p.Name,
			Count:       p.Count,
			Price:       p.PriceMinor,
			CodeProduct: p.Code,
		})
	}

	j, err := json.Marshal(body)
	if err != nil {
		return checkout.SessionResult{}, fmt.Errorf("marshal: %w", err)
	}

	httpReq, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.checkoutURL,
		bytes.NewReader(j),
	)
	httpReq.Header.Set("X-Token", c.token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return checkout.SessionResult{}, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	var out createOrderResp
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode/100 != 2 {
		return checkout.SessionResult{}, &checkout.GatewayError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(out, raw),
			Hint:       acquiringHint,
		}
	}

	result := checkout.SessionResult{InvoiceID: out.InvoiceID}
	if out.Result != nil {
		result.RedirectURL = out.Result.RedirectURL
	}
	if result.RedirectURL == "" {
		// Invoice-API style responses carry the payment page as pageUrl.
		result.RedirectURL = out.PageURL
	}

	return result, nil
}

// errorMessage picks the most descriptive field Mono populated.
func errorMessage(out createOrderResp, raw []byte) string {
	switch {
	case out.ErrorDescription != "":
		return out.ErrorDescription
	case out.Message != "":
		return out.Message
	case out.ErrCode != "":
		return out.ErrCode
	case len(bytes.TrimSpace(raw)) > 0:
		return string(raw)
	default:
		return "Mono API error"
	}
}
