package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 5, 12, 4, 0, 0, time.UTC)

	t.Run("full metadata", func(t *testing.T) {
		cb := Callback{
			Status:    "success",
			Reference: "ignored-when-meta-has-id",
			InvoiceID: "inv_42",
			Amount:    int64Ptr(10000),
		}
		meta := &OrderMetadata{
			ID:        "A100",
			Name:      "Олена",
			Surname:   "Петренко",
			Phone:     "+380501112233",
			City:      "Київ",
			Region:    "Київська",
			Warehouse: "Відділення №12",
			Items: []OrderItem{
				{Name: "Sock", Quantity: 2, Price: 50},
			},
		}

		msg := BuildMessage(cb, meta, now)

		assert.Contains(t, msg, "✅ <b>Оплата через Mono — оплачено</b>")
		assert.Contains(t, msg, "Замовлення: <code>A100</code>")
		assert.Contains(t, msg, "Сума: 100.00 ₴")
		assert.Contains(t, msg, "Олена Петренко")
		assert.Contains(t, msg, "📞 +380501112233")
		assert.Contains(t, msg, "Місто: Київ")
		assert.Contains(t, msg, "Область: Київська")
		assert.Contains(t, msg, "Відділення: Відділення №12")
		assert.Contains(t, msg, "• Sock x2 — 50.00 ₴")
		assert.Contains(t, msg, "InvoiceId: inv_42")
		assert.Contains(t, msg, "бер.")
	})

	t.Run("no metadata falls back to the raw reference", func(t *testing.T) {
		cb := Callback{
			Status:      "success",
			Reference:   "raw-ref-string",
			FinalAmount: int64Ptr(2550),
		}

		msg := BuildMessage(cb, nil, now)

		assert.Contains(t, msg, "Замовлення: <code>raw-ref-string</code>")
		assert.Contains(t, msg, "Сума: 25.50 ₴")
		assert.NotContains(t, msg, "Отримувач")
		assert.NotContains(t, msg, "Товари")
		assert.NotContains(t, msg, "InvoiceId")
	})

	t.Run("zero amount is omitted", func(t *testing.T) {
		msg := BuildMessage(Callback{Status: "success", Reference: "r1"}, nil, now)

		assert.NotContains(t, msg, "Сума")
	})
}

func TestCallback_Accessors(t *testing.T) {
	t.Parallel()

	t.Run("reference wins over order_ref and invoiceId", func(t *testing.T) {
		cb := Callback{Reference: "ref", OrderRef: "ord", InvoiceID: "inv"}
		assert.Equal(t, "ref", cb.ReferenceToken())
	})

	t.Run("order_ref wins over invoiceId", func(t *testing.T) {
		cb := Callback{OrderRef: "ord", InvoiceID: "inv"}
		assert.Equal(t, "ord", cb.ReferenceToken())
	})

	t.Run("invoiceId is the last resort", func(t *testing.T) {
		cb := Callback{InvoiceID: "inv"}
		assert.Equal(t, "inv", cb.ReferenceToken())
	})

	t.Run("amount wins over finalAmount", func(t *testing.T) {
		cb := Callback{Amount: int64Ptr(100), FinalAmount: int64Ptr(200)}
		assert.Equal(t, int64(100), cb.AmountMinor())
	})

	t.Run("finalAmount used when amount absent", func(t *testing.T) {
		cb := Callback{FinalAmount: int64Ptr(200)}
		assert.Equal(t, int64(200), cb.AmountMinor())
	})

	t.Run("zero when both absent", func(t *testing.T) {
		assert.Equal(t, int64(0), Callback{}.AmountMinor())
	})
}
