package notify

import (
	"fmt"
	"strings"
	"time"
)

// kyiv is the shop's operating timezone; UTC when tzdata is unavailable.
var kyiv = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// Ukrainian month abbreviations, uk-UA medium date style.
var ukMonths = [...]string{
	"січ.", "лют.", "бер.", "квіт.", "трав.", "черв.",
	"лип.", "серп.", "вер.", "жовт.", "лист.", "груд.",
}

// BuildMessage composes the HTML Telegram notification for a successful
// payment. meta may be nil, in which case only the raw reference and amount
// are shown.
func BuildMessage(cb Callback, meta *OrderMetadata, now time.Time) string {
	var b strings.Builder

	b.WriteString("✅ <b>Оплата через Mono — оплачено</b>\n\n")

	switch {
	case meta != nil && meta.ID != "":
		fmt.Fprintf(&b, "📋 Замовлення: <code>%s</code>\n", meta.ID)
	case cb.ReferenceToken() != "":
		fmt.Fprintf(&b, "📋 Замовлення: <code>%s</code>\n", cb.ReferenceToken())
	}

	if minor := cb.AmountMinor(); minor != 0 {
		fmt.Fprintf(&b, "💰 Сума: %.2f ₴\n", float64(minor)/100)
	}

	if meta != nil {
		writeRecipient(&b, meta)
		writeDelivery(&b, meta)
		writeItems(&b, meta)
	}

	if cb.InvoiceID != "" {
		fmt.Fprintf(&b, "\n🆔 InvoiceId: %s\n", cb.InvoiceID)
	}

	fmt.Fprintf(&b, "\n📅 %s", formatKyivTime(now))

	return b.String()
}

func writeRecipient(b *strings.Builder, meta *OrderMetadata) {
	if meta.Name == "" && meta.Surname == "" && meta.Phone == "" {
		return
	}
	b.WriteString("\n👤 <b>Отримувач:</b>\n")
	if full := strings.TrimSpace(meta.Name + " " + meta.Surname); full != "" {
		b.WriteString(full + "\n")
	}
	if meta.Phone != "" {
		fmt.Fprintf(b, "📞 %s\n", meta.Phone)
	}
}

func writeDelivery(b *strings.Builder, meta *OrderMetadata) {
	if meta.City == "" && meta.Warehouse == "" {
		return
	}
	b.WriteString("\n📍 <b>Доставка:</b>\n")
	if meta.City != "" {
		fmt.Fprintf(b, "Місто: %s\n", meta.City)
	}
	if meta.Region != "" {
		fmt.Fprintf(b, "Область: %s\n", meta.Region)
	}
	if meta.Warehouse != "" {
		fmt.Fprintf(b, "Відділення: %s\n", meta.Warehouse)
	}
}

func writeItems(b *strings.Builder, meta *OrderMetadata) {
	if len(meta.Items) == 0 {
		return
	}
	b.WriteString("\n🛒 <b>Товари:</b>\n")
	for _, item := range meta.Items {
		fmt.Fprintf(b, "• %s x%d — %.2f ₴\n", item.Name, item.Quantity, item.Price)
	}
}

func formatKyivTime(t time.Time) string {
	local := t.In(kyiv)
	return fmt.Sprintf("%d %s %d р., %02d:%02d",
		local.Day(), ukMonths[local.Month()-1], local.Year(), local.Hour(), local.Minute())
}
