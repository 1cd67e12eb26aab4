package checkout

import (
	"strconv"
	"strings"

	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/nikolayk812/boutique/internal/forms"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Merchant describes the shop receiving orders.
type Merchant struct {
	ShopName       string
	WhatsAppNumber string
	Currency       currency.Unit
	Locale         language.Tag
}

func (m Merchant) format(amount int64) string {
	return domain.Money{Amount: amount, Currency: m.Currency}.Format(m.Locale)
}

// RenderMessage builds the order text the merchant processes by hand. Its
// layout is relied upon on the receiving side, so keep it stable: customer
// details as entered, one bullet per line item, then the total.
func RenderMessage(m Merchant, details forms.Checkout, cart domain.Cart) string {
	var b strings.Builder

	b.WriteString("\U0001F6CD\uFE0F *New Order from " + m.ShopName + "*\n\n")
	b.WriteString("*Customer Details:*\n")
	b.WriteString("Name: " + details.Name + "\n")
	b.WriteString("Email: " + details.Email + "\n")
	b.WriteString("Phone: " + details.Phone + "\n")
	b.WriteString("Address: " + details.Address + "\n")
	if details.Instructions != "" {
		b.WriteString("Instructions: " + details.Instructions + "\n")
	}
	b.WriteString("\n")

	items := make([]string, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, "• "+line.Name+" x"+strconv.Itoa(line.Quantity)+" - "+m.format(line.Subtotal()))
	}
	b.WriteString("*Order Items:*\n" + strings.Join(items, "\n") + "\n\n")
	b.WriteString("*Total: " + m.format(cart.TotalPrice()) + "*")

	return b.String()
}
