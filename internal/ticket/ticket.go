// Package ticket renders the fixed-width text tickets sent to the 42-column
// receipt printer: the customer receipt and the closure (Z) report.
package ticket

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Width is the printable column count of the receipt printer.
const Width = 42

// amountCol is the right-aligned column reserved for amounts on label lines.
const amountCol = 10

// ShopInfo is the shop identity block printed at the top of every ticket.
type ShopInfo struct {
	Name    string
	Address string
	City    string
	Phone   string
	SIRET   string
}

// Renderer renders tickets for one shop.
type Renderer struct {
	Shop ShopInfo
}

// NewRenderer creates a ticket renderer for the given shop identity.
func NewRenderer(shop ShopInfo) *Renderer {
	return &Renderer{Shop: shop}
}

// money formats a decimal as "12.34 €".
func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}

// signedMoney formats a decimal with an explicit sign, "+12.34 €".
func signedMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + " €"
}

// center pads a string to Width, centred. Padding counts runes, not bytes,
// so accented labels line up on the printer.
func center(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= Width {
		return s
	}
	left := (Width - n) / 2
	return strings.Repeat(" ", left) + s
}

// rule is the section separator line.
func rule() string {
	return strings.Repeat("-", Width)
}

// rpad pads a string with spaces on the right up to n runes.
func rpad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

// lpad pads a string with spaces on the left up to n runes.
func lpad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return strings.Repeat(" ", n-c) + s
	}
	return s
}

// amountLine renders "label          amount" with the amount right-aligned in
// the last amountCol runes.
func amountLine(label, amount string) string {
	return rpad(label, Width-amountCol) + lpad(amount, amountCol)
}

// gridRow lays out four 10-rune columns, left-aligned. Rune-counted padding
// keeps the euro sign from shifting columns.
func gridRow(c1, c2, c3, c4 string) string {
	return rpad(c1, 10) + rpad(c2, 10) + rpad(c3, 10) + c4
}

// truncate cuts a string to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
