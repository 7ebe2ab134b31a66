// Package whatsapp renders an order into the French chat message the
// shop's operator receives, wrapped in a wa.me link. The message is the
// source of truth for order intent; database persistence is a
// best-effort enrichment on top of it.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

const (
	// DefaultNumber is used when no recipient is configured.
	DefaultNumber = "33611309743"

	divider = "━━━━━━━━━━━━━━━━━━━━━"
)

// CustomerInfo is the checkout form content the order message needs.
type CustomerInfo struct {
	FirstName     string
	LastName      string
	Phone         string
	DeliveryMode  domain.DeliveryMode
	Zone          string
	AddressDetail string
	PaymentMethod domain.PaymentMethod
	DeliveryFee   int64
}

type Formatter struct {
	number  string
	siteURL string
}

func NewFormatter(number, siteURL string) *Formatter {
	if number == "" {
		number = DefaultNumber
	}
	return &Formatter{number: number, siteURL: siteURL}
}

// OrderMessage renders the full checkout message: header, customer
// block, logistics block, payment block, itemized cart, totals. The
// section order is fixed.
func (f *Formatter) OrderMessage(lines []domain.CartLine, subtotal int64, info CustomerInfo) string {
	var b strings.Builder

	b.WriteString("*🛍️ NOUVELLE COMMANDE - GNAM GNAM*\n")
	b.WriteString(divider + "\n\n")

	b.WriteString("*👤 CLIENT*\n")
	fmt.Fprintf(&b, "Nom: %s %s\n", info.FirstName, info.LastName)
	fmt.Fprintf(&b, "Tél: %s\n\n", info.Phone)

	b.WriteString("*📦 LIVRAISON*\n")
	if info.DeliveryMode == domain.DeliveryModeHome {
		b.WriteString("🚚 Livraison à domicile\n")
		fmt.Fprintf(&b, "📍 Quartier: %s\n", info.Zone)
		fmt.Fprintf(&b, "💵 Frais: %d FCFA\n", info.DeliveryFee)
		if info.AddressDetail != "" {
			fmt.Fprintf(&b, "📝 Indications: %s\n", info.AddressDetail)
		}
	} else {
		b.WriteString("🏪 Retrait en boutique\n")
	}
	b.WriteString("\n")

	b.WriteString(paymentLabel(info.PaymentMethod, info.DeliveryMode) + "\n\n")

	b.WriteString("*🛒 PANIER*\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "• %d x %s\n", l.Quantity, l.Product.Name)
		fmt.Fprintf(&b, "  └ %d FCFA\n", l.Product.Price*l.Quantity)
	}

	b.WriteString("\n" + divider + "\n")
	fmt.Fprintf(&b, "Sous-total: %d FCFA\n", subtotal)
	if info.DeliveryFee > 0 {
		fmt.Fprintf(&b, "Livraison: %d FCFA\n", info.DeliveryFee)
	}
	fmt.Fprintf(&b, "*💰 TOTAL: %d FCFA*\n", subtotal+info.DeliveryFee)
	b.WriteString(divider)

	return b.String()
}

// CartMessage renders the pre-checkout share message: just the
// selection and its total, no customer or logistics blocks.
func (f *Formatter) CartMessage(lines []domain.CartLine, total int64) string {
	var b strings.Builder

	b.WriteString("*BON DE COMMANDE - GNAM GNAM BOUILLIE*\n")
	b.WriteString("---------------------------------------\n")
	b.WriteString("Détails de la sélection :\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "- %d x %s (%d FCFA)\n", l.Quantity, l.Product.Name, l.Product.Price)
	}
	b.WriteString("---------------------------------------\n")
	fmt.Fprintf(&b, "TOTAL À RÉGLER : %d FCFA\n", total)
	b.WriteString("---------------------------------------\n")
	b.WriteString("Lien panier : " + f.siteURL)

	return b.String()
}

// OrderURL wraps the order message in a wa.me link.
func (f *Formatter) OrderURL(lines []domain.CartLine, subtotal int64, info CustomerInfo) string {
	return f.link(f.OrderMessage(lines, subtotal, info))
}

// CartURL wraps the cart-only message in a wa.me link.
func (f *Formatter) CartURL(lines []domain.CartLine, total int64) string {
	return f.link(f.CartMessage(lines, total))
}

func (f *Formatter) link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", f.number, url.QueryEscape(message))
}

func paymentLabel(method domain.PaymentMethod, mode domain.DeliveryMode) string {
	if method == domain.PaymentNita {
		return "📱 Nita"
	}
	if mode == domain.DeliveryModeHome {
		return "💵 Espèces à la livraison"
	}
	return "💵 Espèces à la remise"
}
