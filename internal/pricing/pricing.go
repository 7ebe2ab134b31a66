// Package pricing turns a cart and a delivery choice into amounts.
// Everything here is pure: no I/O, no state, integer FCFA throughout.
package pricing

import "github.com/razoraze123/gnamgnam/internal/domain"

// Subtotal is the sum of price x quantity over the lines. Empty carts
// price to zero.
func Subtotal(lines []domain.CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Product.Price * l.Quantity
	}
	return sum
}

// DeliveryFee resolves the fee for a delivery choice against the zone
// table. Pickup and "no zone selected yet" both cost nothing. A zone
// name the table does not know falls back to defaultFee rather than
// failing: the outbound message is still produced and a human settles
// the fee over chat.
func DeliveryFee(mode domain.DeliveryMode, zoneName string, zones []domain.DeliveryZone, defaultFee int64) int64 {
	if mode != domain.DeliveryModeHome {
		return 0
	}
	if zoneName == "" {
		return 0
	}
	for _, z := range zones {
		if z.Name == zoneName {
			return z.Fee
		}
	}
	return defaultFee
}

// GrandTotal is subtotal plus delivery fee.
func GrandTotal(lines []domain.CartLine, mode domain.DeliveryMode, zoneName string, zones []domain.DeliveryZone, defaultFee int64) int64 {
	return Subtotal(lines) + DeliveryFee(mode, zoneName, zones, defaultFee)
}
