package domain

// CartLine is one product in the cart. The product is stored as a
// snapshot so a cart survives catalog changes made after the add.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Subtotal is the sum of price x quantity across all lines.
func (c Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.Product.Price * l.Quantity
	}
	return sum
}

// ItemCount is the sum of quantities across all lines.
func (c Cart) ItemCount() int64 {
	var n int64
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
